package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        [3]float64             `json:"color"` // Unclamped pixel-centre color
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// inspectPixel casts the centre ray of a pixel and describes the first surface it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	ray := sceneObj.Camera.CenterRay(pixelX, pixelY)
	color := integrator.NewWhittedIntegrator(sceneObj.World).ColorAt(ray, sceneObj.MaxDepth)

	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false, Color: colorArray(color)}
	}

	comps := hit.PrepareComputationsWith(ray, xs)
	geometryType, geometryProps := extractGeometryInfo(hit.Object)

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64{comps.Point.X, comps.Point.Y, comps.Point.Z},
		Normal:       [3]float64{comps.NormalV.X, comps.NormalV.Y, comps.NormalV.Z},
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        colorArray(color),
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Object.Material()),
			"geometry": geometryProps,
		},
	}
}

// extractMaterialInfo describes the Phong and secondary-ray coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           colorArray(mat.Color),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
	}

	switch p := mat.Pattern.(type) {
	case *material.StripePattern:
		properties["pattern"] = "stripe"
	case *material.GradientPattern:
		properties["pattern"] = "gradient"
	case nil:
	default:
		properties["pattern"] = fmt.Sprintf("%T", p)
	}
	return properties
}

// extractGeometryInfo names the shape kind and reports its transform
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"transform":   shape.Transform().Matrix,
		"castsShadow": shape.CastsShadow(),
	}

	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere", properties
	case *geometry.Plane:
		return "plane", properties
	case *geometry.Cube:
		return "cube", properties
	default:
		return "unknown", properties
	}
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.setupScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Camera.Width() || pixelY < 0 || pixelY >= sceneObj.Camera.Height() {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}
