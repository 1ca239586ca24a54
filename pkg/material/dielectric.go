package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refract applies Snell's law at a boundary between media n1 (incoming side)
// and n2. eyeV points back along the incoming ray and normalV points to the
// incoming side. The second return is false on total internal reflection.
func Refract(eyeV, normalV core.Vector, n1, n2 float64) (core.Vector, bool) {
	nRatio := n1 / n2
	cosI := eyeV.Dot(normalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Vector{}, false
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := normalV.Multiply(nRatio*cosI - cosT).Subtract(eyeV.Multiply(nRatio))
	return direction, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation.
// cosI is the cosine between the eye vector and the normal. The result is in [0, 1].
func Reflectance(cosI, n1, n2 float64) float64 {
	cos := max(0, min(1, cosI))

	// Leaving a denser medium: use the transmitted angle, or report total
	// internal reflection
	if n1 > n2 {
		n := n1 / n2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
