package render

import (
	"math"

	"github.com/vashkar/lightdrift/scene"
	"github.com/vashkar/lightdrift/vmath"
)

// Reflectance model coefficients. Three bounded terms, no error states
const (
	ambientStrength  = 0.1
	specularStrength = 0.5
	shininess        = 32
)

// Shade evaluates the ambient+diffuse+specular model at a surface point.
// pos is the already-aberrated world position, normal the unit world-space
// surface normal from the rest geometry. Beta never enters here: the
// angular remapping happens upstream of shading
func Shade(p *scene.Params, pos, normal vmath.Vec3) vmath.Vec3 {
	lightDir := vmath.V3Normalize(vmath.V3Sub(p.LightPos, pos))
	diff := math.Max(vmath.V3Dot(normal, lightDir), 0)

	viewDir := vmath.V3Normalize(vmath.V3Sub(p.ObserverPos, pos))
	reflectDir := vmath.V3Reflect(vmath.V3Neg(lightDir), normal)
	spec := specularStrength * math.Pow(math.Max(vmath.V3Dot(reflectDir, viewDir), 0), shininess)

	lit := vmath.V3Scale(p.LightColor, ambientStrength+diff+spec)
	return vmath.V3Mul(lit, p.ObjectColor)
}
