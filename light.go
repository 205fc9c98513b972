package littleprince

import "github.com/go-gl/mathgl/mgl32"

// PointLight is a single positional light. Position is in world space
// and gets refreshed every frame by the scene, since the light rides a
// moving body.
type PointLight struct {
	Position mgl32.Vec3
	Diffuse  [4]float32
	Ambient  [4]float32
	Specular [4]float32
}

// StarLight is the lone light of the diorama. Its intensities are far
// above 1 so that distant bodies still receive usable illumination
// after attenuation-free falloff through the material products.
func StarLight() PointLight {
	return PointLight{
		Diffuse:  [4]float32{8.0, 8.0, 8.0, 1.0},
		Ambient:  [4]float32{0.1, 0.2, 0.4, 0.5},
		Specular: [4]float32{8.0, 8.0, 9.0, 1.0},
	}
}
