package littleprince

// Material mirrors the classic fixed-function material model: an RGBA
// component per lighting term plus a shininess exponent.
type Material struct {
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Emission  [4]float32
	Shininess float32
}

// PlanetMaterial suits large lit bodies: strong diffuse response with a
// mild highlight.
func PlanetMaterial() Material {
	return Material{
		Ambient:   [4]float32{0.1, 0.1, 0.1, 1.0},
		Diffuse:   [4]float32{10, 10, 10, 1.0},
		Specular:  [4]float32{5, 5, 5, 1.0},
		Emission:  [4]float32{0, 0, 0, 1.0},
		Shininess: 70.0,
	}
}

// DullMaterial suits matte objects that should not reflect light.
func DullMaterial() Material {
	return Material{
		Ambient:   [4]float32{0.1, 0.1, 0.1, 1.0},
		Diffuse:   [4]float32{1, 1, 1, 1.0},
		Specular:  [4]float32{0.1, 0.1, 0.1, 1.0},
		Emission:  [4]float32{0, 0, 0, 1.0},
		Shininess: 10,
	}
}

// ShinyMaterial suits polished, partially translucent surfaces.
func ShinyMaterial() Material {
	return Material{
		Ambient:   [4]float32{0.1, 0.1, 0.1, 1.0},
		Diffuse:   [4]float32{0.95, 0.95, 0.95, 0.6},
		Specular:  [4]float32{10, 10, 10, 1.0},
		Emission:  [4]float32{0, 0, 0, 1.0},
		Shininess: 120,
	}
}

// GlowingMaterial suits self-illuminated bodies; the emission term
// dominates every other contribution.
func GlowingMaterial() Material {
	return Material{
		Ambient:   [4]float32{0, 0, 0, 1.0},
		Diffuse:   [4]float32{20, 20, 20, 1.0},
		Specular:  [4]float32{5, 5, 5, 1.0},
		Emission:  [4]float32{1000.0, 1000.0, 1000.0, 0.3},
		Shininess: 128,
	}
}
