package scene

import "mesh-generator/core"

// Material describes the render state a mesh is drawn with.
type Material struct {
	Name    string
	Diffuse core.Color
	Ambient core.Color

	Lighting        bool // when false, output raw vertex/texture color
	DepthTest       bool
	BackfaceCulling bool
}

// DefaultMaterial returns a white lit material with depth test and culling on.
func DefaultMaterial() *Material {
	return &Material{
		Name:            "Default",
		Diffuse:         core.ColorWhite,
		Ambient:         core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Lighting:        true,
		DepthTest:       true,
		BackfaceCulling: true,
	}
}

// UnlitMaterial returns a material for line work and backgrounds.
// Diffuse is black and ambient is full white, so only vertex color shows.
func UnlitMaterial(name string) *Material {
	return &Material{
		Name:            name,
		Diffuse:         core.ColorBlack,
		Ambient:         core.ColorWhite,
		Lighting:        false,
		DepthTest:       true,
		BackfaceCulling: true,
	}
}
