package generator

import (
	"mesh-generator/math"
	"mesh-generator/scene"
)

// Skybox face order, matching the textures argument of SkyBox.
const (
	SkyFront = iota
	SkyBack
	SkyTop
	SkyBottom
	SkyRight
	SkyLeft
)

type skyFace struct {
	corners  [4]math.Vec3 // unit cube corners, scaled by the radius
	uv       [4]math.Vec2
	reversed bool
}

var skyFaces = [6]skyFace{
	SkyFront: {
		[4]math.Vec3{{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}},
		[4]math.Vec2{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		true,
	},
	SkyBack: {
		[4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}},
		[4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		false,
	},
	SkyTop: {
		[4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}},
		[4]math.Vec2{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}},
		true,
	},
	SkyBottom: {
		[4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}},
		[4]math.Vec2{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		false,
	},
	SkyRight: {
		[4]math.Vec3{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}},
		[4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		false,
	},
	SkyLeft: {
		[4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		[4]math.Vec2{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		true,
	},
}

// SkyBox builds an inward-facing cube of half-size radius with one textured
// surface per face. The mesh is drawn first, unlit and without depth writes.
// Nil textures leave their face untextured.
func (g *Generator) SkyBox(textures [6]*scene.Texture, radius float32) *scene.Mesh {
	mesh := scene.NewMesh("skybox")

	for i, f := range skyFaces {
		s := mesh.CreateSurface()
		if textures[i] != nil {
			s.AddTexture(textures[i])
		}
		for k, p := range f.corners {
			s.AddVertex(p.Mul(radius), f.uv[k])
		}
		if f.reversed {
			s.AddTriangle(2, 1, 0)
			s.AddTriangle(3, 2, 0)
		} else {
			s.AddTriangle(0, 1, 2)
			s.AddTriangle(0, 2, 3)
		}
	}

	mesh.Order = scene.OrderBackground
	mesh.Material = scene.UnlitMaterial("skybox")
	mesh.Material.DepthTest = false
	mesh.Material.BackfaceCulling = false
	mesh.RebuildIndexBuffer()
	return mesh
}
