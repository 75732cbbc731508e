package generator

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/scene"
)

func TestSkyBox(t *testing.T) {
	var textures [6]*scene.Texture
	for i := range textures {
		textures[i] = scene.NewSolidTexture("face", uint8(i*40), 0, 0, 255)
	}
	m := quietGenerator().SkyBox(textures, 10)

	require.Len(t, m.Surfaces, 6)
	assert.Equal(t, scene.OrderBackground, m.Order)
	assert.False(t, m.Material.DepthTest)
	assert.False(t, m.Material.Lighting)
	assert.False(t, m.Material.BackfaceCulling)

	for i, s := range m.Surfaces {
		assert.Equal(t, 4, s.VertexCount())
		assert.Equal(t, 2, s.TriangleCount())
		require.Len(t, s.Textures, 1)
		assert.Same(t, textures[i], s.Textures[0])
		for _, v := range s.Vertices {
			assert.InDelta(t, 10, absMax(v.Position.X, v.Position.Y, v.Position.Z), 1e-6)
		}
		// Every face is seen from inside the box.
		assert.Equal(t, 2, outwardFailures(s), "face %d", i)
	}
}

func absMax(vs ...float32) float32 {
	var m float32
	for _, v := range vs {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

func TestSkyBoxWithoutTextures(t *testing.T) {
	m := quietGenerator().SkyBox([6]*scene.Texture{}, 1)
	require.Len(t, m.Surfaces, 6)
	for _, s := range m.Surfaces {
		assert.Empty(t, s.Textures)
	}
}

func TestHeightField(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := uint8(x * 32)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	tex := scene.NewTextureFromImage("ramp", img)

	m := quietGenerator().HeightField(tex, 4)
	require.Len(t, m.Surfaces, 1)
	s := m.Surfaces[0]
	assert.Equal(t, 25, s.VertexCount())
	assert.Equal(t, 32, s.TriangleCount())

	// Column x samples texel 2x, whose brightness is 64x.
	for z := 0; z <= 4; z++ {
		for x := 0; x <= 4; x++ {
			v := s.Vertices[z*5+x]
			px := min(2*x, 7)
			assert.InDelta(t, float32(px*32)/255, v.Position.Y, 1e-6)
			assert.InDelta(t, float32(x)/4-0.5, v.Position.X, 1e-6)
			assert.InDelta(t, 0.5-float32(z)/4, v.Position.Z, 1e-6)
		}
	}

	b := m.Bounds()
	assert.InDelta(t, -0.5, b.Min.X, 1e-6)
	assert.InDelta(t, 0.5, b.Max.X, 1e-6)
}

func TestHeightFieldFlatFacesUp(t *testing.T) {
	tex := scene.NewSolidTexture("white", 255, 255, 255, 255)
	m := quietGenerator().HeightField(tex, 3)
	for _, v := range m.Surfaces[0].Vertices {
		assert.Equal(t, float32(1), v.Position.Y)
		assert.InDelta(t, 1, v.Normal.Y, 1e-6)
	}
}

func TestHeightFieldEmpty(t *testing.T) {
	g := quietGenerator()
	assert.True(t, g.HeightField(nil, 4).IsEmpty())
	assert.True(t, g.HeightField(&scene.Texture{Width: 4, Height: 4}, 4).IsEmpty())
	assert.True(t, g.HeightField(scene.NewSolidTexture("w", 1, 1, 1, 255), 0).IsEmpty())
}
