package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 30, A: 255})
		}
	}
	return img
}

func TestNewTextureFromImage(t *testing.T) {
	tex := NewTextureFromImage("grad", gradientImage(4, 3))

	assert.Equal(t, 4, tex.Width)
	assert.Equal(t, 3, tex.Height)
	assert.Len(t, tex.Pixels, 4*3*4)

	r, g, b, a := tex.Pixel(2, 1)
	assert.Equal(t, [4]uint8{120, 60, 30, 255}, [4]uint8{r, g, b, a})
}

func TestTextureBrightnessClamps(t *testing.T) {
	tex := NewTextureFromImage("grad", gradientImage(4, 3))

	assert.Equal(t, (180+120+30)/3, tex.Brightness(3, 2))
	assert.Equal(t, tex.Brightness(3, 2), tex.Brightness(10, 10))
	assert.Equal(t, 10, tex.Brightness(-5, -5))
}

func TestSolidTexture(t *testing.T) {
	tex := NewSolidTexture("white", 255, 255, 255, 255)
	assert.Equal(t, 255, tex.Brightness(0, 0))
	assert.Equal(t, 1, tex.Image().Bounds().Dx())
}

func TestTextureResized(t *testing.T) {
	tex := NewSolidTexture("red", 200, 0, 0, 255)
	big := tex.Resized(8, 4)

	assert.Equal(t, 8, big.Width)
	assert.Equal(t, 4, big.Height)
	assert.Len(t, big.Pixels, 8*4*4)
	r, _, _, a := big.Pixel(5, 3)
	assert.InDelta(t, 200, int(r), 1)
	assert.Equal(t, uint8(255), a)
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grad.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, gradientImage(5, 2)))
	require.NoError(t, f.Close())

	tex, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 5, tex.Width)
	assert.Equal(t, 2, tex.Height)
	assert.Equal(t, path, tex.Name)

	_, err = LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
