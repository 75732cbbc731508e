package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload; do not access directly.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

// LoadTexture reads a PNG, JPEG, BMP or TIFF file from disk and returns a
// CPU-side Texture in RGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return NewTextureFromImage(path, img), nil
}

// NewTextureFromImage converts any image to an RGBA8 texture.
func NewTextureFromImage(name string, img image.Image) *Texture {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	return &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: rgba.Pix,
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// Image wraps the pixel buffer as an *image.RGBA without copying.
func (t *Texture) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    t.Pixels,
		Stride: t.Width * 4,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}

// Resized returns a copy scaled to w x h with linear filtering.
func (t *Texture) Resized(w, h int) *Texture {
	out := transform.Resize(t.Image(), w, h, transform.Linear)
	return &Texture{
		Name:   t.Name,
		Width:  w,
		Height: h,
		Pixels: out.Pix,
	}
}

// Pixel returns the RGBA bytes at (x, y), clamped to the texture edges.
func (t *Texture) Pixel(x, y int) (r, g, b, a uint8) {
	x = clampCoord(x, t.Width)
	y = clampCoord(y, t.Height)
	i := (y*t.Width + x) * 4
	return t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]
}

// Brightness returns the integer mean of the red, green and blue channels
// at (x, y), in [0, 255].
func (t *Texture) Brightness(x, y int) int {
	r, g, b, _ := t.Pixel(x, y)
	return (int(r) + int(g) + int(b)) / 3
}

func clampCoord(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
