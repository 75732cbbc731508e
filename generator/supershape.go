package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/chewxy/math32"

	"mesh-generator/math"
)

// Preset names a stock superformula parameter set.
type Preset int

const (
	SmallCrystal1 Preset = iota
	SmallCrystal2
	SmallStar1
	SmallStar2
	SmallStar3
	SmallStar4
	BigStar1
	Urchin1
	Cushion1
	RandomShape
	presetCount
)

var presetNames = [presetCount]string{
	"small_crystal1", "small_crystal2",
	"small_star1", "small_star2", "small_star3", "small_star4",
	"big_star1", "urchin1", "cushion1", "random",
}

// Parameters are two groups of six: (m, n1, n2, n3, a, b) for the
// longitude curve followed by the same for the latitude curve.
var presetValues = [RandomShape][12]float32{
	SmallCrystal1: {8, 60, 100, 30, 1, 1, 12, 10, 10, 10, 1, 1},
	SmallCrystal2: {8, 60, 100, 30, 1, 1, 12, 10, 10, 10, 1, 0.1},
	SmallStar1:    {80, 43.7, 75.4, 88.55, 1.6, 1.95, 1.16, 81, 2, 4, 1.8, 1.4},
	SmallStar2:    {13.5, 42.7, 82.8, 22.1, 1.92, 1.1, 1.96, 12.56, 1.1, 2, 1.58, 1.56},
	SmallStar3:    {12, 33.65, 76.67, 53.5, 2, 1.3, 1, 77.2, 7.22, 5, 1.53, 1.29},
	SmallStar4:    {5.8, 42.66, 70.4, 86.24, 1.47, 1.11, 1.83, 45.5, 9.8, 9.6, 1.4, 1},
	BigStar1:      {100, 7, 50, 12.4, 1.5, 1.6, 1.1, 54, 7.8, 1.2, 1.8, 1},
	Urchin1:       {17, 51.1, 31.4, 30.3, 1, 1.1, 1.2, 69.2, 1.3, 7.7, 1.48, 1.6},
	Cushion1:      {86, 56.3, 56.5, 48.4, 1.8, 2, 1.1, 89.7, 4.7, 5, 1.8, 1.34},
}

// Bounds of the uniform draw for each parameter of RandomShape.
var randomRanges = [12][2]float32{
	{1, 100}, {1, 100}, {1, 100}, {1, 100}, {1, 2}, {1, 2},
	{1, 2}, {1, 100}, {1, 10}, {1, 10}, {1, 2}, {1, 2},
}

// DefaultSuperShapeSegments is the step count used when a caller has none.
const DefaultSuperShapeSegments = 20

func (p Preset) String() string {
	if p < 0 || p >= presetCount {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset resolves a preset name such as "small_star1" or "SmallStar1".
func ParsePreset(name string) (Preset, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	for i, n := range presetNames {
		if strings.ReplaceAll(n, "_", "") == key {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Presets returns every preset, RandomShape last.
func Presets() []Preset {
	out := make([]Preset, presetCount)
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

// SuperShapeValues returns the parameter table for p. RandomShape draws
// from rng, or from the global source when rng is nil.
func SuperShapeValues(p Preset, rng *rand.Rand) ([12]float32, error) {
	switch {
	case p >= 0 && p < RandomShape:
		return presetValues[p], nil
	case p == RandomShape:
		draw := rand.Float32
		if rng != nil {
			draw = rng.Float32
		}
		var out [12]float32
		for i, r := range randomRanges {
			out[i] = r[0] + draw()*(r[1]-r[0])
		}
		return out, nil
	}
	return [12]float32{}, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
}

// superRadius evaluates the superformula at angle phi in degrees.
func superRadius(m, n1, n2, n3, a, b, phi float32) float32 {
	t1 := math32.Pow(math32.Abs(cos(m*phi/4)/a), n2)
	t2 := math32.Pow(math32.Abs(sin(m*phi/4)/b), n3)
	return math32.Pow(t1+t2, 1/-n1)
}

// superShapeSurface sweeps latitude from -90 to +90 degrees in segments/2
// rings of segments vertices each, texture coordinates taken from (x, y).
func (c *Context) superShapeSurface(values [12]float32, segments int) {
	step := 360 / float32(segments)
	lon := func(theta float32) float32 {
		return superRadius(values[0], values[1], values[2], values[3], values[4], values[5], theta)
	}
	lat := func(phi float32) float32 {
		return superRadius(values[6], values[7], values[8], values[9], values[10], values[11], phi)
	}
	ring := func(phi float32) {
		r2 := lat(phi)
		for j := 0; j < segments; j++ {
			theta := float32(j)*step - 180
			r1 := lon(theta)
			p := math.NewVec3(
				r1*cos(theta)*r2*cos(phi),
				r1*sin(theta)*r2*cos(phi),
				r2*sin(phi),
			)
			c.Surface.AddVertex(p, math.NewVec2(p.X, p.Y))
		}
	}

	ring(-90)
	n := uint32(segments)
	for i := uint32(1); i <= n/2; i++ {
		ring(float32(i)*step - 90)
		for j := uint32(0); j < n; j++ {
			k := (j + 1) % n
			c.tri((i-1)*n+j, (i-1)*n+k, i*n+k)
			c.tri((i-1)*n+j, i*n+k, i*n+j)
		}
	}
}
