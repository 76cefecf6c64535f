// Package noise provides seeded, deterministic scalar noise fields used by
// terrain generation. Every exported function is a pure read of the
// underlying Simplex generator, so a *Noise is safe for concurrent use by
// any number of goroutines once constructed.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise wraps a seeded Simplex generator and layers fractal (FBm) sampling
// and the three named terrain fields on top of it.
type Noise struct {
	simplex opensimplex.Noise
}

// New builds a Noise generator from a 32-bit world seed. The same seed
// always produces the same field, regardless of call order.
func New(seed uint32) *Noise {
	return &Noise{simplex: opensimplex.New(int64(seed))}
}

// Sample2D returns raw 2D Simplex noise in [-1, 1].
func (n *Noise) Sample2D(x, y float64) float64 {
	return n.simplex.Eval2(x, y)
}

// Sample3D returns raw 3D Simplex noise in [-1, 1].
func (n *Noise) Sample3D(x, y, z float64) float64 {
	return n.simplex.Eval3(x, y, z)
}

// Fractal2D sums octaves of Sample2D at increasing frequency and decreasing
// amplitude (fractal Brownian motion), normalized back into [-1, 1].
func (n *Noise) Fractal2D(x, y float64, octaves int, lacunarity, gain float64) float64 {
	var sum, amplitude, freq, max float64
	amplitude = 1
	freq = 1
	for i := 0; i < octaves; i++ {
		sum += n.Sample2D(x*freq, y*freq) * amplitude
		max += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if max == 0 {
		return 0
	}
	return sum / max
}

// Fractal3D is the 3D analogue of Fractal2D.
func (n *Noise) Fractal3D(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	var sum, amplitude, freq, max float64
	amplitude = 1
	freq = 1
	for i := 0; i < octaves; i++ {
		sum += n.Sample3D(x*freq, y*freq, z*freq) * amplitude
		max += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if max == 0 {
		return 0
	}
	return sum / max
}

// Continentalness is a large, smooth FBm field used for gross landmass shape.
func (n *Noise) Continentalness(x, z float64) float64 {
	return n.Fractal2D(x, z, 3, 1.5, 0.5)
}

// Erosion is a medium-scale FBm field that flattens or roughens terrain.
func (n *Noise) Erosion(x, z float64) float64 {
	return n.Fractal2D(x, z, 4, 2.0, 0.5)
}

// PeaksAndValleys is a medium-scale FBm field that adds sharp local relief
// where erosion is low.
func (n *Noise) PeaksAndValleys(x, z float64) float64 {
	return n.Fractal2D(x, z, 4, 2.0, 0.5)
}

// Clamp restricts t to [lo, hi].
func Clamp(t, lo, hi float64) float64 {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}
