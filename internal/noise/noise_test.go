package noise

import "testing"

func TestDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for _, p := range [][2]float64{{0, 0}, {10.5, -3.25}, {1000, 1000}} {
		va := a.Fractal2D(p[0], p[1], 4, 2.0, 0.5)
		vb := b.Fractal2D(p[0], p[1], 4, 2.0, 0.5)
		if va != vb {
			t.Fatalf("noise not deterministic for seed: got %v and %v at %v", va, vb, p)
		}
	}
}

func TestFractalRange(t *testing.T) {
	n := New(1)
	for x := 0.0; x < 50; x += 3.7 {
		for z := 0.0; z < 50; z += 5.3 {
			v := n.Continentalness(x, z)
			if v < -1 || v > 1 {
				t.Fatalf("continentalness out of range at (%v,%v): %v", x, z, v)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(2, -1, 1) != 1 {
		t.Fatal("expected clamp to upper bound")
	}
	if Clamp(-2, -1, 1) != -1 {
		t.Fatal("expected clamp to lower bound")
	}
	if Clamp(0.5, -1, 1) != 0.5 {
		t.Fatal("expected value inside range to pass through")
	}
}

func TestSplineFlatOutsideRange(t *testing.T) {
	s := NewSpline(Knot{-1, 30}, Knot{0, 80}, Knot{1, 160})

	if got := s.Eval(-5); got != 30 {
		t.Fatalf("expected 30 below range, got %v", got)
	}
	if got := s.Eval(5); got != 160 {
		t.Fatalf("expected 160 above range, got %v", got)
	}
}

func TestSplineInterpolatesLinearly(t *testing.T) {
	s := NewSpline(Knot{0, 0}, Knot{10, 100})
	if got := s.Eval(5); got != 50 {
		t.Fatalf("expected 50 at midpoint, got %v", got)
	}
}

func TestSplineUnsortedInput(t *testing.T) {
	s := NewSpline(Knot{1, 160}, Knot{-1, 30}, Knot{0, 80})
	if got := s.Eval(0); got != 80 {
		t.Fatalf("expected knots to be sorted by input, got %v", got)
	}
}
