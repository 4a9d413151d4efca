package datagen

import "testing"

func TestIntNBounds(t *testing.T) {
	f := NewFaker()

	for i := 0; i < 1000; i++ {
		v := f.IntN(300, 1200)
		if v < 300 || v >= 1200 {
			t.Fatalf("IntN(300, 1200) = %d, outside [300, 1200)", v)
		}
	}

	// Degenerate interval collapses to min.
	if v := f.IntN(5, 5); v != 5 {
		t.Errorf("IntN(5, 5) = %d, expected 5", v)
	}
	if v := f.IntN(5, 3); v != 5 {
		t.Errorf("IntN(5, 3) = %d, expected 5", v)
	}
}

func TestFloat64Bounds(t *testing.T) {
	f := NewFaker()

	for i := 0; i < 1000; i++ {
		v := f.Float64(0.003, 0.007)
		if v < 0.003 || v > 0.007 {
			t.Fatalf("Float64(0.003, 0.007) = %f, outside range", v)
		}
	}
}

func TestPriceBounds(t *testing.T) {
	f := NewFaker()

	for i := 0; i < 1000; i++ {
		v := f.Price(2.50, 6.00)
		if v < 2.50 || v > 6.00 {
			t.Fatalf("Price(2.50, 6.00) = %f, outside range", v)
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewFakerWithSeed(1234)
	b := NewFakerWithSeed(1234)

	for i := 0; i < 100; i++ {
		if av, bv := a.IntN(0, 10000), b.IntN(0, 10000); av != bv {
			t.Fatalf("Seeded IntN diverged at draw %d: %d != %d", i, av, bv)
		}
		if av, bv := a.Float64(0, 1), b.Float64(0, 1); av != bv {
			t.Fatalf("Seeded Float64 diverged at draw %d: %f != %f", i, av, bv)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(1)

	items := []string{"alpha", "beta", "gamma"}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		v := Choose(f, items)
		seen[v] = true
	}
	for _, item := range items {
		if !seen[item] {
			t.Errorf("Choose never returned %q", item)
		}
	}

	if v := Choose(f, []string{}); v != "" {
		t.Errorf("Choose on empty slice = %q, expected zero value", v)
	}
}
