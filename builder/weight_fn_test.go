// Package builder_test verifies the weight distribution helpers: constant
// and sampled values, nil-RNG fallbacks, and constructor panics.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/isomorph/builder"
)

func TestConstantWeightFn(t *testing.T) {
	t.Parallel()

	fn := builder.ConstantWeightFn(3.5)
	if got := fn(nil); got != 3.5 {
		t.Errorf("ConstantWeightFn(nil rng) = %g, want 3.5", got)
	}
	if got := fn(rand.New(rand.NewSource(1))); got != 3.5 {
		t.Errorf("ConstantWeightFn(rng) = %g, want 3.5", got)
	}
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()

	fn := builder.UniformWeightFn(2, 5)

	// Nil RNG falls back to the deterministic default.
	if got := fn(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn(nil rng) = %g, want %g", got, builder.DefaultEdgeWeight)
	}

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		w := fn(rng)
		if w < 2 || w >= 5 {
			t.Fatalf("sample %d = %g outside [2,5)", i, w)
		}
	}

	// Degenerate interval is constant.
	if got := builder.UniformWeightFn(4, 4)(rng); got != 4 {
		t.Errorf("degenerate interval sample = %g, want 4", got)
	}
}

func TestNormalAndExponentialWeightFn(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))

	normal := builder.NormalWeightFn(10, 2)
	for i := 0; i < 100; i++ {
		if w := normal(rng); w < 0 {
			t.Fatalf("normal sample %d = %g is negative", i, w)
		}
	}
	if got := normal(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("NormalWeightFn(nil rng) = %g, want default", got)
	}

	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 100; i++ {
		if w := exp(rng); w < 0 {
			t.Fatalf("exponential sample %d = %g is negative", i, w)
		}
	}
	if got := exp(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("ExponentialWeightFn(nil rng) = %g, want default", got)
	}
}

func TestWeightFnConstructors_PanicOnBadParams(t *testing.T) {
	t.Parallel()

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	mustPanic("ConstantWeightFn negative", func() { builder.ConstantWeightFn(-1) })
	mustPanic("UniformWeightFn inverted", func() { builder.UniformWeightFn(5, 2) })
	mustPanic("NormalWeightFn negative stddev", func() { builder.NormalWeightFn(0, -1) })
	mustPanic("ExponentialWeightFn zero rate", func() { builder.ExponentialWeightFn(0) })
}
