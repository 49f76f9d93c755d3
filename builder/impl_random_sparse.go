// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Canonical model: Erdős–Rényi-like generator. Each admissible edge is
// included independently with probability p. Undirected graphs iterate
// unordered pairs {i,j} with i<j; directed graphs iterate ordered pairs and
// allow self-loops iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials; O(1) extra space.
//
// Determinism: fixed trial order (i asc, then j asc) makes outcomes
// identical for the same seed and options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Fail fast; zero side-effects on invalid input.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		if err := addIndexedVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		rng := cfg.rng
		loops := g.Looped()
		directed := g.Directed()

		// take decides one Bernoulli trial; p ∈ {0,1} short-circuits so the
		// RNG stream is untouched on deterministic boundaries.
		take := func() bool {
			if p == MinProbability {
				return false
			}
			if p == MaxProbability {
				return true
			}

			return rng.Float64() <= p
		}

		addOne := func(i, j int) error {
			u, v := cfg.idFn(i), cfg.idFn(j)
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodRandomSparse, u, v, w, err)
			}

			return nil
		}

		var i, j int
		if directed {
			// Directed case: all ordered pairs (i,j), stable order.
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					if i == j && !loops {
						continue
					}
					if take() {
						if err := addOne(i, j); err != nil {
							return err
						}
					}
				}
			}
		} else {
			// Undirected case: unordered pairs {i,j} with i<j, stable order.
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					if take() {
						if err := addOne(i, j); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}
