// SPDX-License-Identifier: MIT
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once, and mirrors to
//     j→i only if g.Directed().
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n²) edges; O(n) extra for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// K_n is defined for n≥1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Precompute the ID slice in deterministic index order for stable reuse.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := addVertex(g, cfg, MethodComplete, ids[i]); err != nil {
				return err
			}
		}

		var (
			i, j int
			w    float64
			u, v string
		)
		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i = 0; i < n; i++ {
			u = ids[i]
			for j = i + 1; j < n; j++ {
				v = ids[j]
				w = edgeWeight(g, cfg)

				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodComplete, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodComplete, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
