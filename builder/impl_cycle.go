// SPDX-License-Identifier: MIT
//
// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Fail fast: no work on invalid input.
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		if err := addIndexedVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}

		var (
			i        int
			w        float64
			uID, vID string
		)
		// Emit edges in ascending i; i==n-1 closes the ring back to 0.
		for i = 0; i < n; i++ {
			uID = cfg.idFn(i)
			vID = cfg.idFn((i + 1) % n)
			w = edgeWeight(g, cfg)

			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
