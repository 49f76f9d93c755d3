// SPDX-License-Identifier: MIT
//
// impl_path.go — implementation of Path(n).
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		if err := addIndexedVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}

		var (
			i        int
			w        float64
			uID, vID string
		)
		// Emit path edges 0->1->...->(n-1) in stable order.
		for i = 1; i < n; i++ {
			uID = cfg.idFn(i - 1)
			vID = cfg.idFn(i)
			w = edgeWeight(g, cfg)

			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
