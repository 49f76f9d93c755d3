// SPDX-License-Identifier: MIT
//
// impl_star.go — implementation of Star(n).
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center → leaf[i]. For directed graphs,
//     also emits leaf[i] → Center to keep spoke symmetry.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n-1) edges (2n-2 directed); O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub CenterVertexID and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		// Insert the hub vertex with a fixed, documented ID.
		if err := addVertex(g, cfg, MethodStar, CenterVertexID); err != nil {
			return err
		}

		var (
			i      int
			w      float64
			leafID string
		)
		// Add leaves in deterministic order and connect spokes.
		for i = 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := addVertex(g, cfg, MethodStar, leafID); err != nil {
				return err
			}

			w = edgeWeight(g, cfg)
			if _, err := g.AddEdge(CenterVertexID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodStar, CenterVertexID, leafID, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(leafID, CenterVertexID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodStar, leafID, CenterVertexID, w, err)
				}
			}
		}

		return nil
	}
}
