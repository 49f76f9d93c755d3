// SPDX-License-Identifier: MIT
//
// impl_wheel.go — implementation of Wheel(n).
//
// Canonical definition: W_n = C_{n-1} + CenterVertexID, i.e. a cycle of size
// (n-1) plus a hub vertex. Therefore n ≥ MinWheelNodes so the rim is a
// valid cycle.
//
// Contract:
//   - n ≥ MinWheelNodes (else ErrTooFewVertices).
//   - Builds the outer cycle via Cycle(n-1) with the same cfg semantics.
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Emits spokes Center → rim[i] in index order; for directed graphs also
//     emits the reverse arc for symmetry.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		// Build the outer cycle of size (n-1) with the same (g,cfg).
		// Cycle uses cfg.idFn(i) for i=0..n-2, matching the spoke loop below.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		if err := addVertex(g, cfg, MethodWheel, CenterVertexID); err != nil {
			return err
		}

		var (
			i     int
			w     float64
			rimID string
		)
		// Connect spokes between the hub and each rim vertex in stable order.
		for i = 0; i < n-1; i++ {
			rimID = cfg.idFn(i)
			w = edgeWeight(g, cfg)

			if _, err := g.AddEdge(CenterVertexID, rimID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodWheel, CenterVertexID, rimID, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(rimID, CenterVertexID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodWheel, rimID, CenterVertexID, w, err)
				}
			}
		}

		return nil
	}
}
