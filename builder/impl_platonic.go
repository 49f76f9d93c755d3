// SPDX-License-Identifier: MIT
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   - name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     unknown name → ErrOptionViolation.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits shell edges in stable order (pre-sorted in
//     variants_platonic.go); for directed graphs mirrors each edge.
//   - If withCenter, adds fixed hub ID CenterVertexID and spokes (mirrored
//     if directed).
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(V+E) for the selected solid (V≤20, E≤30); O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic
// shell, optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Canonical vertex count for the selected solid.
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		if err := addIndexedVertices(g, cfg, MethodPlatonicSolid, n); err != nil {
			return err
		}

		directed := g.Directed()

		// Emit the pre-sorted canonical shell edges deterministically.
		edges, ok := platonicEdgeSets[name]
		if !ok {
			// Counts and edge sets are maintained together; missing data is a defect.
			return fmt.Errorf("%s: missing edge set for %q: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}
		for _, ch := range edges {
			uID := cfg.idFn(ch.U)
			vID := cfg.idFn(ch.V)
			w := edgeWeight(g, cfg)

			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodPlatonicSolid, uID, vID, w, err)
			}
			if directed {
				if _, err := g.AddEdge(vID, uID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodPlatonicSolid, vID, uID, w, err)
				}
			}
		}

		// Optional stellation: hub plus spokes in index order.
		if withCenter {
			if err := addVertex(g, cfg, MethodPlatonicSolid, CenterVertexID); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				vID := cfg.idFn(i)
				w := edgeWeight(g, cfg)

				if _, err := g.AddEdge(CenterVertexID, vID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodPlatonicSolid, CenterVertexID, vID, w, err)
				}
				if directed {
					if _, err := g.AddEdge(vID, CenterVertexID, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodPlatonicSolid, vID, CenterVertexID, w, err)
					}
				}
			}
		}

		return nil
	}
}
