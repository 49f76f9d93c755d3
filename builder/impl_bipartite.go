// SPDX-License-Identifier: MIT
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Adds left partition IDs "{leftPrefix}{i}", i=0..n1-1, then right
//     partition IDs "{rightPrefix}{j}", j=0..n2-1 (prefixes resolved in
//     newBuilderConfig; empty → "L"/"R").
//   - Emits every cross-pair L_i → R_j; mirrors R_j → L_i only if
//     g.Directed().
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges; O(n1+n2) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph
// K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Both partitions must be non-empty.
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		// Fill both partitions in ascending index order.
		leftIDs := make([]string, n1)
		for i := 0; i < n1; i++ {
			leftIDs[i] = vertexID(cfg.leftPrefix, i)
			if err := addVertex(g, cfg, MethodCompleteBipartite, leftIDs[i]); err != nil {
				return err
			}
		}
		rightIDs := make([]string, n2)
		for j := 0; j < n2; j++ {
			rightIDs[j] = vertexID(cfg.rightPrefix, j)
			if err := addVertex(g, cfg, MethodCompleteBipartite, rightIDs[j]); err != nil {
				return err
			}
		}

		var (
			i, j int
			w    float64
			u, v string
		)
		// Emit all cross edges in stable (i over left, j over right) order.
		for i = 0; i < n1; i++ {
			u = leftIDs[i]
			for j = 0; j < n2; j++ {
				v = rightIDs[j]
				w = edgeWeight(g, cfg)

				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodCompleteBipartite, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodCompleteBipartite, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
