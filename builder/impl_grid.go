// SPDX-License-Identifier: MIT
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Canonical model: 2D orthogonal grid with 4-neighborhood (right & bottom
// neighbors per cell). Vertex IDs use a fixed, documented scheme "r,c" in
// row-major order; this is a deliberate exception to cfg.idFn to keep
// coordinates explicit.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices row-major with IDs "r,c".
//   - Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they
//     exist; in directed graphs, also emits the reverse arc for symmetry.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(rows·cols) vertices + O(rows·cols) edges; O(1) extra.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/isomorph/core"
)

// GridVertexID formats a 2D grid coordinate as "r,c".
// Complexity: O(digits(r)+digits(c)).
func GridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// Add all vertices in deterministic row-major order.
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := addVertex(g, cfg, MethodGrid, GridVertexID(r, c)); err != nil {
					return err
				}
			}
		}

		addBoth := func(u, v string) error {
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodGrid, u, v, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodGrid, v, u, w, err)
				}
			}

			return nil
		}

		// For each (r,c) emit Right then Bottom if present (stable order).
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := GridVertexID(r, c)
				if c+1 < cols {
					if err := addBoth(u, GridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addBoth(u, GridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
