// SPDX-License-Identifier: MIT
//
// helpers.go — small shared helpers used by the impl_*.go constructors:
// vertex insertion with metadata, weight resolution, ID composition.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/isomorph/core"
)

// addVertex inserts one vertex and, when cfg carries a metadata generator,
// attaches its non-nil result. All constructors insert vertices through this
// helper so WithVertexMetadata covers every topology uniformly.
// Complexity: O(1) + cost of cfg.vertexMetaFn.
func addVertex(g *core.Graph, cfg builderConfig, method, id string) error {
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	if cfg.vertexMetaFn != nil {
		if md := cfg.vertexMetaFn(id); md != nil {
			if err := g.SetVertexMetadata(id, md); err != nil {
				return fmt.Errorf("%s: SetVertexMetadata(%s): %w", method, id, err)
			}
		}
	}

	return nil
}

// addIndexedVertices inserts vertices cfg.idFn(0..n-1) in ascending order.
// Complexity: O(n).
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	var i int
	for i = 0; i < n; i++ {
		if err := addVertex(g, cfg, method, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// edgeWeight resolves the weight for the next emitted edge: the configured
// generator when the graph is weighted, zero otherwise.
// Complexity: O(1).
func edgeWeight(g *core.Graph, cfg builderConfig) float64 {
	if g.Weighted() {
		return cfg.weightFn(cfg.rng)
	}

	return 0
}

// vertexID composes a prefixed identifier, e.g. vertexID("R", 2) → "R2".
// Complexity: O(len(prefix) + digits(i)).
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
