// SPDX-License-Identifier: MIT
//
// impl_random_regular.go — implementation of RandomRegular(n, d).
//
// Canonical model: undirected d-regular simple graph via stub-matching with
// bounded retries. Stubs are paired after a deterministic shuffle (per
// seed). A pairing is validated against graph-mode constraints (no loops if
// !Looped, no multiedges if !Multigraph) before mutating the graph; on an
// invalid pairing the stubs are reshuffled, up to a small fixed limit.
//
// Contract:
//   - Only UNDIRECTED graphs are supported (else ErrUnsupportedGraphMode).
//   - n ≥ 1; 0 ≤ d < n; n·d must be even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: ~O(n·d) per attempt; attempts are constant-bounded.
//
// Determinism: fixed attempt limit and trial order give identical outcomes
// for the same seed. Either a valid realization is produced, or
// ErrConstructFailed after the attempts are exhausted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/core"
)

// maxStubMatchingAttempts bounds pairing retries; kept small so failures
// surface quickly instead of looping on adversarial (n,d) choices.
const maxStubMatchingAttempts = 3

// RandomRegular returns a Constructor that builds an undirected d-regular
// graph using the classic stub-matching (pairing) strategy.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Mode gate: only undirected graphs are supported.
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodRandomRegular, ErrUnsupportedGraphMode)
		}

		// Parameter validation: n≥1, 0≤d<n, parity n·d even.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}

		// RNG is mandatory for stub shuffling.
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		if err := addIndexedVertices(g, cfg, MethodRandomRegular, n); err != nil {
			return err
		}

		// Stub list of length n·d: each vertex index repeated d times.
		stubCount := n * d
		if stubCount == 0 {
			// d=0: isolated vertices only.
			return nil
		}
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		allowLoops := g.Looped()
		allowMulti := g.Multigraph()
		rng := cfg.rng

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			// Shuffle stubs in place; deterministic per seed.
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			// Validate the pairing WITHOUT mutating the graph: every
			// consecutive pair (stubs[2k], stubs[2k+1]) must respect the mode.
			valid := true
			var seen map[[2]int]struct{}
			if !allowMulti {
				seen = make(map[[2]int]struct{}, stubCount/2)
			}
			for i := 0; i < stubCount; i += 2 {
				uIdx, vIdx := stubs[i], stubs[i+1]
				if !allowLoops && uIdx == vIdx {
					valid = false
					break
				}
				if !allowMulti {
					// Normalize the unordered pair key.
					if uIdx > vIdx {
						uIdx, vIdx = vIdx, uIdx
					}
					key := [2]int{uIdx, vIdx}
					if _, dup := seen[key]; dup {
						valid = false
						break
					}
					seen[key] = struct{}{}
				}
			}
			if !valid {
				continue
			}

			// Pairing is valid under the current mode: apply the edges.
			for i := 0; i < stubCount; i += 2 {
				u := cfg.idFn(stubs[i])
				v := cfg.idFn(stubs[i+1])
				w := edgeWeight(g, cfg)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodRandomRegular, u, v, w, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
