// File: mapping.go
// Role: The Mapping result value: a completed pattern→target node bijection
//       with forward and reverse lookup.
package matcher

import "sort"

// Mapping is one complete match produced by the search: a bijection from
// pattern node IDs onto target node IDs (an injection into the target for
// subgraph modes). Mappings are immutable snapshots; the matcher never
// mutates a yielded Mapping.
type Mapping struct {
	fwd map[string]string
	inv map[string]string
}

// newMapping materializes the internal int-indexed pairing into ID space.
func newMapping(idx1, idx2 *graphIndex, coreP []int) *Mapping {
	m := &Mapping{
		fwd: make(map[string]string, len(coreP)),
		inv: make(map[string]string, len(coreP)),
	}
	var a, b int
	for a, b = range coreP {
		m.fwd[idx1.ids[a]] = idx2.ids[b]
		m.inv[idx2.ids[b]] = idx1.ids[a]
	}

	return m
}

// Get returns the target node a pattern node is mapped to.
func (m *Mapping) Get(patternID string) (string, bool) {
	v, ok := m.fwd[patternID]
	return v, ok
}

// GetInverse returns the pattern node a target node is mapped from.
func (m *Mapping) GetInverse(targetID string) (string, bool) {
	v, ok := m.inv[targetID]
	return v, ok
}

// Len returns the number of mapped pairs (= pattern node count).
func (m *Mapping) Len() int { return len(m.fwd) }

// Pairs returns the mapping as [pattern, target] pairs sorted by pattern ID,
// for deterministic enumeration in tests and fixtures.
func (m *Mapping) Pairs() [][2]string {
	out := make([][2]string, 0, len(m.fwd))
	var p, t string
	for p, t = range m.fwd {
		out = append(out, [2]string{p, t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// AsMap materializes the forward mapping into a fresh map owned by the caller.
func (m *Mapping) AsMap() map[string]string {
	out := make(map[string]string, len(m.fwd))
	var p, t string
	for p, t = range m.fwd {
		out[p] = t
	}

	return out
}
