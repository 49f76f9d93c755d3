// File: api.go
// Role: Thin convenience facade over the Matcher: boolean queries and bounded
//       result collection.
package matcher

// IsIsomorphic reports whether pattern and target are fully isomorphic,
// stopping at the first witness. Extra options (comparators, context) apply;
// the mode is forced to ModeIsomorphism.
func IsIsomorphic(pattern, target GraphView, opts ...Option) (bool, error) {
	return firstExists(pattern, target, ModeIsomorphism, opts)
}

// SubgraphIsIsomorphic reports whether the pattern embeds into the target as
// an induced subgraph, stopping at the first witness. Pass
// WithMode(ModeSubgraph) to request the non-induced (monomorphism) variant
// instead; WithMode(ModeIsomorphism) is rewritten to the induced default.
func SubgraphIsIsomorphic(pattern, target GraphView, opts ...Option) (bool, error) {
	mode := ModeInducedSubgraph

	// Honor an explicit subgraph-mode override from the caller.
	probe := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&probe)
	}
	if probe.err == nil && probe.Mode == ModeSubgraph {
		mode = ModeSubgraph
	}

	return firstExists(pattern, target, mode, opts)
}

// firstExists runs one search with the forced mode and reports whether any
// mapping exists.
func firstExists(pattern, target GraphView, mode Mode, opts []Option) (bool, error) {
	forced := make([]Option, 0, len(opts)+1)
	forced = append(forced, opts...)
	forced = append(forced, WithMode(mode))

	m, err := NewMatcher(pattern, target, forced...)
	if err != nil {
		return false, err
	}
	mapping, err := m.Next()
	if err != nil {
		return false, err
	}

	return mapping != nil, nil
}

// AllMappings pulls results from the matcher until exhaustion or until limit
// mappings are collected (limit <= 0 means unbounded). The matcher keeps its
// position, so a later call continues where this one stopped.
func AllMappings(m *Matcher, limit int) ([]*Mapping, error) {
	var out []*Mapping
	for {
		if limit > 0 && len(out) == limit {
			return out, nil
		}
		mapping, err := m.Next()
		if err != nil {
			return out, err
		}
		if mapping == nil {
			return out, nil
		}
		out = append(out, mapping)
	}
}
