// File: matcher.go
// Role: The engine: an explicit resumable frame stack driving the depth-first
//       search, yielding mappings lazily through Next().
// Lifecycle:
//   - Start (empty mapping) → Searching → Success (yield) → Backtrack →
//     Exhausted. Next() resumes exactly where the previous yield left off.
// Concurrency:
//   - One Matcher owns its search state exclusively; distinct Matcher
//     instances over shared GraphViews are safe to run in parallel.
package matcher

import "fmt"

// frame is one level of the explicit recursion stack: the pattern node chosen
// at this depth, the ordered target candidates, the resume cursor, and the
// undo record of the currently applied extension.
type frame struct {
	a        int
	cands    []int
	next     int
	und      delta
	extended bool
}

// Matcher drives a single pattern/target search configuration. It is bound to
// (pattern, target, mode, comparators) at construction; Reset() rewinds it to
// Start for sequential reuse.
type Matcher struct {
	pattern, target GraphView
	idx1, idx2      *graphIndex
	opts            Options
	mode            Mode

	order []int // static visiting order over pattern nodes; nil = dynamic rule

	st    *matchState
	stack []frame

	err          error
	done         bool
	emptyPattern bool
	emptyYielded bool
}

// NewMatcher validates inputs and prepares a search over the pair.
//
// Returned errors: ErrGraphNil for nil views, ErrOptionViolation for invalid
// options, ErrKindMismatch when pattern and target disagree on directedness.
// Node-count preconditions are NOT errors: a full-isomorphism query over
// different-sized graphs (or a pattern larger than its target) simply proves
// exhaustion immediately.
func NewMatcher(pattern, target GraphView, opts ...Option) (*Matcher, error) {
	if pattern == nil || target == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if pattern.Directed() != target.Directed() {
		return nil, fmt.Errorf("%w: pattern directed=%t, target directed=%t",
			ErrKindMismatch, pattern.Directed(), target.Directed())
	}

	m := &Matcher{
		pattern: pattern,
		target:  target,
		idx1:    buildIndex(pattern),
		idx2:    buildIndex(target),
		opts:    o,
		mode:    o.Mode,
	}
	if o.useStaticOrder() && m.idx1.n > 0 {
		m.order = staticOrder(m.idx1)
	}
	m.Reset()

	return m, nil
}

// Reset rewinds the matcher to Start, discarding any in-flight search state.
// The binding (pattern, target, mode, comparators) is unchanged.
func (m *Matcher) Reset() {
	m.st = newMatchState(m.idx1, m.idx2)
	m.stack = m.stack[:0]
	m.err = nil
	m.emptyYielded = false

	// Size preconditions decide up front whether any mapping can exist.
	switch m.mode {
	case ModeIsomorphism:
		m.done = m.idx1.n != m.idx2.n
	default:
		m.done = m.idx1.n > m.idx2.n
	}
	m.emptyPattern = m.idx1.n == 0

	if !m.done && !m.emptyPattern {
		a, cands := m.nextCandidates()
		m.stack = append(m.stack, frame{a: a, cands: cands})
	}
}

// Next resumes the search and returns the next complete mapping.
//
// Contract:
//   - (mapping, nil): one verified result; call Next again for more.
//   - (nil, nil): proven exhaustion, no further results exist.
//   - (nil, err): the search aborted (ErrComparator, or ErrCancelled wrapping
//     the context error); no further results will be produced.
//
// The iterator is single-pass: it holds live backtracking state between
// yields. Use Reset() to start over.
func (m *Matcher) Next() (*Mapping, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.done {
		return nil, nil
	}

	// Empty pattern: the vacuous embedding is the single result.
	if m.emptyPattern {
		m.done = true
		if m.emptyYielded {
			return nil, nil
		}
		m.emptyYielded = true

		return newMapping(m.idx1, m.idx2, nil), nil
	}

	for len(m.stack) > 0 {
		if err := m.opts.Ctx.Err(); err != nil {
			m.err = fmt.Errorf("%w: %w", ErrCancelled, err)

			return nil, m.err
		}

		top := &m.stack[len(m.stack)-1]

		// A still-applied extension at the top means we are resuming after a
		// yield or returning from an exhausted child: undo it first.
		if top.extended {
			m.st.retract(top.und)
			top.extended = false
		}

		if top.next >= len(top.cands) || top.a == unmapped {
			m.stack = m.stack[:len(m.stack)-1]

			continue
		}

		b := top.cands[top.next]
		top.next++

		if !syntacticFeasible(m.st, top.a, b, m.mode) {
			continue
		}
		ok, err := m.semanticFeasible(top.a, b)
		if err != nil {
			m.err = err

			return nil, m.err
		}
		if !ok {
			continue
		}

		top.und = m.st.extend(top.a, b)
		top.extended = true

		if m.st.depth == m.idx1.n {
			// Success: yield with the stack intact; the applied extension is
			// retracted on resume.
			return newMapping(m.idx1, m.idx2, m.st.coreP), nil
		}

		a, cands := m.nextCandidates()
		m.stack = append(m.stack, frame{a: a, cands: cands})
	}

	m.done = true

	return nil, nil
}

// Mode returns the structural relation this matcher establishes.
func (m *Matcher) Mode() Mode { return m.mode }
