// File: types.go
// Role: Sentinel errors, match modes, attribute comparators and the functional
//       options surface of the matcher package.
// Policy:
//   - Invalid options are recorded internally and surfaced as ErrOptionViolation
//     when NewMatcher is invoked (never a panic at call time).
package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Sentinel errors for matcher construction and execution.
var (
	// ErrGraphNil is returned when a nil GraphView is passed to NewMatcher.
	ErrGraphNil = errors.New("matcher: graph view is nil")

	// ErrKindMismatch is returned when pattern and target disagree on
	// directedness, or when a graph mixes directed and undirected edges.
	ErrKindMismatch = errors.New("matcher: graph kinds are not comparable")

	// ErrComparator is returned when a user-supplied comparator panics.
	// The in-flight search is aborted; no further results are produced.
	ErrComparator = errors.New("matcher: comparator failure")

	// ErrCancelled is returned when the search context is cancelled before
	// exhaustion. Distinguishable from (nil, nil) proven exhaustion.
	ErrCancelled = errors.New("matcher: search cancelled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matcher: invalid option supplied")
)

// Mode selects which structural relation the search establishes between the
// pattern graph and the target graph.
type Mode int

const (
	// ModeIsomorphism requires a total bijection over all nodes of both
	// graphs preserving adjacency exactly.
	ModeIsomorphism Mode = iota

	// ModeInducedSubgraph requires the pattern to map onto an induced
	// subgraph of the target: pattern edges must exist in the target, and
	// the target must carry no extra edges between mapped nodes.
	ModeInducedSubgraph

	// ModeSubgraph is the non-induced (monomorphism) variant: pattern edges
	// must exist in the target, extra target edges among mapped nodes are
	// tolerated.
	ModeSubgraph
)

// String implements fmt.Stringer for diagnostics and test output.
func (m Mode) String() string {
	switch m {
	case ModeIsomorphism:
		return "isomorphism"
	case ModeInducedSubgraph:
		return "induced-subgraph"
	case ModeSubgraph:
		return "subgraph"
	default:
		return "unknown"
	}
}

// NodeMatch decides whether a pattern node with attributes a is semantically
// compatible with a target node with attributes b. A nil NodeMatch means
// "structure only". Either map may be nil.
type NodeMatch func(a, b map[string]interface{}) bool

// EdgeMatch decides whether one pattern edge with attributes a is semantically
// compatible with one target edge with attributes b. For multigraphs the
// engine searches for a pairwise bijection (injection in ModeSubgraph) between
// the parallel-edge sets such that EdgeMatch holds on every matched pair.
// A nil EdgeMatch means "structure only".
type EdgeMatch func(a, b map[string]interface{}) bool

// WeightAttrKey is the attribute key under which CoreView exposes Edge.Weight
// of weighted graphs, and which the weight comparators consult.
const WeightAttrKey = "weight"

// CategoricalNodeMatch returns a NodeMatch requiring deep equality of the
// given attribute keys. Keys absent on both sides compare equal.
func CategoricalNodeMatch(keys ...string) NodeMatch {
	return func(a, b map[string]interface{}) bool {
		return categoricalEqual(a, b, keys)
	}
}

// CategoricalEdgeMatch returns an EdgeMatch requiring deep equality of the
// given attribute keys. Keys absent on both sides compare equal.
func CategoricalEdgeMatch(keys ...string) EdgeMatch {
	return func(a, b map[string]interface{}) bool {
		return categoricalEqual(a, b, keys)
	}
}

// NumericNodeMatch returns a NodeMatch comparing the numeric attribute key
// with absolute tolerance: |x-y| <= absTol. Missing on both sides compares
// equal; missing on one side or non-numeric values compare unequal.
func NumericNodeMatch(key string, absTol float64) NodeMatch {
	return func(a, b map[string]interface{}) bool {
		return numericEqual(a, b, key, absTol, false)
	}
}

// WeightEdgeMatch returns an EdgeMatch comparing the "weight" attribute with
// absolute tolerance: |x-y| <= absTol.
func WeightEdgeMatch(absTol float64) EdgeMatch {
	return func(a, b map[string]interface{}) bool {
		return numericEqual(a, b, WeightAttrKey, absTol, false)
	}
}

// RelativeWeightEdgeMatch returns an EdgeMatch comparing the "weight"
// attribute with relative tolerance: |x-y| <= relTol * max(|x|,|y|).
func RelativeWeightEdgeMatch(relTol float64) EdgeMatch {
	return func(a, b map[string]interface{}) bool {
		return numericEqual(a, b, WeightAttrKey, relTol, true)
	}
}

// categoricalEqual compares the listed keys across both attribute maps.
func categoricalEqual(a, b map[string]interface{}, keys []string) bool {
	var key string
	for _, key = range keys {
		va, okA := a[key]
		vb, okB := b[key]
		if okA != okB {
			return false
		}
		if okA && !reflect.DeepEqual(va, vb) {
			return false
		}
	}

	return true
}

// numericEqual compares one numeric key under absolute or relative tolerance.
func numericEqual(a, b map[string]interface{}, key string, tol float64, relative bool) bool {
	va, okA := asFloat(a[key])
	vb, okB := asFloat(b[key])
	if !okA && !okB {
		return true // attribute absent on both sides
	}
	if okA != okB {
		return false
	}
	diff := math.Abs(va - vb)
	if relative {
		return diff <= tol*math.Max(math.Abs(va), math.Abs(vb))
	}

	return diff <= tol
}

// asFloat widens the common numeric attribute representations to float64.
func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Option configures matcher behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when NewMatcher is invoked.
type Option func(*Options)

// Options holds the configuration of one Matcher instance.
type Options struct {
	// Mode selects the structural relation (default ModeIsomorphism).
	Mode Mode

	// NodeMatch gates candidate pairs on node attributes. Nil disables the check.
	NodeMatch NodeMatch

	// EdgeMatch gates mapped-neighbor edges on edge attributes. Nil disables.
	EdgeMatch EdgeMatch

	// Ctx allows cancellation and deadlines; polled at every search extension.
	Ctx context.Context

	// staticOrder enables the precomputed connectivity+degeneracy visiting
	// order over pattern nodes; staticOrderSet tracks an explicit override.
	staticOrder    bool
	staticOrderSet bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - ModeIsomorphism
//   - no comparators (structure-only matching)
//   - context.Background()
//   - static ordering decided by mode (on for subgraph modes, off for full
//     isomorphism) unless overridden via WithStaticOrder.
func DefaultOptions() Options {
	return Options{
		Mode: ModeIsomorphism,
		Ctx:  context.Background(),
	}
}

// WithMode selects the match mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeIsomorphism, ModeInducedSubgraph, ModeSubgraph:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithNodeMatch installs a node attribute comparator.
func WithNodeMatch(fn NodeMatch) Option {
	return func(o *Options) {
		if fn != nil {
			o.NodeMatch = fn
		}
	}
}

// WithEdgeMatch installs an edge attribute comparator.
func WithEdgeMatch(fn EdgeMatch) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeMatch = fn
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStaticOrder overrides the default static-ordering policy: true forces
// the precomputed pattern visiting order, false forces the classic dynamic
// frontier rule.
func WithStaticOrder(enabled bool) Option {
	return func(o *Options) {
		o.staticOrder = enabled
		o.staticOrderSet = true
	}
}

// useStaticOrder resolves the static-ordering policy against the mode.
func (o *Options) useStaticOrder() bool {
	if o.staticOrderSet {
		return o.staticOrder
	}

	return o.Mode != ModeIsomorphism
}
