// Package core_test contains shared fixtures and assertion helpers.
//
// Policy:
//   - Keep core tests stdlib-only; assertion helpers below replace a framework.
//   - No *testing.T usage inside goroutines: workers report over channels.
package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/isomorph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexU = "U"
	VertexV = "V"

	VertexX = "X"
	VertexY = "Y"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight2p5 = 2.5
	Weight5   = 5.0
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NCloners          = 20
)

// NewGraphFull returns a graph with {Weighted, MultiEdges, Loops} enabled for
// broad contract coverage.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
	}
}

// MustTrue fails the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: predicate is false", op)
	}
}

// MustFalse fails the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: predicate is true", op)
	}
}

// MustEqualInt fails if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got=%d want=%d", op, got, want)
	}
}

// MustEqualFloat fails if got != want (exact comparison; tests use round values).
func MustEqualFloat(t *testing.T, got, want float64, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got=%v want=%v", op, got, want)
	}
}

// MustEqualString fails if got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got=%q want=%q", op, got, want)
	}
}

// MustNonEmptyString fails if s == "".
func MustNonEmptyString(t *testing.T, s string, op string) {
	t.Helper()
	if s == "" {
		t.Fatalf("%s: expected non-empty string", op)
	}
}

// MustSortedStrings fails if ids are not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("%s: not sorted asc: %v", op, ids)
	}
}

// MustSameStringSet fails if a and b differ as multisets (order-independent).
func MustSameStringSet(t *testing.T, a, b []string, op string) {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("%s: len(a)=%d len(b)=%d; a=%v b=%v", op, len(a), len(b), a, b)
	}
	aa := append([]string(nil), a...)
	bb := append([]string(nil), b...)
	sort.Strings(aa)
	sort.Strings(bb)
	for i := 0; i < len(aa); i++ {
		if aa[i] != bb[i] {
			t.Fatalf("%s: set mismatch at i=%d; a=%v b=%v", op, i, aa, bb)
		}
	}
}

// MustNoErrorsFromChan fails on the first non-nil error received; errCh must
// be closed by the caller.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()
	for err := range errCh {
		if err != nil {
			t.Fatalf("%s: unexpected concurrent error: %v", op, err)
		}
	}
}
