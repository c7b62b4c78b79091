package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// scratchTarget stands in for a real options.Option[T] consumer (Printer is
// the real one, see printer_test.go); it only needs enough state to observe
// ordering and error propagation.
type scratchTarget struct {
	budget int
	label  string
	calls  []string
}

func (t *scratchTarget) setBudget(n int) error {
	if n < 0 {
		return errors.New("budget must not be negative")
	}
	t.budget = n
	t.calls = append(t.calls, "setBudget")

	return nil
}

func (t *scratchTarget) setLabel(label string) {
	t.label = label
	t.calls = append(t.calls, "setLabel")
}

func TestNewPropagatesError(t *testing.T) {
	target := &scratchTarget{}

	require.NoError(t, New(func(s *scratchTarget) error { return s.setBudget(8) }).apply(target))
	require.Equal(t, 8, target.budget)

	err := New(func(s *scratchTarget) error { return s.setBudget(-1) }).apply(target)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be negative")
	require.Equal(t, 8, target.budget, "failed option must not clobber prior state")
}

func TestNoErrorAlwaysSucceeds(t *testing.T) {
	target := &scratchTarget{}

	err := NoError(func(s *scratchTarget) { s.setLabel("scratch") }).apply(target)
	require.NoError(t, err)
	require.Equal(t, "scratch", target.label)
}

func TestApplyRunsInOrderAndStopsOnError(t *testing.T) {
	target := &scratchTarget{}
	opts := []Option[*scratchTarget]{
		NoError(func(s *scratchTarget) { s.setLabel("first") }),
		New(func(s *scratchTarget) error { return s.setBudget(3) }),
		New(func(s *scratchTarget) error { return s.setBudget(-5) }),
		NoError(func(s *scratchTarget) { s.setLabel("unreached") }),
	}

	err := Apply(target, opts...)
	require.Error(t, err)
	require.Equal(t, []string{"setLabel", "setBudget"}, target.calls)
	require.Equal(t, "first", target.label)
	require.Equal(t, 3, target.budget)
}

func TestApplyWithNoOptionsLeavesTargetUntouched(t *testing.T) {
	target := &scratchTarget{}
	require.NoError(t, Apply(target))
	require.Zero(t, target.budget)
	require.Empty(t, target.calls)
}

func TestOptionGenericOverNonStructTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 7 })
	require.NoError(t, opt.apply(&n))
	require.Equal(t, 7, n)
}
