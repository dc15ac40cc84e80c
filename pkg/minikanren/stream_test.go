package minikanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEmptyIsIdentity(t *testing.T) {
	b := UnitStream(InitState())
	require.Equal(t, b, Merge(EmptyStream, b))
}

func TestMergeMatureOrdersLeftFirst(t *testing.T) {
	st1 := InitState()
	_, st2 := st1.Fresh()
	a := matureStream{head: st1, next: EmptyStream}
	b := UnitStream(st2)
	m := RealizeHead(Merge(a, b))
	mature, ok := m.(matureStream)
	require.True(t, ok)
	assert.Equal(t, st1, mature.head)
}

func TestRealizeHeadDrivesTrampoline(t *testing.T) {
	depth := 0
	var s Stream
	s = Suspend(func() Stream { return EmptyStream })
	for i := 0; i < 10000; i++ {
		prev := s
		s = Suspend(func() Stream { return prev })
		depth++
	}
	// RealizeHead must unwind this chain without growing the call stack;
	// a recursive implementation would stack-overflow here.
	require.Equal(t, EmptyStream, RealizeHead(s))
}

// eventuallyAfter builds a goal that succeeds only after k recursive
// suspensions, modeling a goal whose first answer requires bounded work.
func eventuallyAfter(k int, q Term) Goal {
	if k <= 0 {
		return Eq(q, Atom{Value: "done"})
	}
	return Delay(func() Goal { return eventuallyAfter(k-1, q) })
}

// neverSucceeds is an ever-suspending, never-producing goal: a minimal
// divergent branch that must not starve a productive sibling.
func neverSucceeds(q Term) Goal {
	return Delay(func() Goal { return neverSucceeds(q) })
}

func TestFairnessMergeBoundsForcingOfDivergentBranch(t *testing.T) {
	const k = 50
	counter := 0
	var divergeFrom func() Stream
	divergeFrom = func() Stream {
		counter++
		return Suspend(divergeFrom)
	}
	var productiveFrom func(remaining int) Stream
	productiveFrom = func(remaining int) Stream {
		if remaining <= 0 {
			return UnitStream(InitState())
		}
		return Suspend(func() Stream { return productiveFrom(remaining - 1) })
	}

	merged := Merge(Suspend(divergeFrom), productiveFrom(k))
	result := RealizeHead(merged)

	_, ok := result.(matureStream)
	require.True(t, ok, "merge of a divergent stream with a k-step productive one must still mature")
	// With the operand-swap fairness rule, forcing the divergent side is
	// interleaved with the productive side's k suspensions rather than
	// run to exhaustion first; the divergent thunk fires O(k) times, not
	// an unbounded or exponential number.
	assert.LessOrEqual(t, counter, k+2)
}

func TestFairnessGoalLevelProductiveAnswerIsReachable(t *testing.T) {
	const k = 30
	goal := CallFresh(func(q LVar) Goal {
		return Disj2(neverSucceeds(q), eventuallyAfter(k, q))
	})
	result := RealizeHead(goal(InitState()))
	m, ok := result.(matureStream)
	require.True(t, ok, "expected the productive branch's answer to surface")
	got := DeepWalk(LVar{id: 0}, m.head.Subst)
	assert.Equal(t, Atom{Value: "done"}, got)
}

func TestBindAppliesGoalToEveryHead(t *testing.T) {
	st1 := InitState()
	_, st2 := st1.Fresh()
	s := matureStream{head: st1, next: matureStream{head: st2, next: EmptyStream}}
	g := func(st State) Stream { return UnitStream(st) }
	out := Bind(s, g)
	count := 0
	for range ToSeq(out) {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestToSeqStopsOnBreak(t *testing.T) {
	// Disjoined with a productive sibling, the stream does mature
	// regularly even though one branch never does; ToSeq's range loop
	// must stop promptly on break rather than over-realizing.
	goal := CallFresh(func(q LVar) Goal {
		return Disj2(neverSucceeds(q), eventuallyAfter(1, q))
	})
	seen := 0
	for range ToSeq(goal(InitState())) {
		seen++
		if seen >= 1 {
			break
		}
	}
	assert.Equal(t, 1, seen)
}
