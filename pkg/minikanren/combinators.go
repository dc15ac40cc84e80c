package minikanren

import "fmt"

// DisjPlus is n-ary disjunction. Every operand is wrapped in Delay before
// folding, so any clause may be recursive without the caller having to
// remember to suspend it itself.
func DisjPlus(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Fail
	}
	result := delayed(goals[0])
	for _, g := range goals[1:] {
		result = Disj2(result, delayed(g))
	}
	return result
}

// ConjPlus is n-ary conjunction, built the same way as DisjPlus.
func ConjPlus(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Succeed
	}
	result := delayed(goals[0])
	for _, g := range goals[1:] {
		result = Conj2(result, delayed(g))
	}
	return result
}

func delayed(g Goal) Goal {
	return Delay(func() Goal { return g })
}

// Cond is disjunction-of-conjunctions sugar: each clause is a slice of
// goals conjoined together, and the clauses themselves are disjoined.
// It is the direct analogue of a cond/conde form built from DisjPlus and
// ConjPlus.
func Cond(clauses ...[]Goal) Goal {
	disjuncts := make([]Goal, len(clauses))
	for i, clause := range clauses {
		disjuncts[i] = ConjPlus(clause...)
	}
	return DisjPlus(disjuncts...)
}

// FreshN allocates n fresh variables and evaluates f with them.
func FreshN(n int, f func([]LVar) Goal) Goal {
	return func(st State) Stream {
		vars := make([]LVar, n)
		cur := st
		for i := 0; i < n; i++ {
			vars[i], cur = cur.Fresh()
		}
		return f(vars)(cur)
	}
}

// Fresh1 through Fresh4 are ergonomic wrappers over FreshN for the
// common small-arity case, so call sites don't have to hand-nest
// CallFresh or slice-index into FreshN's []LVar.
func Fresh1(f func(LVar) Goal) Goal {
	return FreshN(1, func(vs []LVar) Goal { return f(vs[0]) })
}

func Fresh2(f func(LVar, LVar) Goal) Goal {
	return FreshN(2, func(vs []LVar) Goal { return f(vs[0], vs[1]) })
}

func Fresh3(f func(LVar, LVar, LVar) Goal) Goal {
	return FreshN(3, func(vs []LVar) Goal { return f(vs[0], vs[1], vs[2]) })
}

func Fresh4(f func(LVar, LVar, LVar, LVar) Goal) Goal {
	return FreshN(4, func(vs []LVar) Goal { return f(vs[0], vs[1], vs[2], vs[3]) })
}

// GoalTerm boxes a Goal as an Atom so it can travel through terms and be
// invoked later by CallGoal. This is what makes goals-as-data (dynamic
// rule dispatch, meta-interpreters) possible without extending the term
// model itself.
func GoalTerm(g Goal) Term {
	return Atom{Value: g}
}

// CallGoal invokes a Goal that was boxed into a Term by GoalTerm. It
// fails (does not panic) if t does not box a Goal, consistent with the
// engine's policy that malformed terms are ordinary unification failures
// rather than exceptions.
func CallGoal(t Term) Goal {
	return func(st State) Stream {
		a, ok := t.(Atom)
		if !ok {
			return EmptyStream
		}
		g, ok := a.Value.(Goal)
		if !ok {
			return EmptyStream
		}
		return g(st)
	}
}

// mustGoal is a small internal helper used by tests/examples that want a
// panic instead of a silent failure when a Term doesn't box a Goal.
func mustGoal(t Term) Goal {
	a, ok := t.(Atom)
	if !ok {
		panic(fmt.Sprintf("mustGoal: not an Atom: %T", t))
	}
	g, ok := a.Value.(Goal)
	if !ok {
		panic(fmt.Sprintf("mustGoal: Atom does not box a Goal: %T", a.Value))
	}
	return g
}
