package minikanren

// Goal is a pure function from a State to a Stream of successor States.
// Goals are values: ordinary Go closures that may be stored, composed,
// and applied repeatedly; they hold no mutable state of their own.
type Goal func(State) Stream

// Eq is the unification goal: on a given state it unifies u against v
// and either succeeds with the extended state or fails outright.
func Eq(u, v Term) Goal {
	return func(st State) Stream {
		s := Unify(u, v, st.Subst)
		if s == nil {
			return EmptyStream
		}
		return UnitStream(st.WithSubst(s))
	}
}

// CallFresh allocates one fresh logic variable from the input state and
// evaluates f with it, against the incremented state.
func CallFresh(f func(LVar) Goal) Goal {
	return func(st State) Stream {
		v, next := st.Fresh()
		return f(v)(next)
	}
}

// Disj2 is logical or: the interleaved union of g1's and g2's results.
func Disj2(g1, g2 Goal) Goal {
	return func(st State) Stream {
		return Merge(g1(st), g2(st))
	}
}

// Conj2 is logical and: every result of g1 is threaded through g2, with
// the results merged fairly.
func Conj2(g1, g2 Goal) Goal {
	return func(st State) Stream {
		return Bind(g1(st), g2)
	}
}

// Delay suspends construction of a goal until it is actually evaluated
// against a state. It is required for recursive goals: calling the
// recursive constructor directly (rather than through a thunk) would
// recurse at construction time and never return. thunk is only invoked
// once the suspension is forced by the stream scheduler.
func Delay(thunk func() Goal) Goal {
	return func(st State) Stream {
		tracef("delay suspended at next_id=%d", st.NextID)
		return Suspend(func() Stream { return thunk()(st) })
	}
}

// Succeed is the goal that always succeeds, leaving the state unchanged.
func Succeed(st State) Stream { return UnitStream(st) }

// Fail is the goal that never succeeds.
func Fail(st State) Stream { return EmptyStream }
