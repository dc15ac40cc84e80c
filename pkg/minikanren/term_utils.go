package minikanren

// CopyTerm unifies copy with a structurally identical version of original
// in which every logic variable has been replaced by a fresh one, with
// sharing preserved: two occurrences of the same original variable map
// to the same fresh variable in the copy.
func CopyTerm(original, copy Term) Goal {
	return func(st State) Stream {
		walked := DeepWalk(original, st.Subst)
		varMap := make(map[int64]LVar)
		next := st.NextID
		copied := copyTermRecursive(walked, varMap, &next)
		return Eq(copy, copied)(State{Subst: st.Subst, NextID: next})
	}
}

func copyTermRecursive(t Term, varMap map[int64]LVar, next *int64) Term {
	switch tv := t.(type) {
	case LVar:
		if fresh, ok := varMap[tv.id]; ok {
			return fresh
		}
		fresh := LVar{id: *next}
		*next++
		varMap[tv.id] = fresh
		return fresh
	case Seq:
		out := make([]Term, len(tv.Elems))
		for i, e := range tv.Elems {
			out[i] = copyTermRecursive(e, varMap, next)
		}
		return Seq{Elems: out}
	default:
		return t
	}
}

// Ground succeeds iff term, once walked, contains no unbound variable
// anywhere in its structure.
func Ground(term Term) Goal {
	return func(st State) Stream {
		walked := DeepWalk(term, st.Subst)
		if isTermGround(walked) {
			return UnitStream(st)
		}
		return EmptyStream
	}
}

func isTermGround(t Term) bool {
	switch tv := t.(type) {
	case LVar:
		return false
	case Seq:
		for _, e := range tv.Elems {
			if !isTermGround(e) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Arityo relates a term to its arity: 0 for an atom, its element count for
// a sequence, and failure for an unbound variable (arity of an unbound
// variable is undefined, not zero).
func Arityo(term, arity Term) Goal {
	return func(st State) Stream {
		walked := DeepWalk(term, st.Subst)
		switch wv := walked.(type) {
		case LVar:
			return EmptyStream
		case Seq:
			return Eq(arity, Atom{Value: len(wv.Elems)})(st)
		default:
			return Eq(arity, Atom{Value: 0})(st)
		}
	}
}

// Functoro relates a non-empty sequence to its functor, taken here as the
// sequence's first element (the Go analogue of a compound term's functor
// in a cons-pair encoding). Fails for atoms, unbound variables, and the
// empty sequence.
func Functoro(term, functor Term) Goal {
	return func(st State) Stream {
		walked := DeepWalk(term, st.Subst)
		seq, ok := walked.(Seq)
		if !ok || len(seq.Elems) == 0 {
			return EmptyStream
		}
		return Eq(functor, seq.Elems[0])(st)
	}
}

// CompoundTermo succeeds iff term walks to a non-empty Seq.
func CompoundTermo(term Term) Goal {
	return func(st State) Stream {
		walked := DeepWalk(term, st.Subst)
		if seq, ok := walked.(Seq); ok && len(seq.Elems) > 0 {
			return UnitStream(st)
		}
		return EmptyStream
	}
}

// SimpleTermo succeeds iff term walks to an Atom (or the empty sequence,
// which carries no compound structure). Unbound variables and non-empty
// sequences are not simple.
func SimpleTermo(term Term) Goal {
	return func(st State) Stream {
		walked := DeepWalk(term, st.Subst)
		switch wv := walked.(type) {
		case Atom:
			return UnitStream(st)
		case Seq:
			if len(wv.Elems) == 0 {
				return UnitStream(st)
			}
			return EmptyStream
		default:
			return EmptyStream
		}
	}
}
