package minikanren

// DeepWalk is like Walk but, after resolving the root, recurses into
// sequence elements so the result contains no residual bound variables
// anywhere in its structure. For a sequence encoding an improper tail
// ([..., DOT, v]), if v walks to another Seq its elements are spliced
// into the output, collapsing the DOT encoding; otherwise the DOT and
// walked tail are kept as the final two elements.
func DeepWalk(t Term, s *Substitution) Term {
	t = Walk(t, s)
	switch tv := t.(type) {
	case Seq:
		return deepWalkSeq(tv, s)
	case ExtTerm:
		return tv.DeepWalkExt(s)
	default:
		return t
	}
}

func deepWalkSeq(seq Seq, s *Substitution) Term {
	if dot := dotIndex(seq.Elems); dot >= 0 {
		head := make([]Term, dot)
		for i, e := range seq.Elems[:dot] {
			head[i] = DeepWalk(e, s)
		}
		tail := DeepWalk(seq.Elems[dot+1], s)
		if ts, ok := tail.(Seq); ok {
			return Seq{Elems: append(head, ts.Elems...)}
		}
		return Seq{Elems: append(append(head, DOT), tail)}
	}
	out := make([]Term, len(seq.Elems))
	for i, e := range seq.Elems {
		out[i] = DeepWalk(e, s)
	}
	return Seq{Elems: out}
}

// ReifyName renders the canonical stand-in for the k-th unbound variable
// discovered during reification, printed as "_.k".
func ReifyName(k int64) Term {
	return Atom{Value: reifiedName{k}}
}

// reifiedName implements fmt.Stringer, so Atom.String()'s %v fallback
// already renders it as "_.k".
type reifiedName struct{ k int64 }

func (r reifiedName) String() string {
	return "_." + itoa(r.k)
}

func itoa(k int64) string {
	if k == 0 {
		return "0"
	}
	neg := k < 0
	if neg {
		k = -k
	}
	var buf [20]byte
	i := len(buf)
	for k > 0 {
		i--
		buf[i] = byte('0' + k%10)
		k /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ReifyS extends s with a canonical name for every still-unbound variable
// reachable from t in left-to-right deep-walk order. The first unbound
// variable encountered becomes "_.0" (where 0 is the size of the
// substitution being built at the moment it is named), the next "_.1",
// and so on.
func ReifyS(t Term, s *Substitution) *Substitution {
	t = Walk(t, s)
	switch tv := t.(type) {
	case LVar:
		if _, bound := s.Lookup(tv); bound {
			return s
		}
		return Add(s, tv, ReifyName(int64(s.Size())))
	case Seq:
		for _, e := range tv.Elems {
			s = ReifyS(e, s)
		}
		return s
	default:
		return s
	}
}

// ReifyFirst projects a final State into the printable answer for the
// conventional query variable (LVar id 0): deep-walk it under the
// state's own substitution, then deep-walk again under the reification
// naming substitution built from that result.
func ReifyFirst(st State) Term {
	q := LVar{id: 0}
	v := DeepWalk(q, st.Subst)
	names := ReifyS(v, EmptySubstitution())
	return DeepWalk(v, names)
}
