package minikanren

// Unify attempts to solve u == v against s, returning an extended
// substitution on success or nil (bottom) on failure. Unification never
// panics on mismatched term shapes; a shape mismatch is simply a failure,
// matching the "errors are values, not exceptions" design.
func Unify(u, v Term, s *Substitution) *Substitution {
	if s == nil {
		return nil
	}

	u = Walk(u, s)
	v = Walk(v, s)

	if Equal(u, v) {
		return s
	}

	if lv, ok := u.(LVar); ok {
		return Add(s, lv, v)
	}
	if lv, ok := v.(LVar); ok {
		return Add(s, lv, u)
	}

	su, uOK := u.(Seq)
	sv, vOK := v.(Seq)
	if uOK && vOK {
		return unifySeq(su, sv, s)
	}

	if eu, ok := u.(ExtTerm); ok {
		return eu.UnifyExt(v, s)
	}
	if ev, ok := v.(ExtTerm); ok {
		return ev.UnifyExt(u, s)
	}

	return nil
}

// unifySeq unifies two sequences, honoring the DOT improper-tail
// encoding: a sequence [DOT, t, ...] unifies by binding t against the
// entirety of the other operand.
func unifySeq(u, v Seq, s *Substitution) *Substitution {
	if len(u.Elems) >= 2 && isDot(u.Elems[0]) {
		return Unify(u.Elems[1], v, s)
	}
	if len(v.Elems) >= 2 && isDot(v.Elems[0]) {
		return Unify(v.Elems[1], u, s)
	}

	uEmpty := len(u.Elems) == 0
	vEmpty := len(v.Elems) == 0
	if uEmpty != vEmpty {
		return nil
	}
	if uEmpty {
		return s
	}

	s = Unify(u.Elems[0], v.Elems[0], s)
	if s == nil {
		return nil
	}
	return unifySeq(Seq{Elems: u.Elems[1:]}, Seq{Elems: v.Elems[1:]}, s)
}
