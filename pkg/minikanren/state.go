package minikanren

// State is the search state threaded through goal evaluation: the
// current substitution and the id the next fresh variable would get.
// States are immutable; goals derive new states from old, never mutate
// one in place.
type State struct {
	Subst  *Substitution
	NextID int64
}

// InitState returns the empty starting state: no bindings, first fresh
// variable id is 0.
func InitState() State {
	return State{Subst: EmptySubstitution()}
}

// Fresh allocates a new logic variable from st, returning the variable
// and the successor state it must be evaluated against.
func (st State) Fresh() (LVar, State) {
	v := LVar{id: st.NextID}
	return v, State{Subst: st.Subst, NextID: st.NextID + 1}
}

// WithSubst returns a copy of st with its substitution replaced.
func (st State) WithSubst(s *Substitution) State {
	return State{Subst: s, NextID: st.NextID}
}
