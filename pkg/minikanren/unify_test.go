package minikanren

import "testing"

func TestUnifyAtoms(t *testing.T) {
	s := Unify(Atom{Value: 1}, Atom{Value: 1}, EmptySubstitution())
	if s == nil {
		t.Fatalf("equal atoms must unify")
	}
	if Unify(Atom{Value: 1}, Atom{Value: 2}, EmptySubstitution()) != nil {
		t.Fatalf("unequal atoms must fail to unify")
	}
}

func TestUnifyBindsLVar(t *testing.T) {
	v := LVar{id: 0}
	s := Unify(v, Atom{Value: "x"}, EmptySubstitution())
	if s == nil {
		t.Fatalf("unification with a fresh LVar must succeed")
	}
	got, ok := s.Lookup(v)
	if !ok || !Equal(got, Atom{Value: "x"}) {
		t.Fatalf("expected v bound to x, got %v", got)
	}
}

func TestUnifyTwoFreshLVarsSymmetric(t *testing.T) {
	a, b := LVar{id: 0}, LVar{id: 1}
	s1 := Unify(a, b, EmptySubstitution())
	s2 := Unify(b, a, EmptySubstitution())
	// Whichever side is bound, walking either variable under either
	// substitution reaches the same ultimate value relationship.
	if Walk(a, s1) == a && Walk(b, s1) == b {
		t.Fatalf("unify(a,b) did not bind either variable")
	}
	if Walk(a, s2) == a && Walk(b, s2) == b {
		t.Fatalf("unify(b,a) did not bind either variable")
	}
}

func TestUnifyOnBottomFails(t *testing.T) {
	if Unify(Atom{Value: 1}, Atom{Value: 1}, nil) != nil {
		t.Errorf("unify must propagate bottom unconditionally")
	}
}

func TestUnifySeqProperLists(t *testing.T) {
	u := List(Atom{Value: 1}, Atom{Value: 2})
	v := List(Atom{Value: 1}, LVar{id: 0})
	s := Unify(u, v, EmptySubstitution())
	if s == nil {
		t.Fatalf("expected proper-list unification to succeed")
	}
	got, ok := s.Lookup(LVar{id: 0})
	if !ok || !Equal(got, Atom{Value: 2}) {
		t.Fatalf("expected tail variable bound to 2, got %v", got)
	}
}

func TestUnifySeqEmptyVsNonEmptyFails(t *testing.T) {
	empty := Seq{}
	nonEmpty := List(Atom{Value: 1})
	if Unify(empty, nonEmpty, EmptySubstitution()) != nil {
		t.Errorf("empty sequence must not unify with a non-empty one")
	}
}

func TestUnifySeqDotBindsTail(t *testing.T) {
	tailVar := LVar{id: 0}
	improper := ImproperList(tailVar, Atom{Value: "a"}, Atom{Value: "b"})
	full := List(Atom{Value: "a"}, Atom{Value: "b"}, Atom{Value: "c"}, Atom{Value: "d"})
	s := Unify(improper, full, EmptySubstitution())
	if s == nil {
		t.Fatalf("expected DOT-tail unification to succeed")
	}
	got, ok := s.Lookup(tailVar)
	if !ok {
		t.Fatalf("expected tail variable to be bound")
	}
	want := List(Atom{Value: "c"}, Atom{Value: "d"})
	if !Equal(got, want) {
		t.Errorf("tail bound to %v, want %v", got, want)
	}
}

func TestUnifyMonotonicity(t *testing.T) {
	x := LVar{id: 0}
	y := LVar{id: 1}
	s := Add(EmptySubstitution(), x, Atom{Value: 1})
	s2 := Unify(y, Atom{Value: 2}, s)
	if s2 == nil {
		t.Fatalf("unify must succeed")
	}
	if got := Walk(x, s2); !Equal(got, Atom{Value: 1}) {
		t.Errorf("existing binding for x must be preserved, got %v", got)
	}
}
