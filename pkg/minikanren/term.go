package minikanren

import (
	"fmt"
	"reflect"
)

// Term is any value the engine can unify: a logic variable, an atom, a
// sequence, or a user-defined extension term.
type Term interface {
	String() string
}

// LVar is a logic variable, identified by its allocation order. Two LVars
// are equal iff their ids match.
type LVar struct {
	id int64
}

func (v LVar) String() string { return fmt.Sprintf("#[%d]", v.id) }

// ID returns the variable's allocation-order id.
func (v LVar) ID() int64 { return v.id }

// IsLVar reports whether t is a logic variable.
func IsLVar(t Term) bool {
	_, ok := t.(LVar)
	return ok
}

// Atom wraps a ground host value (numbers, strings, symbols, booleans).
// Atoms are compared by structural equality of their wrapped value.
type Atom struct {
	Value interface{}
}

func (a Atom) String() string {
	if a.Value == nil {
		return "nil"
	}
	if _, ok := a.Value.(dotMarker); ok {
		return "."
	}
	if s, ok := a.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", a.Value)
}

// A wraps a host value as an Atom. Exists alongside the package-level
// helper of the same behavior in helpers.go for internal use before that
// file is reached by a reader skimming term.go first.
func NewAtom(value interface{}) Atom { return Atom{Value: value} }

// dotMarker is the private sentinel payload behind DOT; its type is
// unexported so user atoms can never collide with it by value.
type dotMarker struct{}

// DOT is the sentinel term marking an improper tail inside a Seq: the
// sequence [a, b, DOT, v] denotes "head a, b; tail v".
var DOT Term = Atom{Value: dotMarker{}}

// isDot reports whether t is the DOT sentinel.
func isDot(t Term) bool {
	a, ok := t.(Atom)
	if !ok {
		return false
	}
	_, ok = a.Value.(dotMarker)
	return ok
}

// Seq is a finite ordered sequence of terms. An empty Seq (len(Elems)==0)
// represents the empty list. A sequence whose penultimate element is DOT
// is "improper": its final element stands for an unknown remaining tail.
type Seq struct {
	Elems []Term
}

func (s Seq) String() string {
	out := "("
	for i, e := range s.Elems {
		if i > 0 {
			out += " "
		}
		out += e.String()
	}
	return out + ")"
}

// Nil is the empty sequence, the miniKanren "nil"/empty list.
var Nil Term = Seq{}

// Cons prepends head onto tail. When tail is already a Seq (proper or
// improper), head is spliced onto its front. Otherwise tail is some
// other term entirely — most commonly a not-yet-bound LVar, the case
// every recursive list relation hits on its way to a result — and Cons
// builds the DOT-encoded improper list [head, DOT, tail] instead of
// failing: a relation built from Cons must unify, not panic, against
// whatever the caller's search has bound tail to so far.
func Cons(head, tail Term) Term {
	s, ok := tail.(Seq)
	if !ok {
		return ImproperList(tail, head)
	}
	elems := make([]Term, 0, len(s.Elems)+1)
	elems = append(elems, head)
	elems = append(elems, s.Elems...)
	return Seq{Elems: elems}
}

// List builds a proper sequence from its arguments.
func List(elems ...Term) Term {
	if len(elems) == 0 {
		return Seq{}
	}
	cp := make([]Term, len(elems))
	copy(cp, elems)
	return Seq{Elems: cp}
}

// ImproperList builds a Seq encoding [elems..., DOT, tail].
func ImproperList(tail Term, elems ...Term) Term {
	out := make([]Term, 0, len(elems)+2)
	out = append(out, elems...)
	out = append(out, DOT, tail)
	return Seq{Elems: out}
}

// ExtTerm is the extension hook for user-defined term kinds: a type that
// implements it participates in equality, unification, and deep-walk
// without the core needing to know its internals.
type ExtTerm interface {
	Term
	EqualExt(other Term) bool
	UnifyExt(other Term, s *Substitution) *Substitution
	DeepWalkExt(s *Substitution) Term
}

// Equal reports whether x and y are the same term: LVars by id, atoms by
// wrapped-value equality, sequences elementwise, extension terms by their
// own EqualExt.
func Equal(x, y Term) bool {
	switch xv := x.(type) {
	case LVar:
		yv, ok := y.(LVar)
		return ok && xv.id == yv.id
	case Atom:
		yv, ok := y.(Atom)
		return ok && reflect.DeepEqual(xv.Value, yv.Value)
	case Seq:
		yv, ok := y.(Seq)
		if !ok || len(xv.Elems) != len(yv.Elems) {
			return false
		}
		for i := range xv.Elems {
			if !Equal(xv.Elems[i], yv.Elems[i]) {
				return false
			}
		}
		return true
	case ExtTerm:
		return xv.EqualExt(y)
	default:
		return false
	}
}
