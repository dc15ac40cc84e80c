package minikanren

import (
	"fmt"
	"strings"
)

// A wraps a host value as an Atom term. Shorthand for NewAtom.
func A(value interface{}) Term { return NewAtom(value) }

// L builds a sequence term from its arguments. Each value is converted to
// a Term: Term values are used as-is, everything else is wrapped via A.
func L(values ...interface{}) Term {
	terms := make([]Term, len(values))
	for i, v := range values {
		if t, ok := v.(Term); ok {
			terms[i] = t
		} else {
			terms[i] = A(v)
		}
	}
	return List(terms...)
}

// Pretty renders a Term in a compact, friendly format: the empty
// sequence as (), proper sequences as (a b c), improper sequences
// (DOT-encoded) as (a b . tail), strings quoted, other atoms via %v.
func Pretty(t Term) string {
	switch tv := t.(type) {
	case Atom:
		return tv.String()
	case Seq:
		if dot := dotIndex(tv.Elems); dot >= 0 {
			parts := make([]string, dot)
			for i, e := range tv.Elems[:dot] {
				parts[i] = Pretty(e)
			}
			return "(" + strings.Join(parts, " ") + " . " + Pretty(tv.Elems[dot+1]) + ")"
		}
		parts := make([]string, len(tv.Elems))
		for i, e := range tv.Elems {
			parts[i] = Pretty(e)
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return t.String()
	}
}

// dotIndex returns the position of the DOT sentinel in elems, or -1 if the
// sequence is proper. DOT is always immediately followed by exactly one
// tail element (see ImproperList), so its index also marks where the
// leading elements end.
func dotIndex(elems []Term) int {
	for i, e := range elems {
		if isDot(e) {
			return i
		}
	}
	return -1
}

// AsInt attempts to extract an int from a reified Term. Returns false on
// mismatch rather than panicking: consumers decide how to handle a type
// mismatch in results they did not construct themselves.
func AsInt(t Term) (int, bool) {
	if a, ok := t.(Atom); ok {
		if v, ok2 := a.Value.(int); ok2 {
			return v, true
		}
	}
	return 0, false
}

// MustInt extracts an int from a Term or panics. Intended for examples
// and tests where the shape of the answer is already known.
func MustInt(t Term) int {
	if v, ok := AsInt(t); ok {
		return v
	}
	panic(fmt.Sprintf("expected int Atom, got %T: %v", t, t))
}

// AsString attempts to extract a string from a reified Term.
func AsString(t Term) (string, bool) {
	if a, ok := t.(Atom); ok {
		if v, ok2 := a.Value.(string); ok2 {
			return v, true
		}
	}
	return "", false
}

// MustString extracts a string from a Term or panics.
func MustString(t Term) string {
	if v, ok := AsString(t); ok {
		return v
	}
	panic(fmt.Sprintf("expected string Atom, got %T: %v", t, t))
}

// AsList collects a proper sequence into a Go slice of Terms. Returns
// false for a non-Seq or for a Seq carrying a DOT improper tail.
func AsList(t Term) ([]Term, bool) {
	seq, ok := t.(Seq)
	if !ok {
		return nil, false
	}
	if dotIndex(seq.Elems) >= 0 {
		return nil, false
	}
	out := make([]Term, len(seq.Elems))
	copy(out, seq.Elems)
	return out, true
}
