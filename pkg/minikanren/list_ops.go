package minikanren

// Appendo relates three sequences where l3 is l1 followed by l2. Runs in
// any mode: given l1 and l2 it computes l3; given l3 alone it enumerates
// every split of l3 into a prefix/suffix pair.
func Appendo(l1, l2, l3 Term) Goal {
	return DisjPlus(
		ConjPlus(Eq(l1, Nil), Eq(l2, l3)),
		Delay(func() Goal {
			return Fresh3(func(a, d, res LVar) Goal {
				return ConjPlus(
					Eq(l1, Cons(a, d)),
					Eq(l3, Cons(a, res)),
					Appendo(d, l2, res),
				)
			})
		}),
	)
}

// Membero relates an element to a sequence containing it. Given a
// concrete sequence it enumerates each member in order; given a variable
// sequence it generates sequences containing the element.
func Membero(x, xs Term) Goal {
	return DisjPlus(
		Fresh1(func(rest LVar) Goal {
			return Eq(xs, Cons(x, rest))
		}),
		Delay(func() Goal {
			return Fresh2(func(head, rest LVar) Goal {
				return ConjPlus(
					Eq(xs, Cons(head, rest)),
					Membero(x, rest),
				)
			})
		}),
	)
}

// Lengtho relates a sequence to its length, represented as an Atom
// wrapping a Go int.
func Lengtho(xs Term, n Term) Goal {
	return DisjPlus(
		ConjPlus(Eq(xs, Nil), Eq(n, Atom{Value: 0})),
		Delay(func() Goal {
			return Fresh2(func(head, tail LVar) Goal {
				return Fresh1(func(nMinus1 LVar) Goal {
					return ConjPlus(
						Eq(xs, Cons(head, tail)),
						Lengtho(tail, nMinus1),
						succo(nMinus1, n),
					)
				})
			})
		}),
	)
}

// succo relates an Atom-wrapped int to its successor; a small helper
// used only by Lengtho to avoid exposing arithmetic as public surface.
func succo(n, nPlus1 Term) Goal {
	return func(st State) Stream {
		nv := DeepWalk(n, st.Subst)
		a, ok := nv.(Atom)
		if !ok {
			return EmptyStream
		}
		i, ok := a.Value.(int)
		if !ok {
			return EmptyStream
		}
		return Eq(nPlus1, Atom{Value: i + 1})(st)
	}
}

// Rembero relates an element and two sequences where the second is the
// first with one occurrence of the element removed. Bidirectional: any
// two of the three arguments may be concrete.
func Rembero(element, inputList, outputList Term) Goal {
	return DisjPlus(
		Fresh1(func(rest LVar) Goal {
			return ConjPlus(
				Eq(inputList, Cons(element, rest)),
				Eq(outputList, rest),
			)
		}),
		Delay(func() Goal {
			return Fresh3(func(head, tail, recursiveOutput LVar) Goal {
				return ConjPlus(
					Eq(inputList, Cons(head, tail)),
					Eq(outputList, Cons(head, recursiveOutput)),
					Rembero(element, tail, recursiveOutput),
				)
			})
		}),
	)
}

// SameLengtho succeeds iff xs and ys have the same length, without
// computing either length; used to bound Reverso's search so Appendo
// cannot be driven to generate arbitrarily long lists.
func SameLengtho(xs, ys Term) Goal {
	return Cond(
		[]Goal{Eq(xs, Nil), Eq(ys, Nil)},
		[]Goal{Delay(func() Goal {
			return Fresh4(func(x, xsTail, y, ysTail LVar) Goal {
				return ConjPlus(
					Eq(xs, Cons(x, xsTail)),
					Eq(ys, Cons(y, ysTail)),
					SameLengtho(xsTail, ysTail),
				)
			})
		})},
	)
}

func reversoCore(list, reversed Term) Goal {
	return Cond(
		[]Goal{Eq(list, Nil), Eq(reversed, Nil)},
		[]Goal{Delay(func() Goal {
			return Fresh3(func(head, tail, revTail LVar) Goal {
				return ConjPlus(
					Eq(list, Cons(head, tail)),
					reversoCore(tail, revTail),
					Appendo(revTail, Cons(head, Nil), reversed),
				)
			})
		})},
	)
}

// Reverso relates a sequence to its reverse. Constrains both sides to
// equal length before recursing so the relation terminates in every
// mode, including when reversed is bound and list is a variable.
func Reverso(list, reversed Term) Goal {
	return ConjPlus(
		SameLengtho(list, reversed),
		reversoCore(list, reversed),
	)
}
