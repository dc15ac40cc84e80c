// Package main demonstrates the core relational primitives: unification,
// disjunction, fresh-variable allocation, list relations, and a bounded
// run over an infinite search space.
package main

import (
	"fmt"

	mk "github.com/gitrdm/minikanren/pkg/minikanren"
)

func main() {
	v := mk.GetVersionInfo()
	fmt.Printf("=== minikanren v%s (%s, stream model: %s) ===\n", v.Version, v.GoVersion, v.StreamModel)
	fmt.Println()

	basicUnification()
	multipleChoices()
	freshVariables()
	listOperations()
	infiniteStream()
}

// basicUnification: run* [q] (== q 5) => (5)
func basicUnification() {
	fmt.Println("1. Basic unification:")
	for t := range mk.RunGoal(1, func(vs []mk.LVar) mk.Goal {
		return mk.Eq(vs[0], mk.A(5))
	}) {
		fmt.Println("  ", mk.Pretty(t))
	}
	fmt.Println()
}

// multipleChoices: run* [q] (disj (== q 1) (== q 2)) => (1 2)
func multipleChoices() {
	fmt.Println("2. Disjunction:")
	for t := range mk.RunGoal(1, func(vs []mk.LVar) mk.Goal {
		return mk.Disj2(mk.Eq(vs[0], mk.A(1)), mk.Eq(vs[0], mk.A(2)))
	}) {
		fmt.Println("  ", mk.Pretty(t))
	}
	fmt.Println()
}

// freshVariables: run* [q] (fresh [x y] (== q (list x y)) (== x 1) (== y 2))
func freshVariables() {
	fmt.Println("3. Fresh variables:")
	for t := range mk.RunGoal(1, func(vs []mk.LVar) mk.Goal {
		q := vs[0]
		return mk.Fresh2(func(x, y mk.LVar) mk.Goal {
			return mk.ConjPlus(
				mk.Eq(q, mk.List(x, y)),
				mk.Eq(x, mk.A(1)),
				mk.Eq(y, mk.A(2)),
			)
		})
	}) {
		fmt.Println("  ", mk.Pretty(t))
	}
	fmt.Println()
}

// listOperations: appendo enumerating every split of [1 2 3].
func listOperations() {
	fmt.Println("4. Appendo, every split of (1 2 3):")
	for t := range mk.RunGoal(1, func(vs []mk.LVar) mk.Goal {
		q := vs[0]
		return mk.Fresh2(func(x, y mk.LVar) mk.Goal {
			return mk.ConjPlus(
				mk.Eq(q, mk.List(x, y)),
				mk.Appendo(x, y, mk.L(1, 2, 3)),
			)
		})
	}) {
		fmt.Println("  ", mk.Pretty(t))
	}
	fmt.Println()
}

// nats relates q to a natural number encoded as nested ("s" . n) pairs,
// an ever-productive recursive goal with an infinite search space.
func nats(q mk.Term) mk.Goal {
	return mk.DisjPlus(
		mk.Eq(q, mk.A(0)),
		mk.Delay(func() mk.Goal {
			return mk.Fresh1(func(p mk.LVar) mk.Goal {
				return mk.ConjPlus(
					mk.Eq(q, mk.List(mk.A("s"), p)),
					nats(p),
				)
			})
		}),
	)
}

// infiniteStream: run 3 [q] (nats q) terminates despite an infinite
// search space, demonstrating the fairness/bounded-realization contract.
func infiniteStream() {
	fmt.Println("5. Bounded run over an infinite search space:")
	for _, t := range mk.RunN(3, 1, func(vs []mk.LVar) mk.Goal {
		return nats(vs[0])
	}) {
		fmt.Println("  ", mk.Pretty(t))
	}
}
