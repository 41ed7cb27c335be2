package dtree

import (
	"github.com/XVilka/lambdapi/internal/matrix"
	"github.com/XVilka/lambdapi/internal/term"
)

// OfRules builds the initial pattern matrix for a symbol's accepted rule
// set — a thin, named entry point onto matrix.OfRules kept here so
// callers building a tree never need to import internal/matrix
// themselves for this one step.
func OfRules(rules []*term.Rule) matrix.Matrix {
	return matrix.OfRules(rules)
}

// Build compiles rules directly into a Tree.
func Build(store *term.Store, rules []*term.Rule) Tree {
	return Compile(store, OfRules(rules))
}

// Compile implements spec.md §4.6's decision-tree construction:
//
//   - an empty matrix compiles to Fail;
//   - a matrix whose first row is already Exhausted compiles to a Leaf
//     for that row's rule, by first-match priority (P5) — later rows,
//     even if also exhausted, are unreachable and simply never examined;
//   - otherwise, DiscardPattFree picks the columns worth branching on,
//     PickBest chooses among them, that column is swapped into position
//     0, and compile() recurses once per distinct constructor witness
//     (via Specialize) plus once more for the residual pattern-hole rows
//     (via Default).
//
// DiscardPattFree returning no columns while rows remain and the first
// is not exhausted would violate the invariant that a non-exhausted row
// always has at least one non-pattern column; spec.md §9 treats that as
// a structural bug rather than a case to fail gracefully.
func Compile(store *term.Store, m matrix.Matrix) Tree {
	if len(m) == 0 {
		return Fail{}
	}
	first := m[0]
	if matrix.Exhausted(first.Env, first.LHS) {
		return Leaf{Rule: first.Rule}
	}

	cols := matrix.DiscardPattFree(m)
	if len(cols) == 0 {
		panic("lambdapi/dtree: structural bug — no switchable column in a non-exhausted matrix")
	}
	sel := matrix.PickBest(matrix.Select(m, cols))
	chosen := cols[sel]

	working := m
	if chosen != 0 {
		working = matrix.Swap(m, chosen)
	}

	heads := matrix.Heads(store, working)
	tests := make([]Case, len(heads))
	for i, c := range heads {
		tests[i] = Case{Cons: c, Child: Compile(store, matrix.Specialize(c, working))}
	}
	def := Compile(store, matrix.Default(working))

	return &Node{Swap: chosen, Tests: tests, Default: def}
}
