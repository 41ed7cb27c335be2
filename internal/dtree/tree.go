// Package dtree compiles a symbol's accepted rule set into a decision
// tree (component C7): Maranget-style compilation of the pattern matrix
// built by internal/matrix, plus the generic fold and Graphviz export
// spec.md's Design Notes ask a tree to support.
package dtree

import (
	"github.com/XVilka/lambdapi/internal/matrix"
	"github.com/XVilka/lambdapi/internal/term"
)

// Tree is the compiled decision tree. All variants implement it by
// embedding an unexported marker method, the same sum-type convention
// internal/term uses for Term.
type Tree interface {
	isTree()
}

// Fail is the tree for an unmatchable input: no rule's pattern applies.
type Fail struct{}

func (Fail) isTree() {}

// Leaf is a tree whose input has already satisfied every column of Rule
// — Exhausted held — and therefore fires Rule's right-hand side. The
// original rule is kept rather than re-derived so a reduction engine can
// recover RHS, Slots, and Pos directly.
type Leaf struct {
	Rule *term.Rule
}

func (Leaf) isTree() {}

// Case pairs one constructor witness with the subtree compiled from
// specializing the matrix on it. Cases preserve first-appearance order
// of the rule set (P5): a reduction engine trying them in slice order
// reproduces first-match priority exactly.
type Case struct {
	Cons  matrix.Constructor
	Child Tree
}

// Node tests the term occupying argument position Swap against each
// Case's constructor in order, falling through to Default if none match
// (and that column's rows included a pattern hole) or failing if none of
// those apply either. Swap is the original column index compile() chose
// to switch on before swapping it into column 0 — 0 when no swap was
// needed — matching spec.md §3's Node{swap: option<column-index>, ...}.
type Node struct {
	Swap    int
	Tests   []Case
	Default Tree
}

func (*Node) isTree() {}
