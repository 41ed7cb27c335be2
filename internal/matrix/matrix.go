// Package matrix implements the pattern matrix (C6): the row/column
// representation of a pattern-matching problem, column selection
// heuristics, and the specialization/default transforms decision-tree
// compilation recurses over.
package matrix

import "github.com/XVilka/lambdapi/internal/term"

// Row is one candidate rule: LHS is its remaining (possibly
// front-truncated, by earlier specialization) argument patterns, RHS is
// the rule's right-hand-side binder, Env records, per pattern-variable
// slot, whether it has been bound to a matched sub-term yet, and Rule is
// the original rule the row was built from — carried through unchanged
// so a Leaf can report exactly which rule fired.
type Row struct {
	LHS  []term.Term
	RHS  *term.RhsBinder
	Env  []term.TESlot
	Rule *term.Rule
}

// Matrix is an ordered list of rows; row order is rule source order and
// is never reshuffled — compile()'s first-match priority (P5) depends on
// it staying that way through every transform in this package.
type Matrix []Row

// OfRules builds the initial matrix for a symbol's accepted rule set.
// Every row starts with env entirely TE_None, sized to that rule's own
// per-rule pattern-variable array.
func OfRules(rules []*term.Rule) Matrix {
	m := make(Matrix, len(rules))
	for i, r := range rules {
		m[i] = Row{
			LHS:  append([]term.Term{}, r.LHS...),
			RHS:  r.RHS,
			Env:  make([]term.TESlot, len(r.Slots)),
			Rule: r,
		}
	}
	return m
}
