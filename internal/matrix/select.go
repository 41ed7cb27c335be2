package matrix

import "github.com/XVilka/lambdapi/internal/term"

// GetCol gathers the column-k entry of every row that has one; rows
// already shorter than k+1 (their leading columns were consumed by an
// earlier specialization round) simply contribute nothing.
func GetCol(k int, m Matrix) []term.Term {
	var out []term.Term
	for _, row := range m {
		if k < len(row.LHS) {
			out = append(out, row.LHS[k])
		}
	}
	return out
}

// CanSwitchOn reports whether at least one row presenting a value in
// column k presents a non-pattern (constructor) head there — Maranget's
// necessity test. A column is worth switching on as soon as one row can
// be discriminated by it; rows that are patterns in that same column are
// not disqualifying, since Specialize's wildcard branch and Default
// handle them correctly downstream.
func CanSwitchOn(m Matrix, k int) bool {
	for _, row := range m {
		if k < len(row.LHS) && IsPattern(row.Env, row.LHS[k]) {
			return true
		}
	}
	return false
}

// DiscardPattFree returns the indices of columns worth retaining:
// present in at least one row, and switchable on in the CanSwitchOn
// sense. Columns that are all patterns, or absent from every row, offer
// no discrimination and are left out.
func DiscardPattFree(m Matrix) []int {
	width := 0
	for _, row := range m {
		if len(row.LHS) > width {
			width = len(row.LHS)
		}
	}
	var kept []int
	for k := 0; k < width; k++ {
		if len(GetCol(k, m)) > 0 && CanSwitchOn(m, k) {
			kept = append(kept, k)
		}
	}
	return kept
}

// Select projects m onto the given column indices, in that order,
// dropping any column a given row happens to be too short to have.
func Select(m Matrix, cols []int) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		newLHS := make([]term.Term, 0, len(cols))
		for _, k := range cols {
			if k < len(row.LHS) {
				newLHS = append(newLHS, row.LHS[k])
			}
		}
		out[i] = Row{LHS: newLHS, RHS: row.RHS, Env: row.Env, Rule: row.Rule}
	}
	return out
}

// Swap exchanges column 0 and column i in every row of m.
func Swap(m Matrix, i int) Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		newLHS := append([]term.Term{}, row.LHS...)
		if i < len(newLHS) {
			newLHS[0], newLHS[i] = newLHS[i], newLHS[0]
		}
		out[r] = Row{LHS: newLHS, RHS: row.RHS, Env: row.Env, Rule: row.Rule}
	}
	return out
}

// Policy picks, among the columns already passed through
// DiscardPattFree, the index (into that slice) of the column compile()
// should branch on next.
type Policy func(m Matrix) int

// Leftmost is the default Policy: always branch on the first retained
// column. It is the teacher's own choice where it exercises a comparable
// selection point (scope.go's declaration order); spec.md §9 leaves the
// heuristic open, so a codebase with richer cost information (e.g.
// preferring the column that maximizes CanSwitchOn's discrimination
// ratio) could swap it for another Policy without touching compile().
var Leftmost Policy = func(Matrix) int { return 0 }

// PickBest applies the active Policy. It is a package-level function
// value rather than a constant choice so callers needing a different
// heuristic for a particular symbol's rule set can substitute one.
var PickBest Policy = Leftmost
