package matrix

import "github.com/XVilka/lambdapi/internal/term"

// IsPattern reports whether t, read against env, is still a genuine
// pattern hole a column can be specialized away from (false) or a
// concrete constructor head that already discriminates rows (true). A
// wildcard, or a linear/not-yet-bound pattern variable, is a hole; a
// non-linear pattern variable already bound by an earlier occurrence in
// the same row behaves as a concrete head, since its value is fixed.
//
// The App case recurses into the applicand rather than answering true
// outright, mirroring the teacher's own clause of the same shape. It is
// the path every applied constructor column (such as succ x) takes: the
// answer is that of the application spine's head.
func IsPattern(env []term.TESlot, t term.Term) bool {
	switch x := term.Unfold(t).(type) {
	case term.Patt:
		if x.Index == nil {
			return false
		}
		idx := x.Index.Idx
		if idx >= len(env) || !env[idx].IsSome() {
			return false
		}
		return true
	case term.App:
		return IsPattern(env, x.Fun)
	case term.Sym, term.Var, term.Abs:
		return true
	default:
		panic("lambdapi/matrix: structural bug — disallowed constructor in pattern matrix row")
	}
}

// Exhausted reports whether every column of row is a pattern hole — the
// row matches unconditionally and compiles to a leaf.
func Exhausted(env []term.TESlot, lhs []term.Term) bool {
	for _, t := range lhs {
		if IsPattern(env, t) {
			return false
		}
	}
	return true
}

// arity returns the number of new columns specializing on constructor c
// contributes: the number of arguments for a symbol witness, one for an
// abstraction (its body slot), zero for a bare variable.
func arity(c Constructor) int {
	switch c.Head.(type) {
	case term.Abs:
		return 1
	default:
		return c.Arity
	}
}

func wildcardCols(c Constructor) []term.Term {
	n := arity(c)
	if n == 0 {
		return nil
	}
	cols := make([]term.Term, n)
	for i := range cols {
		cols[i] = term.Patt{Name: "_"}
	}
	return cols
}
