// Package oracle declares the external collaborators this core treats as
// trusted: type inference, type checking, unification, convertibility and
// injectivity lookup (spec.md §6). Production implementations live in the
// surrounding proof assistant (elaborator, unifier, evaluator); this core
// only depends on the interfaces below, never on a concrete implementation,
// so test doubles can drive the rule checker and matrix compiler without
// a real kernel attached.
package oracle

import "github.com/XVilka/lambdapi/internal/term"

// Constraint is a convertibility obligation between two terms, produced by
// inference or checking and consumed by the substitution builder and the
// unifier.
type Constraint struct {
	A, B term.Term
}

// Context is an opaque typing context threaded through Infer/Check calls.
// This core never inspects it; it is only ever passed through.
type Context interface{}

// Infer returns the inferred type of t and the convertibility constraints
// deferred during inference, or ok=false if t is untypable.
type Infer func(ctx Context, t term.Term) (typ term.Term, cs []Constraint, ok bool)

// Check returns the constraints that must hold for t to have type typ.
type Check func(ctx Context, t term.Term, typ term.Term) []Constraint

// Solve attempts to discharge problems (builtins is an opaque bag of
// signature-level facts the unifier may need, e.g. the builtin symbols of
// the ambient theory). ok=false means the problems are contradictory;
// otherwise residual is the list of constraints the unifier could not
// discharge.
type Solve func(builtins Context, flag bool, problems []Constraint) (residual []Constraint, ok bool)

// EqModulo reports convertibility modulo the accepted rewrite rules. It
// may not terminate on an ill-behaved rewrite system; termination is
// caller responsibility (spec.md §5, §1 Non-goals).
type EqModulo func(a, b term.Term) bool

// IsInjective reports the declared injectivity attribute of a symbol.
type IsInjective func(s *term.Symbol) bool

// Oracles bundles the five collaborators a rule check needs. Grouping them
// as a struct of function values (rather than a Go interface with five
// methods) lets call sites build ad hoc or test oracles with struct
// literals, the same shape spec.md §6 presents them in.
type Oracles struct {
	Infer       Infer
	Check       Check
	Solve       Solve
	EqModulo    EqModulo
	IsInjective IsInjective
}
