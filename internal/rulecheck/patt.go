package rulecheck

import (
	"fmt"

	"github.com/XVilka/lambdapi/internal/term"
)

// pattToMeta implements spec.md §4.4 stage (a): walk ptn, replacing every
// Patt(i, name, env) by a fresh Meta(m, env) where m has arity |env| and
// type build_meta_type(|env| + depth), depth being the number of
// enclosing App constructors seen since the top of the current LHS
// argument. Threading depth this way lets a metavariable introduced deep
// inside an argument's own application spine still see (as extra leading
// parameters of its type) the partial applications surrounding it, so
// unification can relate it correctly to sibling subterms at the same
// spine position — this is the reading adopted for the otherwise
// underspecified "k enclosing applications"; see DESIGN.md.
//
// One metavariable is shared per Some(idx) index across every occurrence
// of that pattern variable within a single rule's LHS; every None
// (wildcard) occurrence gets its own fresh metavariable. Any of Type,
// Kind, Prod, Meta, TEnv, Wild, TRef appearing in an LHS is a structural
// bug (§7 tier 3) and panics, exactly as the teacher's own
// assert false/failwith does for unreachable-on-correct-input states.
// path is the Codept-style argument-spine address of t within the rule's
// LHS, carried purely so the panic message can say where — it plays no
// role in the rewriting itself.
func pattToMeta(store *term.Store, t term.Term, shared map[int]*term.MetaVar, depth int, path term.Path) term.Term {
	switch x := t.(type) {
	case term.Patt:
		arity := len(x.Env)
		env := make([]term.Term, arity)
		for i, e := range x.Env {
			env[i] = pattToMeta(store, e, shared, depth, path.Child(i))
		}
		if x.Index == nil {
			mv := store.FreshMeta(arity, term.BuildMetaType(store, arity+depth), x.Name)
			return term.Meta{M: mv, Env: env}
		}
		idx := x.Index.Idx
		mv, ok := shared[idx]
		if !ok {
			mv = store.FreshMeta(arity, term.BuildMetaType(store, arity+depth), x.Name)
			shared[idx] = mv
		}
		return term.Meta{M: mv, Env: env}
	case term.App:
		return term.App{
			Fun: pattToMeta(store, x.Fun, shared, depth+1, path.Child(0)),
			Arg: pattToMeta(store, x.Arg, shared, depth+1, path.Child(1)),
		}
	case term.Abs:
		return term.Abs{Dom: pattToMeta(store, x.Dom, shared, depth, path.Child(0)), BVar: x.BVar, Body: pattToMeta(store, x.Body, shared, depth, path.Child(1))}
	case term.Sym:
		return x
	case term.Var:
		return x
	case term.TType, term.TKind, term.Prod, term.Meta, term.TEnv, term.Wild, term.TRef:
		panic(fmt.Sprintf("lambdapi/rulecheck: structural bug — disallowed constructor in rule LHS at %s", path))
	default:
		panic(fmt.Sprintf("lambdapi/rulecheck: structural bug — unknown term constructor in rule LHS at %s", path))
	}
}

// PattToMeta rewrites every argument of a rule's LHS, returning the
// rewritten arguments and the idx→metavariable sharing map built while
// doing so (used by stage (c) to splice the RHS).
func PattToMeta(store *term.Store, lhsArgs []term.Term) ([]term.Term, map[int]*term.MetaVar) {
	shared := map[int]*term.MetaVar{}
	out := make([]term.Term, len(lhsArgs))
	for i, a := range lhsArgs {
		out[i] = pattToMeta(store, a, shared, 0, term.Path{i})
	}
	return out, shared
}
