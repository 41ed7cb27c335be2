package main

import (
	"github.com/XVilka/lambdapi/internal/oracle"
	"github.com/XVilka/lambdapi/internal/term"
)

// toySignature builds a tiny Peano-arithmetic signature this demonstration
// CLI checks rules against and compiles a decision tree for: the
// constructors zero (constant) and succ (injective) and the definable
// symbol plus, with its usual two
// recursive equations. Building a signature this way rather than reading
// one from a file is deliberate — parsing and loading a real signature
// belong to the surface language, the out-of-scope external collaborator
// spec.md §1 names, not to this core.
type toySignature struct {
	store *term.Store
	zero  *term.Symbol
	succ  *term.Symbol
	plus  *term.Symbol
}

func buildToySignature(store *term.Store) *toySignature {
	nat := term.TType{}
	zero := &term.Symbol{QualName: "zero", Type: nat, Tag: term.Constant}
	succ := &term.Symbol{
		QualName: "succ",
		Type:     term.Prod{Dom: nat, BVar: store.FreshVar("_"), Body: nat},
		Tag:      term.Injective,
	}
	plus := &term.Symbol{
		QualName: "plus",
		Type: term.Prod{Dom: nat, BVar: store.FreshVar("x"), Body: term.Prod{
			Dom: nat, BVar: store.FreshVar("y"), Body: nat,
		}},
		Tag: term.Definable,
	}
	return &toySignature{store: store, zero: zero, succ: succ, plus: plus}
}

// plusRules returns plus's two equations, unchecked: plus(zero, y) -> y
// and plus(succ(x), y) -> succ(plus(x, y)).
func (s *toySignature) plusRules() []*term.Rule {
	x := &term.EnvSlot{Name: "x"}
	y := &term.EnvSlot{Name: "y"}

	yPatt := term.Patt{Index: &term.PattIndex{Idx: 1}, Name: "y"}
	base := &term.Rule{
		LHS:   []term.Term{term.Sym{Symbol: s.zero}, yPatt},
		RHS:   &term.RhsBinder{Body: term.TEnv{Ref: y}},
		Slots: []*term.EnvSlot{x, y},
	}

	xPatt := term.Patt{Index: &term.PattIndex{Idx: 0}, Name: "x"}
	yPatt2 := term.Patt{Index: &term.PattIndex{Idx: 1}, Name: "y"}
	succX := term.App{Fun: term.Sym{Symbol: s.succ}, Arg: xPatt}
	rhsBody := term.App{
		Fun: term.Sym{Symbol: s.succ},
		Arg: term.App{
			Fun: term.App{Fun: term.Sym{Symbol: s.plus}, Arg: term.TEnv{Ref: x}},
			Arg: term.TEnv{Ref: y},
		},
	}
	step := &term.Rule{
		LHS:   []term.Term{succX, yPatt2},
		RHS:   &term.RhsBinder{Body: rhsBody},
		Slots: []*term.EnvSlot{x, y},
	}

	return []*term.Rule{base, step}
}

// trivialOracles stands in for the elaborator/unifier/evaluator this core
// treats as trusted external collaborators (spec.md §6). A real proof
// assistant wires its own kernel here; this demonstration CLI has none to
// offer, so it accepts every inference/checking obligation unconditionally
// and discharges every constraint as solved — enough to exercise
// check_rule's control flow end to end without a type theory behind it.
func trivialOracles() oracle.Oracles {
	return oracle.Oracles{
		Infer: func(oracle.Context, term.Term) (term.Term, []oracle.Constraint, bool) {
			return term.TType{}, nil, true
		},
		Check: func(oracle.Context, term.Term, term.Term) []oracle.Constraint {
			return nil
		},
		Solve: func(oracle.Context, bool, []oracle.Constraint) ([]oracle.Constraint, bool) {
			return nil, true
		},
		EqModulo:    term.AlphaEqual,
		IsInjective: (*term.Symbol).IsInjective,
	}
}
