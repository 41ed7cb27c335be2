// Package rulecheck drives the subject-reduction check of spec.md §4.4
// (component C5): given a symbol and one of its candidate rules, rewrite
// the pattern left-hand side into metavariables, splice the right-hand
// side, and run the external inference/checking/unification oracles to
// decide whether the rule preserves typing.
package rulecheck

import (
	"github.com/sirupsen/logrus"

	"github.com/XVilka/lambdapi/internal/diag"
	"github.com/XVilka/lambdapi/internal/dtree"
	"github.com/XVilka/lambdapi/internal/oracle"
	"github.com/XVilka/lambdapi/internal/subst"
	"github.com/XVilka/lambdapi/internal/term"
)

// Deps bundles everything CheckRule needs beyond the rule itself: the
// oracles it is trusted to call, the contexts those oracles expect, and
// the infrastructure (metavariable allocator, logger) spec.md's Design
// Notes ask to be passed explicitly rather than read off a global.
type Deps struct {
	Oracles  oracle.Oracles
	Ctx      oracle.Context // typing context for Infer/Check
	Builtins oracle.Context // opaque builtins bag for Solve
	Flag     bool           // passed through to Solve, unspecified by spec.md beyond its signature
	Store    *term.Store
	Log      *logrus.Logger
}

// CheckRule runs the nine stages of spec.md §4.4 for rule against symbol
// s. It returns nil on acceptance (including the vacuous-acceptance case
// of an untypable LHS, logged as a warning) and a located *diag.RuleError
// on rejection. A structural bug (§7 tier 3) panics rather than
// returning an error, since it indicates a precondition this core itself
// is supposed to guarantee was violated upstream.
func CheckRule(d Deps, s *term.Symbol, rule *term.Rule) error {
	// (a) Pattern→metavariable rewriting.
	lhsArgs, shared := PattToMeta(d.Store, rule.LHS)

	// (b) Reconstruct LHS.
	lhs := term.AddArgs(term.Sym{Symbol: s}, lhsArgs)

	// (c) Right-hand-side splicing.
	metas := make(map[*term.EnvSlot]*term.MetaVar, len(shared))
	for idx, mv := range shared {
		if idx < len(rule.Slots) {
			metas[rule.Slots[idx]] = mv
		}
	}
	rhs := term.SubstEnvSlots(rule.RHS.Body, metas)

	// (d) Infer.
	typ, cs, ok := d.Oracles.Infer(d.Ctx, lhs)
	if !ok {
		diag.WarnUntypableLHS(d.Log, rule.Pos, s.QualName)
		return nil
	}

	// (e) Absorb.
	xs, ts := subst.Build(d.Oracles, cs)
	rhs = subst.Apply(rhs, xs, ts)
	typ = subst.Apply(typ, xs, ts)

	// (f) Check.
	checkCs := d.Oracles.Check(d.Ctx, rhs, typ)

	// (g) Solve.
	residual, ok := d.Oracles.Solve(d.Builtins, d.Flag, checkCs)
	if !ok {
		return diag.Reject(rule.Pos, diag.ErrDoesNotPreserveTyping, nil, nil)
	}

	// (h) Filter trivial residuals.
	genuine := filterTrivial(residual, cs, d.Oracles.EqModulo)
	if len(genuine) > 0 {
		return diag.Reject(rule.Pos, diag.ErrUnsolvedConstraints, genuine, nil)
	}

	// (i) Ground-ness.
	if hasDanglingSlot(rhs) {
		return diag.Reject(rule.Pos, diag.ErrUnboundMetavariables, nil, nil)
	}

	return nil
}

// CheckAndAppend runs CheckRule and, on acceptance, appends rule to s's
// rule set and recompiles its decision tree. Rule checking and appending
// happen in this order deliberately (§5): the happens-before ordering the
// symbol table must observe is that checking rule n must never see rule n
// itself already appended, so the append is the caller-visible side
// effect of acceptance, not a precondition of the check. Recompiling on
// every acceptance rather than lazily keeps s.Tree always in sync with
// s.Rules — simple, and cheap enough at the rule-set sizes this core
// expects; a future batching optimization would trade that invariant for
// speed, not the other way round.
func CheckAndAppend(d Deps, s *term.Symbol, rule *term.Rule) error {
	if err := CheckRule(d, s, rule); err != nil {
		return err
	}
	s.Rules = append(s.Rules, rule)
	s.Tree = dtree.Build(d.Store, s.Rules)
	return nil
}
