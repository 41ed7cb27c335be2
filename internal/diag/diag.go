// Package diag carries the three error tiers of spec.md §7: a warning
// (logged, not rejected), a located rejection (returned as an error with a
// cause chain), and a structural bug (a panic, since it is by definition
// unreachable on well-formed input — see the teacher's own assert
// false/failwith convention, carried over per Design Notes §9).
package diag

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/XVilka/lambdapi/internal/oracle"
	"github.com/XVilka/lambdapi/internal/term"
)

// Sentinel rejection kinds; callers distinguish them with errors.Is.
var (
	ErrDoesNotPreserveTyping = errors.New("rule does not preserve typing")
	ErrUnsolvedConstraints   = errors.New("cannot solve constraints")
	ErrUnboundMetavariables  = errors.New("cannot instantiate all metavariables")
)

// RuleError is a located rejection: a rule's position plus the sentinel
// kind and any residual constraints that justify it.
type RuleError struct {
	Pos       term.Position
	Kind      error
	Residuals []oracle.Constraint
}

func (e *RuleError) Error() string {
	if len(e.Residuals) == 0 {
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %d residual constraint(s)", e.Pos, e.Kind, len(e.Residuals))
}

// Unwrap exposes the sentinel kind to errors.Is/errors.As.
func (e *RuleError) Unwrap() error { return e.Kind }

// Reject builds a *RuleError. Given a non-nil cause (e.g. the unifier's
// own failure), it wraps the *RuleError via pkg/errors with the cause's
// message and a stack trace, printable with fmt.Sprintf("%+v", ...); the
// cause error value itself is not kept in the chain, only its message.
func Reject(pos term.Position, kind error, residuals []oracle.Constraint, cause error) error {
	e := &RuleError{Pos: pos, Kind: kind, Residuals: residuals}
	if cause != nil {
		return errors.Wrap(e, cause.Error())
	}
	return e
}

// NewLogger returns a logrus.Logger configured the way this core expects
// to receive one: structured fields, no ambient global state. Callers
// (typically cmd/lambdapi) construct exactly one and thread it through
// explicitly — internal/rulecheck never reads a package-level logger.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// WarnUntypableLHS logs the §7 Warning tier: inference returned no type
// for the rule's left-hand side. The rule is still accepted as vacuous.
func WarnUntypableLHS(log *logrus.Logger, pos term.Position, symbol string) {
	log.WithFields(logrus.Fields{
		"pos":    pos.String(),
		"symbol": symbol,
	}).Warn("untypable LHS: rule accepted as vacuous")
}
