// Command lambdapi is a demonstration/debugging harness over the
// rewrite-engine core, the same role `cue eval`/`opa eval` play over
// their own cores: it is not the surface-language command interpreter
// spec.md §1 places out of scope, only a thin driver exercising
// check_rule, compile, and to_dot against a hard-coded toy signature.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/XVilka/lambdapi/internal/diag"
	"github.com/XVilka/lambdapi/internal/dtree"
	"github.com/XVilka/lambdapi/internal/rulecheck"
	"github.com/XVilka/lambdapi/internal/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lambdapi",
		Short: "Rewrite-engine core demonstration CLI",
	}
	root.AddCommand(newCheckCmd(), newDotCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the toy signature's rules and report acceptance per rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := checkToySignature()
			return err
		},
	}
}

func newDotCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "dot",
		Short: "Compile the toy signature's plus symbol and write its decision tree as DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, _, err := checkToySignature()
			if err != nil {
				return err
			}
			tree, ok := sig.plus.Tree.(dtree.Tree)
			if !ok {
				return fmt.Errorf("plus has no compiled decision tree")
			}
			if err := dtree.ToDot(out, tree); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	c.Flags().StringVar(&out, "out", "plus.dot", "output path for the DOT file")
	return c
}

func checkToySignature() (*toySignature, *logrus.Logger, error) {
	store := term.NewStore()
	sig := buildToySignature(store)
	log := diag.NewLogger()
	deps := rulecheck.Deps{
		Oracles: trivialOracles(),
		Store:   store,
		Log:     log,
	}
	for _, rule := range sig.plusRules() {
		if err := rulecheck.CheckAndAppend(deps, sig.plus, rule); err != nil {
			fmt.Printf("rule at %s rejected: %v\n", rule.Pos, err)
			return sig, log, err
		}
		fmt.Printf("rule at %s accepted\n", rule.Pos)
	}
	return sig, log, nil
}
