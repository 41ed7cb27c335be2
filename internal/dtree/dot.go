package dtree

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/XVilka/lambdapi/internal/matrix"
	"github.com/XVilka/lambdapi/internal/term"
)

// ToDot writes t as a Graphviz DOT digraph to path, for visualizing a
// compiled decision tree during development. No example repo in the
// retrieval pack carries a Graphviz client, so this writer is hand-rolled
// straight against DOT's textual grammar (SPEC_FULL.md §2) rather than
// grounded on a library — the one deliberate stdlib-only component of
// this tree.
func ToDot(path string, t Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "lambdapi/dtree: create %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "digraph decision_tree {")
	fmt.Fprintln(w, `  node [shape=box, fontname="monospace"];`)
	next := 0
	writeDot(w, t, &next)
	fmt.Fprintln(w, "}")
	return errors.Wrap(w.Flush(), "lambdapi/dtree: flush dot output")
}

// writeDot emits t's subgraph rooted at a freshly allocated node id and
// returns that id, so the caller can draw the edge leading into it.
func writeDot(w *bufio.Writer, t Tree, next *int) int {
	id := *next
	*next++

	switch x := t.(type) {
	case Fail:
		fmt.Fprintf(w, "  n%d [label=\"f\", style=dashed];\n", id)
	case Leaf:
		fmt.Fprintf(w, "  n%d [label=%q, shape=ellipse];\n", id, leafLabel(x))
	case *Node:
		fmt.Fprintf(w, "  n%d [label=%q];\n", id, strconv.Itoa(x.Swap))
		for _, c := range x.Tests {
			childID := writeDot(w, c.Child, next)
			fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", id, childID, consLabel(c.Cons))
		}
		defID := writeDot(w, x.Default, next)
		defLabel := "d"
		if _, ok := x.Default.(Fail); ok {
			defLabel = "f"
		}
		fmt.Fprintf(w, "  n%d -> n%d [label=%q, style=dotted];\n", id, defID, defLabel)
	default:
		panic("lambdapi/dtree: structural bug — unknown tree constructor")
	}
	return id
}

// leafLabel renders the action's body — the rule's right-hand side — not
// its source position, matching spec.md §6's to_dot contract.
func leafLabel(l Leaf) string {
	if l.Rule == nil || l.Rule.RHS == nil {
		return "leaf"
	}
	return bodyLabel(l.Rule.RHS.Body)
}

// bodyLabel renders t compactly enough for a DOT node label — not a
// general-purpose term printer, just enough structure (symbol names,
// application spine, env-slot references) to tell leaves apart at a
// glance in a rendered graph.
func bodyLabel(t term.Term) string {
	switch x := t.(type) {
	case term.Sym:
		return x.Symbol.QualName
	case term.Var:
		return x.V.Name
	case term.App:
		return bodyLabel(x.Fun) + " " + bodyLabel(x.Arg)
	case term.Abs:
		return "\\" + x.BVar.Name + ". " + bodyLabel(x.Body)
	case term.TEnv:
		return x.Ref.Name
	case term.Meta:
		return "?" + x.M.Name
	case term.TType:
		return "Type"
	case term.TKind:
		return "Kind"
	default:
		return "?"
	}
}

func consLabel(c matrix.Constructor) string {
	switch h := c.Head.(type) {
	case term.Sym:
		return fmt.Sprintf("%s/%d", h.Symbol.QualName, c.Arity)
	case term.Var:
		return "var:" + h.V.Name
	case term.Abs:
		return "abs"
	default:
		return "?"
	}
}
