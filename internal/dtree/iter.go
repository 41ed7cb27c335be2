package dtree

// TestResult pairs a Case's constructor with the fold result already
// computed for its child, handed to nodeFn so it can decide how to
// combine children without re-walking the tree itself.
type TestResult struct {
	Cons  interface{} // matrix.Constructor, kept opaque here since nodeFn rarely needs to inspect it
	Child interface{}
}

// Iter folds a Tree into a single value of whatever type the caller's
// closures produce: leafFn for a Leaf, nodeFn for a Node (given its
// already-folded test results and default branch), and failValue
// returned directly for Fail. It is the generic traversal spec.md's
// Design Notes ask a tree to expose, kept non-generic (interface{}
// rather than a Go type parameter) to match this codebase's existing
// style of threading heterogeneous results through plain function
// values (c.f. internal/oracle.Oracles, internal/matrix.Policy) instead
// of reaching for generics.
func Iter(leafFn func(Leaf) interface{}, nodeFn func(tests []TestResult, def interface{}) interface{}, failValue interface{}, t Tree) interface{} {
	switch x := t.(type) {
	case Fail:
		return failValue
	case Leaf:
		return leafFn(x)
	case *Node:
		results := make([]TestResult, len(x.Tests))
		for i, c := range x.Tests {
			results[i] = TestResult{Cons: c.Cons, Child: Iter(leafFn, nodeFn, failValue, c.Child)}
		}
		def := Iter(leafFn, nodeFn, failValue, x.Default)
		return nodeFn(results, def)
	default:
		panic("lambdapi/dtree: structural bug — unknown tree constructor")
	}
}

// CountLeaves is a small worked example of Iter: the number of Leaf nodes
// in t. A rule reachable along several paths counts once per Leaf.
func CountLeaves(t Tree) int {
	result := Iter(
		func(Leaf) interface{} { return 1 },
		func(tests []TestResult, def interface{}) interface{} {
			total := def.(int)
			for _, r := range tests {
				total += r.Child.(int)
			}
			return total
		},
		0,
		t,
	)
	return result.(int)
}
