package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaEqualRenamesBoundVariables(t *testing.T) {
	store := NewStore()
	x, y := store.FreshVar("x"), store.FreshVar("y")
	a := Abs{Dom: TType{}, BVar: x, Body: Var{V: x}}
	b := Abs{Dom: TType{}, BVar: y, Body: Var{V: y}}
	assert.True(t, AlphaEqual(a, b), "expected %v and %v to be alpha-equal", a, b)
}

func TestAlphaEqualRejectsFreeVariableMismatch(t *testing.T) {
	store := NewStore()
	x, y, z := store.FreshVar("x"), store.FreshVar("y"), store.FreshVar("z")
	a := Abs{Dom: TType{}, BVar: x, Body: Var{V: z}}
	b := Abs{Dom: TType{}, BVar: y, Body: Var{V: y}}
	assert.False(t, AlphaEqual(a, b), "did not expect %v and %v to be alpha-equal", a, b)
}

func TestSubstVarsIsSimultaneous(t *testing.T) {
	store := NewStore()
	x, y := store.FreshVar("x"), store.FreshVar("y")
	// Substituting x -> y and y -> x simultaneously must swap, not chain
	// through the substitution it just performed (P3).
	body := App{Fun: Var{V: x}, Arg: Var{V: y}}
	got := SubstVars(body, []*BVar{x, y}, []Term{Var{V: y}, Var{V: x}})
	want := App{Fun: Var{V: y}, Arg: Var{V: x}}
	assert.True(t, AlphaEqual(got, want), "SubstVars(%v) = %v, want %v", body, got, want)
}

func TestMsubstArityMismatchPanics(t *testing.T) {
	store := NewStore()
	x := store.FreshVar("x")
	b := &MBinder{Vars: []*BVar{x}, Body: Var{V: x}}
	assert.Panics(t, func() { Msubst(b, nil) }, "expected panic on arity mismatch")
}

func TestMetaInstantiateTwicePanics(t *testing.T) {
	store := NewStore()
	mv := store.FreshMeta(0, TType{}, "")
	mv.Instantiate(&MBinder{Body: TType{}})
	assert.Panics(t, func() { mv.Instantiate(&MBinder{Body: TType{}}) }, "expected panic on double instantiation")
}

func TestBuildMetaTypeReferencesOnlyEarlierMetas(t *testing.T) {
	store := NewStore()
	typ := BuildMetaType(store, 2)
	// Walk the ∀-chain and confirm each domain's own metavariable ID is
	// smaller than the final codomain's — the DAG-ordering invariant.
	var ids []uint64
	cur := typ
	for {
		prod, ok := cur.(Prod)
		if !ok {
			break
		}
		m, ok := prod.Dom.(Meta)
		require.True(t, ok, "expected Prod domain to be a Meta, got %T", prod.Dom)
		ids = append(ids, m.M.ID())
		cur = prod.Body
	}
	final, ok := cur.(Meta)
	require.True(t, ok, "expected final codomain to be a Meta, got %T", cur)
	for _, id := range ids {
		assert.Less(t, id, final.M.ID(), "domain meta %d not earlier than codomain meta %d", id, final.M.ID())
	}
}

func TestRhsBinderArityCountsDistinctSlots(t *testing.T) {
	x := &EnvSlot{Name: "x"}
	y := &EnvSlot{Name: "y"}
	// x occurs twice, y once: arity counts distinct slots, not occurrences.
	b := &RhsBinder{Body: App{Fun: TEnv{Ref: x}, Arg: App{Fun: TEnv{Ref: x}, Arg: TEnv{Ref: y}}}}
	assert.Equal(t, 2, b.Arity())
}

func TestSubstEnvSlotsLeavesUnmappedSlotsDangling(t *testing.T) {
	bound := &EnvSlot{Name: "bound"}
	unbound := &EnvSlot{Name: "unbound"}
	store := NewStore()
	mv := store.FreshMeta(0, TType{}, "")

	body := App{Fun: TEnv{Ref: bound}, Arg: TEnv{Ref: unbound}}
	metas := map[*EnvSlot]*MetaVar{bound: mv}
	got := SubstEnvSlots(body, metas).(App)

	assert.IsType(t, Meta{}, got.Fun, "expected bound slot to become a Meta")
	assert.IsType(t, TEnv{}, got.Arg, "expected unbound slot to survive as TEnv")
}

func TestAbsOpenSubstitutesTheBoundVariable(t *testing.T) {
	store := NewStore()
	x := store.FreshVar("x")
	succ := &Symbol{QualName: "succ", Tag: Injective}
	a := Abs{Dom: TType{}, BVar: x, Body: App{Fun: Sym{Symbol: succ}, Arg: Var{V: x}}}

	zero := &Symbol{QualName: "zero", Tag: Constant}
	got := a.Open(Sym{Symbol: zero})
	want := App{Fun: Sym{Symbol: succ}, Arg: Sym{Symbol: zero}}
	assert.True(t, AlphaEqual(got, want), "Open(%v) = %v, want %v", a, got, want)
}

func TestProdOpenSubstitutesTheBoundVariable(t *testing.T) {
	store := NewStore()
	x := store.FreshVar("x")
	p := Prod{Dom: TType{}, BVar: x, Body: Var{V: x}}

	got := p.Open(TKind{})
	assert.True(t, AlphaEqual(got, TKind{}), "Open(%v) = %v, want %v", p, got, TKind{})
}

func TestPathChildAppendsWithoutMutatingParent(t *testing.T) {
	root := Path{2}
	left := root.Child(0)
	right := root.Child(1)

	assert.Equal(t, "2", root.String())
	assert.Equal(t, "2.0", left.String())
	assert.Equal(t, "2.1", right.String())
	assert.Len(t, root, 1, "expected Child to leave the parent untouched")
}

func TestPathStringOfEmptyPathIsTop(t *testing.T) {
	assert.Equal(t, "<top>", Path{}.String())
}
