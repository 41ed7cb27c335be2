package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XVilka/lambdapi/internal/term"
)

func wildcard(name string) term.Term { return term.Patt{Name: name} }

func pvar(idx int, name string) term.Term {
	return term.Patt{Index: &term.PattIndex{Idx: idx}, Name: name}
}

func TestIsPatternDistinguishesHolesFromConstructors(t *testing.T) {
	env := []term.TESlot{term.TENone}
	assert.False(t, IsPattern(env, wildcard("_")), "wildcard is a pattern hole, so IsPattern should report false")
	assert.False(t, IsPattern(env, pvar(0, "x")), "unbound linear variable is a pattern hole, so IsPattern should report false")
	zero := &term.Symbol{QualName: "zero"}
	assert.True(t, IsPattern(env, term.Sym{Symbol: zero}), "a declared symbol is a constructor head, so IsPattern should report true")
}

func TestIsPatternNonLinearBoundIsNotAHole(t *testing.T) {
	zero := &term.Symbol{QualName: "zero"}
	env := []term.TESlot{term.TESome(term.Sym{Symbol: zero})}
	assert.True(t, IsPattern(env, pvar(0, "x")), "a non-linear pattern variable already bound is not a hole, so IsPattern should report true")
}

func TestExhaustedRequiresEveryColumnToBeAHole(t *testing.T) {
	env := []term.TESlot{term.TENone}
	assert.True(t, Exhausted(env, []term.Term{wildcard("_"), pvar(0, "x")}), "a row of only holes should be exhausted")
	zero := &term.Symbol{QualName: "zero"}
	assert.False(t, Exhausted(env, []term.Term{term.Sym{Symbol: zero}}), "a row with a constructor column should not be exhausted")
}

func TestDiscardPattFreeKeepsOnlySwitchableColumns(t *testing.T) {
	zero := &term.Symbol{QualName: "zero"}
	succ := &term.Symbol{QualName: "succ"}
	m := Matrix{
		{LHS: []term.Term{term.Sym{Symbol: zero}, wildcard("_")}, Env: nil},
		{LHS: []term.Term{term.Sym{Symbol: succ}, wildcard("_")}, Env: nil},
	}
	cols := DiscardPattFree(m)
	if diff := cmp.Diff([]int{0}, cols); diff != "" {
		t.Fatalf("DiscardPattFree mismatch (-want +got):\n%s", diff)
	}
}

func TestGetColGathersOnlyRowsLongEnough(t *testing.T) {
	zero := &term.Symbol{QualName: "zero"}
	succ := &term.Symbol{QualName: "succ"}
	m := Matrix{
		{LHS: []term.Term{term.Sym{Symbol: zero}, wildcard("_")}, Env: nil},
		{LHS: []term.Term{term.Sym{Symbol: succ}}, Env: nil},
	}
	got := GetCol(1, m)
	// Row 1 has already been truncated to a single column by an earlier
	// specialization round, so only row 0 contributes to column 1.
	require.Len(t, got, 1)
	assert.Equal(t, wildcard("_"), got[0])
}

func TestSwapExchangesColumnZeroAndI(t *testing.T) {
	zero := &term.Symbol{QualName: "zero"}
	m := Matrix{{LHS: []term.Term{wildcard("_"), term.Sym{Symbol: zero}}, Env: nil}}
	swapped := Swap(m, 1)
	require.IsType(t, term.Sym{}, swapped[0].LHS[0])
	require.IsType(t, term.Patt{}, swapped[0].LHS[1])
}

func TestSpecializeOnSymbolYieldsItsArguments(t *testing.T) {
	succ := &term.Symbol{QualName: "succ", Tag: term.Injective}
	zero := &term.Symbol{QualName: "zero"}
	inner := term.Sym{Symbol: zero}
	row := Row{LHS: []term.Term{term.App{Fun: term.Sym{Symbol: succ}, Arg: inner}}, Env: nil}
	m := Matrix{row}

	c := Constructor{Head: term.Sym{Symbol: succ}, Arity: 1}
	specialized := Specialize(c, m)
	require.Len(t, specialized, 1, "expected the row to survive specialization")
	require.Len(t, specialized[0].LHS, 1, "expected exactly 1 new column (succ's argument)")
	assert.Equal(t, inner, specialized[0].LHS[0])
}

func TestSpecializeRejectsMismatchedSymbol(t *testing.T) {
	succ := &term.Symbol{QualName: "succ"}
	zero := &term.Symbol{QualName: "zero"}
	m := Matrix{{LHS: []term.Term{term.Sym{Symbol: zero}}, Env: nil}}
	specialized := Specialize(Constructor{Head: term.Sym{Symbol: succ}, Arity: 1}, m)
	assert.Empty(t, specialized, "expected no rows to survive")
}

func TestSpecializeWildcardRowYieldsFreshWildcards(t *testing.T) {
	succ := &term.Symbol{QualName: "succ"}
	m := Matrix{{LHS: []term.Term{wildcard("_")}, Env: nil}}
	specialized := Specialize(Constructor{Head: term.Sym{Symbol: succ}, Arity: 1}, m)
	require.Len(t, specialized, 1)
	require.Len(t, specialized[0].LHS, 1)
	assert.IsType(t, term.Patt{}, specialized[0].LHS[0])
}

func TestDefaultDropsConstructorRowsAndTruncatesHoleRows(t *testing.T) {
	zero := &term.Symbol{QualName: "zero"}
	m := Matrix{
		{LHS: []term.Term{term.Sym{Symbol: zero}, wildcard("_")}, Env: nil},
		{LHS: []term.Term{wildcard("_"), term.Sym{Symbol: zero}}, Env: nil},
	}
	def := Default(m)
	require.Len(t, def, 1, "expected only the hole-headed row to survive")
	if diff := cmp.Diff([]term.Term{term.Sym{Symbol: zero}}, def[0].LHS); diff != "" {
		t.Fatalf("Default row mismatch (-want +got):\n%s", diff)
	}
}

// TestCanSwitchOnKeepsAColumnMixingConstructorsAndWildcards exercises the
// bool_or integration scenario (spec.md §8 item 2): a column with both
// constructor rows and wildcard rows must stay switchable — only a column
// with NO constructor row anywhere should be discarded.
func TestCanSwitchOnKeepsAColumnMixingConstructorsAndWildcards(t *testing.T) {
	trueSym := &term.Symbol{QualName: "true"}
	falseSym := &term.Symbol{QualName: "false"}
	m := Matrix{
		{LHS: []term.Term{term.Sym{Symbol: trueSym}, wildcard("_")}},
		{LHS: []term.Term{term.Sym{Symbol: falseSym}, pvar(1, "b")}},
		{LHS: []term.Term{wildcard("_"), term.Sym{Symbol: trueSym}}},
		{LHS: []term.Term{wildcard("_"), term.Sym{Symbol: falseSym}}},
	}
	assert.True(t, CanSwitchOn(m, 0), "column 0 has constructor rows (true, false) and should be switchable")
	assert.True(t, CanSwitchOn(m, 1), "column 1 has constructor rows (true, false) and should be switchable")

	cols := DiscardPattFree(m)
	if diff := cmp.Diff([]int{0, 1}, cols); diff != "" {
		t.Fatalf("expected both mixed columns retained (-want +got):\n%s", diff)
	}
}

// TestHeadsResolvesAnAlreadyBoundNonLinearOccurrence exercises the
// bool_and integration scenario (spec.md §8 item 3): once a non-linear
// pattern variable's slot is bound (TE_Some), Heads must resolve a later
// occurrence of that same variable to the concrete value it was bound to,
// not panic on the bare Patt.
func TestHeadsResolvesAnAlreadyBoundNonLinearOccurrence(t *testing.T) {
	store := term.NewStore()
	trueSym := &term.Symbol{QualName: "true"}
	env := []term.TESlot{term.TESome(term.Sym{Symbol: trueSym})}
	m := Matrix{{LHS: []term.Term{pvar(0, "a")}, Env: env}}

	heads := Heads(store, m)
	require.Len(t, heads, 1)
	sym, ok := heads[0].Head.(term.Sym)
	require.True(t, ok, "expected the witness head to be a term.Sym")
	assert.Same(t, trueSym, sym.Symbol, "expected the bound value (true) as the witness")
}

func TestHeadsPreservesFirstAppearanceOrder(t *testing.T) {
	store := term.NewStore()
	succ := &term.Symbol{QualName: "succ"}
	zero := &term.Symbol{QualName: "zero"}
	m := Matrix{
		{LHS: []term.Term{term.App{Fun: term.Sym{Symbol: succ}, Arg: wildcard("_")}}, Env: nil},
		{LHS: []term.Term{term.Sym{Symbol: zero}}, Env: nil},
		{LHS: []term.Term{term.App{Fun: term.Sym{Symbol: succ}, Arg: wildcard("_")}}, Env: nil},
	}
	heads := Heads(store, m)
	require.Len(t, heads, 2)
	succSym, ok := heads[0].Head.(term.Sym)
	require.True(t, ok)
	assert.Same(t, succ, succSym.Symbol, "expected succ to be the first witness")
	zeroSym, ok := heads[1].Head.(term.Sym)
	require.True(t, ok)
	assert.Same(t, zero, zeroSym.Symbol, "expected zero to be the second witness")
}
