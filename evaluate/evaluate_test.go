package evaluate

import (
	"testing"

	"github.com/rfuzzo/plox/expr"
	"github.com/rfuzzo/plox/plugin"
	"github.com/rfuzzo/plox/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePreservesDeclarationOrderAndSkipsOrderRules(t *testing.T) {
	installed := []plugin.Plugin{plugin.New("a.esp", 0), plugin.New("b.esp", 0)}
	rules := []rule.Rule{
		{Kind: rule.Order, Names: []string{"a.esp", "b.esp"}},
		{Kind: rule.Note, Comment: "first", Expressions: []*expr.Expr{{Kind: expr.Atomic, Pattern: "a.esp"}}},
		{Kind: rule.Note, Comment: "second", Expressions: []*expr.Expr{{Kind: expr.Atomic, Pattern: "b.esp"}}},
	}

	warnings := Evaluate(rules, installed)
	require.Len(t, warnings, 2)
	assert.Equal(t, "first", warnings[0].Comment)
	assert.Equal(t, "second", warnings[1].Comment)
}

func TestEvaluateSkipsNonFiringRules(t *testing.T) {
	installed := []plugin.Plugin{plugin.New("a.esp", 0)}
	rules := []rule.Rule{
		{Kind: rule.Note, Comment: "never fires", Expressions: []*expr.Expr{{Kind: expr.Atomic, Pattern: "missing.esp"}}},
	}
	assert.Empty(t, Evaluate(rules, installed))
}

func TestSuggestSimilar(t *testing.T) {
	installed := []plugin.Plugin{plugin.New("morrowind.esm", 0), plugin.New("tribunal.esm", 0)}
	suggestions := SuggestSimilar(installed, "morowind.esm", 1)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "morrowind.esm", suggestions[0])
}
