package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rfuzzo/plox/expr"
	"github.com/rfuzzo/plox/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ignoreSource = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".Source"
}, cmp.Ignore())

func TestParseInlineNote(t *testing.T) {
	res := ParseString(`[Note message] a.archive b.archive c.archive`, "t.txt", nil)
	require.Len(t, res.Rules, 1)
	r := res.Rules[0]
	assert.Equal(t, rule.Note, r.Kind)
	assert.Equal(t, "message", r.Comment)
	assert.Len(t, r.Expressions, 3)
}

func TestParseMultilineNoteWithCommentLine(t *testing.T) {
	res := ParseString("[Note]\n message\na.archive\nb.archive", "t.txt", nil)
	require.Len(t, res.Rules, 1)
	r := res.Rules[0]
	assert.Equal(t, "message", r.Comment)
	assert.Len(t, r.Expressions, 2)
}

func TestParseMultilineOrder(t *testing.T) {
	res := ParseString("[Order]\na.archive\nb.archive\nc.archive", "t.txt", nil)
	require.Len(t, res.Rules, 1)
	assert.Equal(t, []string{"a.archive", "b.archive", "c.archive"}, res.Rules[0].Names)
}

func TestOrderWithLessThanTwoNamesIsDroppedSilently(t *testing.T) {
	res := ParseString("[Order]\na.archive", "t.txt", nil)
	assert.Empty(t, res.Rules)
	assert.Empty(t, res.Diagnostics)
}

func TestParseSize(t *testing.T) {
	res := ParseString(`[Note][SIZE 1 a.esp]`, "t.txt", nil)
	require.Len(t, res.Rules, 1)
	require.Len(t, res.Rules[0].Expressions, 1)
	e := res.Rules[0].Expressions[0]
	assert.Equal(t, expr.Size, e.Kind)
	assert.Equal(t, uint64(1), e.Bytes)
	assert.False(t, e.Negated)
	assert.Equal(t, "a.esp", e.Pattern)
}

func TestParseSizeNegated(t *testing.T) {
	res := ParseString(`[Note][SIZE !2 a.esp]`, "t.txt", nil)
	require.Len(t, res.Rules, 1)
	e := res.Rules[0].Expressions[0]
	assert.True(t, e.Negated)
	assert.Equal(t, uint64(2), e.Bytes)
}

func TestConflictRequiresTwoExpressions(t *testing.T) {
	res := ParseString(`[Conflict reason] a.esp b.esp`, "t.txt", nil)
	require.Len(t, res.Rules, 1)
	r := res.Rules[0]
	assert.Equal(t, rule.Conflict, r.Kind)
	assert.Equal(t, "reason", r.Comment)
	if diff := cmp.Diff(&expr.Expr{Kind: expr.Atomic, Pattern: "a.esp"}, r.A, ignoreSource); diff != "" {
		t.Errorf("A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&expr.Expr{Kind: expr.Atomic, Pattern: "b.esp"}, r.B, ignoreSource); diff != "" {
		t.Errorf("B mismatch (-want +got):\n%s", diff)
	}
}

func TestConflictWithFewerThanTwoExpressionsIsDroppedWithDiagnostic(t *testing.T) {
	res := ParseString(`[Conflict reason] a.esp`, "t.txt", nil)
	assert.Empty(t, res.Rules)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "Conflict", res.Diagnostics[0].Kind)
}

func TestCommentLinesAreDropped(t *testing.T) {
	res := ParseString("; a leading comment\n[Order]\na.esp\nb.esp", "t.txt", nil)
	require.Len(t, res.Rules, 1)
}

func TestNestedAllAnyNot(t *testing.T) {
	res := ParseString(`[Note][ALL a.esp [NOT b.esp] [ANY c.esp d.esp]]`, "t.txt", nil)
	require.Len(t, res.Rules, 1)
	require.Len(t, res.Rules[0].Expressions, 1)
	top := res.Rules[0].Expressions[0]
	assert.Equal(t, expr.All, top.Kind)
	require.Len(t, top.Children, 3)
	assert.Equal(t, expr.Atomic, top.Children[0].Kind)
	assert.Equal(t, expr.Not, top.Children[1].Kind)
	assert.Equal(t, expr.Any, top.Children[2].Kind)
}

func TestUnknownRuleKindYieldsDiagnostic(t *testing.T) {
	res := ParseString(`[Bogus] a.esp b.esp`, "t.txt", nil)
	assert.Empty(t, res.Rules)
	require.Len(t, res.Diagnostics, 1)
}

func TestQuotedAtomicWithSpaces(t *testing.T) {
	res := ParseString(`[Note]"a mod.esp"`, "t.txt", nil)
	require.Len(t, res.Rules, 1)
	require.Len(t, res.Rules[0].Expressions, 1)
	assert.Equal(t, "a mod.esp", res.Rules[0].Expressions[0].Pattern)
}
