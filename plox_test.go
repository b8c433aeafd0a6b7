package plox

import (
	"testing"

	"github.com/rfuzzo/plox/config"
	"github.com/rfuzzo/plox/parser"
	"github.com/rfuzzo/plox/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortEvaluateEndToEnd(t *testing.T) {
	text := "[Order]\nMorrowind.esm\nTribunal.esm\n\n" +
		"[Requires Tribunal needs the base game] Tribunal.esm Morrowind.esm\n"

	res := parser.ParseString(text, "(test)", nil)
	assert.Empty(t, res.Diagnostics)
	require.Len(t, res.Rules, 2)

	installed := []Plugin{plugin.New("morrowind.esm", 0), plugin.New("tribunal.esm", 0)}

	order, err := Sort(installed, res.Rules, config.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"morrowind.esm", "tribunal.esm"}, order)

	assert.Empty(t, Evaluate(res.Rules, installed))
}

func TestEvaluateFiresRequiresWarningWhenDependencyMissing(t *testing.T) {
	text := "[Requires Tribunal needs Bloodmoon] Tribunal.esm Bloodmoon.esm\n"
	res := parser.ParseString(text, "(test)", nil)
	require.Len(t, res.Rules, 1)

	installed := []Plugin{plugin.New("tribunal.esm", 0)}
	warnings := Evaluate(res.Rules, installed)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Tribunal needs Bloodmoon", warnings[0].Comment)
}

func TestVerifyReportsUnsatisfiableCycle(t *testing.T) {
	text := "[Order]\na.esp\nb.esp\n\n[Order]\nb.esp\na.esp\n"
	res := parser.ParseString(text, "(test)", nil)
	installed := []Plugin{plugin.New("a.esp", 0), plugin.New("b.esp", 0)}

	ok, err := Verify(installed, res.Rules)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestParseRulesFileMissingFile(t *testing.T) {
	_, _, err := ParseRulesFile("/nonexistent/path/rules.txt", nil)
	assert.Error(t, err)
}
