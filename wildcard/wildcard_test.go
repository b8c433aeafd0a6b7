package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsLiteral(t *testing.T) {
	names := []string{"mod1.esp", "mod2.esp", "base.esm"}

	matches, ok := Contains(names, "Base.esm")
	assert.True(t, ok)
	assert.Equal(t, []string{"base.esm"}, matches)

	_, ok = Contains(names, "missing.esp")
	assert.False(t, ok)
}

func TestContainsGlob(t *testing.T) {
	names := []string{"Mod1.esp", "Mod2.esp", "Other.esp"}

	matches, ok := Contains(names, "Mod*.esp")
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"Mod1.esp", "Mod2.esp"}, matches)

	matches, ok = Contains(names, "Mod?.esp")
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"Mod1.esp", "Mod2.esp"}, matches)
}

func TestContainsVerToken(t *testing.T) {
	names := []string{"Lib-1.2.esp", "Lib-2.0.esp", "Other.esp"}

	matches, ok := Contains(names, "Lib-<ver>.esp")
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"Lib-1.2.esp", "Lib-2.0.esp"}, matches)
}

func TestContainsPreservesInstalledOrderAndDedupes(t *testing.T) {
	names := []string{"b.esp", "a.esp", "b.esp", "c.esp"}
	matches, ok := Contains(names, "*.esp")
	assert.True(t, ok)
	assert.Equal(t, []string{"b.esp", "a.esp", "c.esp"}, matches)
}

func TestHasWildcard(t *testing.T) {
	assert.False(t, HasWildcard("base.esm"))
	assert.True(t, HasWildcard("mod*.esp"))
	assert.True(t, HasWildcard("mod?.esp"))
	assert.True(t, HasWildcard("lib-<ver>.esp"))
}
