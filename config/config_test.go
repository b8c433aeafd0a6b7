package config

import (
	"testing"

	"github.com/rfuzzo/plox/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSONAppliesDefaultsForMissingFields(t *testing.T) {
	cfg, err := LoadJSON([]byte(`{"mode":"unstable"}`))
	require.NoError(t, err)
	assert.Equal(t, "*_base.txt", cfg.BaseGlob)
	assert.Equal(t, "*_user.txt", cfg.UserGlob)
	assert.Equal(t, "unstable", cfg.Mode)
	assert.Equal(t, sorter.ModeUnstable, cfg.SortMode())
}

func TestLoadJSONRejectsUnknownField(t *testing.T) {
	_, err := LoadJSON([]byte(`{"mode":"stable","bogus":1}`))
	assert.Error(t, err)
}

func TestLoadJSONRejectsBadMode(t *testing.T) {
	_, err := LoadJSON([]byte(`{"mode":"sideways"}`))
	assert.Error(t, err)
}

func TestSortModeDefaultsToStableOpt(t *testing.T) {
	cfg := Default()
	assert.Equal(t, sorter.ModeStableOpt, cfg.SortMode())
}

func TestSortOptionsCarriesDisableNearBias(t *testing.T) {
	cfg, err := LoadJSON([]byte(`{"disableNearBias":true}`))
	require.NoError(t, err)
	assert.True(t, cfg.SortOptions().DisableNearBias)

	assert.False(t, Default().SortOptions().DisableNearBias)
}
