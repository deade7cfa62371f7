package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistryToolSurface(t *testing.T) {
	env, _ := newTestEnv(t, false)
	registry, err := BuildRegistry(env)
	require.NoError(t, err)

	want := []string{
		"health",
		"get_coin",
		"get_coins",
		"get_coin_holders",
		"get_coin_swaps",
		"get_coin_comments",
		"get_profile",
		"get_profile_coins",
		"get_profile_balances",
		"explore_top_gainers",
		"explore_top_volume_24h",
		"explore_most_valuable",
		"explore_new",
		"explore_last_traded",
		"explore_last_traded_unique",
		"create_coin",
		"update_coin_uri",
		"update_payout_recipient",
		"trade_coin",
	}

	require.Equal(t, len(want), registry.Len())

	got := make([]string, 0, registry.Len())
	for _, spec := range registry.Specs() {
		got = append(got, spec.Name)
	}
	assert.Equal(t, want, got, "registration order is part of the contract")
}

func TestBuildRegistryWriteClassification(t *testing.T) {
	env, _ := newTestEnv(t, false)
	registry, err := BuildRegistry(env)
	require.NoError(t, err)

	writes := map[string]bool{
		"create_coin":             true,
		"update_coin_uri":         true,
		"update_payout_recipient": true,
		"trade_coin":              true,
	}

	for _, spec := range registry.Specs() {
		assert.Equal(t, writes[spec.Name], spec.Write, "tool %s", spec.Name)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	spec := &Spec{Name: "health", Handler: healthHandler}

	require.NoError(t, registry.Register(spec))
	err := registry.Register(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered twice")
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	registry := NewRegistry()
	require.Error(t, registry.Register(&Spec{}))
}

func TestRegistryLookup(t *testing.T) {
	env, _ := newTestEnv(t, false)
	registry, err := BuildRegistry(env)
	require.NoError(t, err)

	spec, ok := registry.Lookup("get_coin")
	require.True(t, ok)
	assert.Equal(t, "get_coin", spec.Name)

	_, ok = registry.Lookup("get_coin_typo")
	assert.False(t, ok)
}

func TestEveryToolHasTitleAndDescription(t *testing.T) {
	env, _ := newTestEnv(t, false)
	registry, err := BuildRegistry(env)
	require.NoError(t, err)

	for _, spec := range registry.Specs() {
		assert.NotEmpty(t, spec.Title, "tool %s", spec.Name)
		assert.NotEmpty(t, spec.Description, "tool %s", spec.Name)
		assert.NotNil(t, spec.Handler, "tool %s", spec.Name)
	}
}
