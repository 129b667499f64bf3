package toolset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input    string
		expected Tier
	}{
		{"none", TierNone},
		{"stone", TierStone},
		{"COPPER", TierCopper},
		{" iron ", TierIron},
		{"Bronze", TierBronze},
		{"steel", TierSteel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tier, err := ParseTier(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tier)
		})
	}

	t.Run("unknown tier", func(t *testing.T) {
		_, err := ParseTier("mithril")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownTier))
	})
}

func TestTier_Multiplier(t *testing.T) {
	assert.Equal(t, 1.0, TierNone.Multiplier())
	assert.Equal(t, 2.0, TierStone.Multiplier())
	assert.Equal(t, 4.0, TierCopper.Multiplier())
	assert.Equal(t, 5.3, TierIron.Multiplier())
	assert.Equal(t, 6.15, TierBronze.Multiplier())
	assert.Equal(t, 8.0, TierSteel.Multiplier())
	assert.Greater(t, MachineModifier, TierSteel.Multiplier())

	assert.Panics(t, func() { Tier(42).Multiplier() })
}

func TestTier_TextRoundTrip(t *testing.T) {
	for _, tier := range Tiers() {
		text, err := tier.MarshalText()
		require.NoError(t, err)

		var decoded Tier
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, tier, decoded)
	}

	var bad Tier
	assert.Error(t, bad.UnmarshalText([]byte("adamant")))
}

func TestIsSufficient(t *testing.T) {
	assert.True(t, IsSufficient(TierNone, TierNone))
	assert.True(t, IsSufficient(TierCopper, TierSteel))
	assert.True(t, IsSufficient(TierIron, TierIron))
	assert.False(t, IsSufficient(TierBronze, TierIron))
	assert.False(t, IsSufficient(TierStone, TierNone))
}

func TestEffectiveModifier(t *testing.T) {
	t.Run("default toolset is capped by maximum tool", func(t *testing.T) {
		ts := DefaultToolset{MinimumTool: TierNone, MaximumTool: TierCopper}
		assert.Equal(t, 1.0, EffectiveModifier(ts, TierNone))
		assert.Equal(t, 2.0, EffectiveModifier(ts, TierStone))
		assert.Equal(t, 4.0, EffectiveModifier(ts, TierCopper))
		assert.Equal(t, 4.0, EffectiveModifier(ts, TierSteel))
	})

	t.Run("machine ignores tier", func(t *testing.T) {
		for _, tier := range Tiers() {
			assert.Equal(t, MachineModifier, EffectiveModifier(MachineToolset{}, tier))
		}
	})

	t.Run("eyeglasses ignores tier", func(t *testing.T) {
		for _, tier := range Tiers() {
			assert.Equal(t, 1.0, EffectiveModifier(EyeglassesToolset{}, tier))
		}
	})
}

func TestEffectiveCycleTime_MonotoneAndBounded(t *testing.T) {
	const base = 12.0
	for _, maxTool := range Tiers() {
		ts := DefaultToolset{MinimumTool: TierNone, MaximumTool: maxTool}
		lowerBound := base / maxTool.Multiplier()

		previous := EffectiveCycleTime(base, ts, TierNone)
		for _, available := range Tiers() {
			current := EffectiveCycleTime(base, ts, available)
			assert.LessOrEqual(t, current, previous, "max=%s available=%s", maxTool, available)
			assert.GreaterOrEqual(t, current, lowerBound, "max=%s available=%s", maxTool, available)
			previous = current
		}
		assert.InDelta(t, lowerBound, EffectiveCycleTime(base, ts, TierSteel), 1e-12)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		toolset  Toolset
		caps     Capabilities
		expected Usability
	}{
		{"default usable", DefaultToolset{MinimumTool: TierStone, MaximumTool: TierSteel}, Capabilities{MaxAvailableTool: TierIron}, Usable},
		{"default blocked by tier", DefaultToolset{MinimumTool: TierBronze, MaximumTool: TierSteel}, Capabilities{MaxAvailableTool: TierIron}, BlockedByTier},
		{"machine without tools", MachineToolset{}, Capabilities{MaxAvailableTool: TierSteel}, BlockedByMachine},
		{"machine with tools", MachineToolset{}, Capabilities{HasMachineTools: true}, Usable},
		{"eyeglasses without glasses", EyeglassesToolset{}, Capabilities{MaxAvailableTool: TierSteel, HasMachineTools: true}, BlockedByEyeglasses},
		{"eyeglasses with glasses", EyeglassesToolset{}, Capabilities{HasEyeglasses: true}, Usable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Check(tt.toolset, tt.caps))
		})
	}
}

func TestToolsetKinds(t *testing.T) {
	assert.Equal(t, KindDefault, DefaultToolset{}.Kind())
	assert.Equal(t, KindMachine, MachineToolset{}.Kind())
	assert.Equal(t, KindEyeglasses, EyeglassesToolset{}.Kind())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "stone-iron", Describe(DefaultToolset{MinimumTool: TierStone, MaximumTool: TierIron}))
	assert.Equal(t, "machine", Describe(MachineToolset{}))
	assert.Equal(t, "eyeglasses", Describe(EyeglassesToolset{}))
}
