package toolset

import (
	"fmt"
	"strings"
)

// Tier is a tool quality level. Tiers are ordered; a higher tier never has a
// lower multiplier than a lower one.
type Tier int

const (
	TierNone Tier = iota
	TierStone
	TierCopper
	TierIron
	TierBronze
	TierSteel
)

// MachineModifier is the fixed speed multiplier for machine-typed recipes.
// It does not depend on the available tier.
const MachineModifier = 16.0

var tierNames = [...]string{
	TierNone:   TierNameNone,
	TierStone:  TierNameStone,
	TierCopper: TierNameCopper,
	TierIron:   TierNameIron,
	TierBronze: TierNameBronze,
	TierSteel:  TierNameSteel,
}

var tierMultipliers = [...]float64{
	TierNone:   1,
	TierStone:  2,
	TierCopper: 4,
	TierIron:   5.3,
	TierBronze: 6.15,
	TierSteel:  8,
}

// Tiers returns every known tier in ascending order.
func Tiers() []Tier {
	return []Tier{TierNone, TierStone, TierCopper, TierIron, TierBronze, TierSteel}
}

// ParseTier resolves a tier by name, case-insensitively.
func ParseTier(name string) (Tier, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range tierNames {
		if n == normalized {
			return Tier(i), nil
		}
	}
	return TierNone, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t >= TierNone && int(t) < len(tierNames)
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Multiplier returns the speed multiplier for t.
// An out-of-range tier is a programming error and panics.
func (t Tier) Multiplier() float64 {
	if !t.Valid() {
		panic(fmt.Sprintf(PanicMsgUnknownTierFmt, int(t)))
	}
	return tierMultipliers[t]
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name. Unknown names are rejected so that a bad
// catalog fails at load time rather than during resolution.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsSufficient reports whether the available tier satisfies a minimum tier.
func IsSufficient(minimum, available Tier) bool {
	return available.Multiplier() >= minimum.Multiplier()
}
