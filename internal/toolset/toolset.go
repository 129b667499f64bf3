package toolset

import "fmt"

// Toolset describes what a recipe needs in order to run. It is a closed sum
// type: DefaultToolset, MachineToolset and EyeglassesToolset are the only
// implementations.
type Toolset interface {
	Kind() Kind
	isToolset()
}

// Kind names a Toolset variant.
type Kind string

const (
	KindDefault    Kind = "default"
	KindMachine    Kind = "machine"
	KindEyeglasses Kind = "eyeglasses"
)

// DefaultToolset is the tiered toolset. The recipe may only run when the
// available tier reaches MinimumTool, and it stops getting faster past
// MaximumTool.
type DefaultToolset struct {
	MinimumTool Tier
	MaximumTool Tier
}

// MachineToolset runs at MachineModifier and requires machine tools.
type MachineToolset struct{}

// EyeglassesToolset requires eyeglasses and ignores tiers entirely.
type EyeglassesToolset struct{}

func (DefaultToolset) Kind() Kind    { return KindDefault }
func (MachineToolset) Kind() Kind    { return KindMachine }
func (EyeglassesToolset) Kind() Kind { return KindEyeglasses }

func (DefaultToolset) isToolset()    {}
func (MachineToolset) isToolset()    {}
func (EyeglassesToolset) isToolset() {}

// Capabilities is what the caller has available.
type Capabilities struct {
	MaxAvailableTool Tier
	HasMachineTools  bool
	HasEyeglasses    bool
}

// EffectiveModifier returns the speed multiplier a toolset runs at given the
// available tier.
func EffectiveModifier(ts Toolset, available Tier) float64 {
	switch t := ts.(type) {
	case MachineToolset:
		return MachineModifier
	case EyeglassesToolset:
		return TierNone.Multiplier()
	case DefaultToolset:
		return min(t.MaximumTool.Multiplier(), available.Multiplier())
	default:
		panic(fmt.Sprintf(PanicMsgUnknownToolsetFmt, ts))
	}
}

// EffectiveCycleTime scales a base cycle time by the effective modifier.
func EffectiveCycleTime(baseCycleTime float64, ts Toolset, available Tier) float64 {
	return baseCycleTime / EffectiveModifier(ts, available)
}

// Usability is the result of checking a toolset against capabilities.
type Usability int

const (
	Usable Usability = iota
	BlockedByTier
	BlockedByMachine
	BlockedByEyeglasses
)

// Check reports whether a toolset can run with the given capabilities.
func Check(ts Toolset, caps Capabilities) Usability {
	switch t := ts.(type) {
	case MachineToolset:
		if !caps.HasMachineTools {
			return BlockedByMachine
		}
		return Usable
	case EyeglassesToolset:
		if !caps.HasEyeglasses {
			return BlockedByEyeglasses
		}
		return Usable
	case DefaultToolset:
		if !IsSufficient(t.MinimumTool, caps.MaxAvailableTool) {
			return BlockedByTier
		}
		return Usable
	default:
		panic(fmt.Sprintf(PanicMsgUnknownToolsetFmt, ts))
	}
}

// Describe renders a toolset for display: "min-max" for tiered toolsets and
// the kind name otherwise
func Describe(ts Toolset) string {
	if d, ok := ts.(DefaultToolset); ok {
		return d.MinimumTool.String() + "-" + d.MaximumTool.String()
	}
	return string(ts.Kind())
}
