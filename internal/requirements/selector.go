package requirements

import (
	"fmt"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// Usable filters candidates down to the recipes the capabilities allow,
// keeping their order
func Usable(candidates []*domain.Recipe, caps toolset.Capabilities) []*domain.Recipe {
	usable := make([]*domain.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if toolset.Check(r.Toolset, caps) == toolset.Usable {
			usable = append(usable, r)
		}
	}
	return usable
}

// SelectOptimal picks the usable recipe with the highest output per worker
// second at the available tier. Ties go to the earliest candidate. When no
// candidate is usable the error says why; see GatingError.
func SelectOptimal(itemID string, candidates []*domain.Recipe, caps toolset.Capabilities) (*domain.Recipe, error) {
	var (
		best     *domain.Recipe
		bestRate float64
	)
	for _, r := range Usable(candidates, caps) {
		rate := r.OutputRate(caps.MaxAvailableTool)
		if best == nil || rate > bestRate {
			best, bestRate = r, rate
		}
	}
	if best == nil {
		return nil, GatingError(itemID, candidates, caps)
	}
	return best, nil
}

// GatingError explains why none of candidates can run. A tier shortfall wins
// and reports the lowest minimum tool among the tier-blocked recipes, then
// missing machine tools, then missing eyeglasses.
func GatingError(itemID string, candidates []*domain.Recipe, caps toolset.Capabilities) error {
	var (
		tierBlocked    bool
		lowestMinimum  toolset.Tier
		machineBlocked bool
		glassesBlocked bool
	)
	for _, r := range candidates {
		switch toolset.Check(r.Toolset, caps) {
		case toolset.BlockedByTier:
			minimum := r.Toolset.(toolset.DefaultToolset).MinimumTool
			if !tierBlocked || minimum < lowestMinimum {
				lowestMinimum = minimum
			}
			tierBlocked = true
		case toolset.BlockedByMachine:
			machineBlocked = true
		case toolset.BlockedByEyeglasses:
			glassesBlocked = true
		}
	}

	switch {
	case tierBlocked:
		return &domain.ToolLevelError{ItemID: itemID, MinimumTool: lowestMinimum.String()}
	case machineBlocked:
		return &domain.MachineToolsRequiredError{ItemID: itemID}
	case glassesBlocked:
		return &domain.EyeglassesRequiredError{ItemID: itemID}
	default:
		return &domain.InternalError{Detail: fmt.Sprintf(domain.ErrMsgRootRecipeMissingFmt, itemID)}
	}
}
