package handler

import (
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/requirements"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// ResolveRequest is the body of POST /api/v1/requirements. Exactly one of
// workers and amount must be set.
type ResolveRequest struct {
	ItemID           string            `json:"item_id" validate:"required,max=100"`
	Workers          *float64          `json:"workers,omitempty" validate:"required_without=Amount,excluded_with=Amount,omitempty,gt=0"`
	Amount           *float64          `json:"amount,omitempty" validate:"required_without=Workers,omitempty,gt=0"`
	Unit             string            `json:"unit,omitempty" validate:"unit"`
	MaxAvailableTool string            `json:"max_available_tool,omitempty" validate:"tier"`
	HasMachineTools  bool              `json:"has_machine_tools"`
	HasEyeglasses    bool              `json:"has_eyeglasses"`
	Overrides        []OverrideRequest `json:"overrides,omitempty" validate:"max=64,dive"`
}

// OverrideRequest forces an item onto one creator
type OverrideRequest struct {
	ItemID    string `json:"item_id" validate:"required"`
	CreatorID string `json:"creator_id" validate:"required"`
}

// toResolution converts a validated request into a resolver request
func (req ResolveRequest) toResolution() (requirements.Request, error) {
	unit, err := domain.ParseOutputUnit(req.Unit)
	if err != nil {
		return requirements.Request{}, err
	}

	caps := toolset.Capabilities{
		HasMachineTools: req.HasMachineTools,
		HasEyeglasses:   req.HasEyeglasses,
	}
	if req.MaxAvailableTool != "" {
		if caps.MaxAvailableTool, err = toolset.ParseTier(req.MaxAvailableTool); err != nil {
			return requirements.Request{}, &domain.ValidationError{Field: domain.FieldTool, Reason: err.Error()}
		}
	}

	target := domain.AmountTarget(derefOrZero(req.Amount), unit)
	if req.Workers != nil {
		target = domain.WorkersTarget(*req.Workers, unit)
	}
	if err := target.Validate(); err != nil {
		return requirements.Request{}, err
	}

	overrides := make([]domain.CreatorOverride, len(req.Overrides))
	for i, o := range req.Overrides {
		overrides[i] = domain.CreatorOverride{ItemID: o.ItemID, CreatorID: o.CreatorID}
	}

	return requirements.Request{
		ItemID:       req.ItemID,
		Target:       target,
		Capabilities: caps,
		Overrides:    overrides,
	}, nil
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
