package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/requirements"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

type resolveOptions struct {
	workers      float64
	amount       float64
	unit         string
	tool         string
	machineTools bool
	eyeglasses   bool
	overrides    []string
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <item>",
		Short: "Compute the production network for a target",
		Example: `  planner resolve planks --workers 2
  planner resolve copper_tools --amount 3 --unit GAME_DAYS --tool stone
  planner resolve planks --workers 1 --override log=woodcutter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.toRequest(cmd, args[0])
			if err != nil {
				return err
			}

			svc, err := loadPlanner(cmd.Context(), root)
			if err != nil {
				return err
			}

			plan, err := svc.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			if root.json {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			return writePlanTable(cmd.OutOrStdout(), plan)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.workers, FlagWorkers, 0, "workers assigned to the item's recipe")
	f.Float64Var(&opts.amount, FlagAmount, 0, "output amount to sustain per unit")
	f.StringVar(&opts.unit, FlagUnit, string(domain.UnitSeconds), "output unit (SECONDS, MINUTES, GAME_DAYS)")
	f.StringVar(&opts.tool, FlagTool, toolset.TierNone.String(), "best tool tier available")
	f.BoolVar(&opts.machineTools, FlagMachineTools, false, "machine tools are available")
	f.BoolVar(&opts.eyeglasses, FlagEyeglasses, false, "eyeglasses are available")
	f.StringArrayVar(&opts.overrides, FlagOverride, nil, "force a creator for an item, as item=creator (repeatable)")
	cmd.MarkFlagsMutuallyExclusive(FlagWorkers, FlagAmount)
	cmd.MarkFlagsOneRequired(FlagWorkers, FlagAmount)

	return cmd
}

// toRequest turns flags into a resolver request. Range checks are left to
// the resolver so the CLI and HTTP API report them identically.
func (o *resolveOptions) toRequest(cmd *cobra.Command, itemID string) (requirements.Request, error) {
	unit, err := domain.ParseOutputUnit(o.unit)
	if err != nil {
		return requirements.Request{}, err
	}

	tier, err := toolset.ParseTier(o.tool)
	if err != nil {
		return requirements.Request{}, fmt.Errorf(ErrMsgParseToolFmt, err)
	}

	var target domain.Target
	switch {
	case cmd.Flags().Changed(FlagWorkers):
		target = domain.WorkersTarget(o.workers, unit)
	case cmd.Flags().Changed(FlagAmount):
		target = domain.AmountTarget(o.amount, unit)
	default:
		return requirements.Request{}, errors.New(ErrMsgTargetRequired)
	}

	overrides, err := parseOverrides(o.overrides)
	if err != nil {
		return requirements.Request{}, err
	}

	return requirements.Request{
		ItemID: itemID,
		Target: target,
		Capabilities: toolset.Capabilities{
			MaxAvailableTool: tier,
			HasMachineTools:  o.machineTools,
			HasEyeglasses:    o.eyeglasses,
		},
		Overrides: overrides,
	}, nil
}

func parseOverrides(raw []string) ([]domain.CreatorOverride, error) {
	overrides := make([]domain.CreatorOverride, 0, len(raw))
	for _, entry := range raw {
		item, creator, ok := strings.Cut(entry, "=")
		item, creator = strings.TrimSpace(item), strings.TrimSpace(creator)
		if !ok || item == "" || creator == "" {
			return nil, fmt.Errorf(ErrMsgBadOverrideFmt, entry)
		}
		overrides = append(overrides, domain.CreatorOverride{ItemID: item, CreatorID: creator})
	}
	return overrides, nil
}
