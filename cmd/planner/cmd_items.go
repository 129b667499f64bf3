package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

func newItemsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List every item the catalog can produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadPlanner(cmd.Context(), root)
			if err != nil {
				return err
			}

			items, err := svc.Items(cmd.Context())
			if err != nil {
				return err
			}

			if root.json {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			for _, item := range items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
}

func newCreatorsCmd(root *rootOptions) *cobra.Command {
	var (
		tool         string
		machineTools bool
		eyeglasses   bool
	)

	cmd := &cobra.Command{
		Use:   "creators <item>",
		Short: "Compare the recipes for an item under the given tools",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := toolset.ParseTier(tool)
			if err != nil {
				return fmt.Errorf(ErrMsgParseToolFmt, err)
			}

			svc, err := loadPlanner(cmd.Context(), root)
			if err != nil {
				return err
			}

			creators, err := svc.Creators(cmd.Context(), args[0], toolset.Capabilities{
				MaxAvailableTool: tier,
				HasMachineTools:  machineTools,
				HasEyeglasses:    eyeglasses,
			})
			if err != nil {
				return err
			}

			if root.json {
				return writeJSON(cmd.OutOrStdout(), creators)
			}
			return writeCreatorsTable(cmd.OutOrStdout(), creators)
		},
	}

	cmd.Flags().StringVar(&tool, FlagTool, toolset.TierNone.String(), "best tool tier available")
	cmd.Flags().BoolVar(&machineTools, FlagMachineTools, false, "machine tools are available")
	cmd.Flags().BoolVar(&eyeglasses, FlagEyeglasses, false, "eyeglasses are available")

	return cmd
}
