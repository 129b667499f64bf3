package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ColonyPlanner_Go/internal/planner"
)

var (
	titleCaser  = cases.Title(language.English)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// label turns an item or creator id into a display name: "copper_tools"
// becomes "Copper Tools"
func label(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// writePlanTable renders one row per creator allocation, in resolution order
func writePlanTable(w io.Writer, plan *planner.Plan) error {
	t := newTable(
		titleCaser.String(HeaderItem),
		titleCaser.String(HeaderAmount)+" / "+strings.ToLower(string(plan.Unit)),
		titleCaser.String(HeaderCreator),
		titleCaser.String(HeaderWorkers),
	)

	for _, req := range plan.Requirements {
		if len(req.Creators) == 0 {
			t.Row(label(req.ItemID), formatNumber(req.Byproduct), ByproductLabel, "")
			continue
		}
		for i, c := range req.Creators {
			item, amount := label(req.ItemID), formatNumber(req.Amount)
			if i > 0 {
				item, amount = "", ""
			}
			t.Row(item, amount, label(c.CreatorID), formatNumber(c.Workers))
		}
	}
	t.Row(titleCaser.String(TotalRowLabel), "", "", formatNumber(plan.TotalWorkers))

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf(ErrMsgRenderOutputFmt, err)
	}
	return nil
}

// writeCreatorsTable renders an item's recipes with their rate and status
func writeCreatorsTable(w io.Writer, creators []planner.CreatorInfo) error {
	t := newTable(
		titleCaser.String(HeaderCreator),
		titleCaser.String(HeaderToolset),
		titleCaser.String(HeaderRate),
		titleCaser.String(HeaderStatus),
	)

	for _, c := range creators {
		status := c.BlockedBy
		switch {
		case c.Optimal:
			status = StatusOptimal
		case c.Usable:
			status = StatusUsable
		}
		t.Row(label(c.CreatorID), c.Toolset, formatNumber(c.OutputRate), status)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf(ErrMsgRenderOutputFmt, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf(ErrMsgEncodeOutputFmt, err)
	}
	return nil
}
