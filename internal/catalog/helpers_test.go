package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

const smallCatalogYAML = `
version: "1.0"
recipes:
  - item: log
    creator: woodcutter
    cycle_time: 12
    output: 1
  - item: planks
    creator: sawmill
    cycle_time: 9
    output: 2
    requirements:
      - item: log
        amount: 1
    optional_outputs:
      - item: sawdust
        amount: 1
        likelihood: 0.25
  - item: sawdust
    creator: grinder
    cycle_time: 6
    output: 3
    requirements:
      - item: log
        amount: 1
  - item: sand
    creator: digger
    cycle_time: 4
    output: 2
    toolset:
      maximum_tool: none
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func recipe(itemID, creatorID string, reqs ...domain.Requirement) domain.Recipe {
	return domain.Recipe{
		ItemID:       itemID,
		CreatorID:    creatorID,
		CycleTime:    1,
		Output:       1,
		Requirements: reqs,
		Toolset:      toolset.DefaultToolset{MaximumTool: toolset.TierSteel},
	}
}

func req(itemID string, amount float64) domain.Requirement {
	return domain.Requirement{ItemID: itemID, Amount: amount}
}

func mustIndex(t *testing.T, recipes ...domain.Recipe) *Index {
	t.Helper()
	ix, err := NewIndex(recipes)
	require.NoError(t, err)
	return ix
}
