package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
)

func TestNewIndex(t *testing.T) {
	ix := mustIndex(t,
		recipe("planks", "sawmill", req("log", 1)),
		recipe("log", "woodcutter"),
		recipe("planks", "carpenter", req("log", 2)),
	)

	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []string{"planks", "log"}, ix.Items())

	planks := ix.ByItem("planks")
	require.Len(t, planks, 2)
	assert.Equal(t, "sawmill", planks[0].CreatorID)
	assert.Equal(t, "carpenter", planks[1].CreatorID)

	r, ok := ix.Lookup(domain.RecipeKey{ItemID: "planks", CreatorID: "carpenter"})
	require.True(t, ok)
	assert.Equal(t, 2.0, r.Requirements[0].Amount)

	_, ok = ix.Lookup(domain.RecipeKey{ItemID: "planks", CreatorID: "nobody"})
	assert.False(t, ok)
	assert.True(t, ix.HasItem("log"))
	assert.False(t, ix.HasItem("nails"))
}

func TestNewIndex_DuplicateKey(t *testing.T) {
	_, err := NewIndex([]domain.Recipe{recipe("log", "woodcutter"), recipe("log", "woodcutter")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateRecipeKey))
	assert.Contains(t, err.Error(), "log#woodcutter")
}

func TestNewIndex_CopiesInput(t *testing.T) {
	input := []domain.Recipe{recipe("log", "woodcutter")}
	ix := mustIndex(t, input...)

	input[0].CreatorID = "changed"
	assert.Equal(t, "woodcutter", ix.ByItem("log")[0].CreatorID)
}

func TestIndex_Closure(t *testing.T) {
	byproduct := recipe("planks", "sawmill", req("log", 1))
	byproduct.OptionalOutputs = []domain.OptionalOutput{{ItemID: "sawdust", Amount: 1, Likelihood: 0.5}}

	ix := mustIndex(t,
		recipe("sand", "digger"),
		byproduct,
		recipe("log", "woodcutter"),
		recipe("sawdust", "grinder", req("log", 1)),
		recipe("glass", "furnace", req("sand", 1)),
	)

	t.Run("follows requirements and byproducts", func(t *testing.T) {
		closure := ix.Closure("planks")
		var keys []string
		for _, r := range closure {
			keys = append(keys, r.Key().String())
		}
		assert.Equal(t, []string{"planks#sawmill", "log#woodcutter", "sawdust#grinder"}, keys)
	})

	t.Run("leaf item", func(t *testing.T) {
		closure := ix.Closure("sand")
		require.Len(t, closure, 1)
		assert.Equal(t, "digger", closure[0].CreatorID)
	})

	t.Run("unknown root", func(t *testing.T) {
		assert.Nil(t, ix.Closure("nails"))
	})
}

func TestIndex_ClosureWithCycle(t *testing.T) {
	// a needs b, b needs a
	ix := mustIndex(t,
		recipe("a", "maker", req("b", 1)),
		recipe("b", "maker", req("a", 1)),
		recipe("b", "miner"),
	)

	closure := ix.Closure("a")
	assert.Len(t, closure, 3)
}
