package requirements

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
)

// chainCatalog builds a linear chain of depth items, each with two creators
func chainCatalog(depth int) []domain.Recipe {
	records := make([]domain.Recipe, 0, depth*2)
	for i := 0; i < depth; i++ {
		item := fmt.Sprintf("item_%d", i)
		var reqs []domain.Requirement
		if i+1 < depth {
			reqs = []domain.Requirement{need(fmt.Sprintf("item_%d", i+1), 2)}
		}
		records = append(records,
			rec(item, "fast", 1, 2, anyTier, reqs...),
			rec(item, "slow", 2, 2, anyTier, reqs...),
		)
	}
	return records
}

func BenchmarkResolve(b *testing.B) {
	for _, depth := range []int{5, 20, 50} {
		records := chainCatalog(depth)
		req := Request{ItemID: "item_0", Target: domain.AmountTarget(1, domain.UnitMinutes)}
		r := NewResolver(nil)

		b.Run(fmt.Sprintf("depth_%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := r.Resolve(context.Background(), records, req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
