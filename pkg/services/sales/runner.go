package sales

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrentItemLookups caps the item lookups in flight for one request.
const MaxConcurrentItemLookups = 8

// QuantityFunc resolves the product quantity of one note. It never fails.
type QuantityFunc func(ctx context.Context, noteID int64) float64

// RunBounded resolves every id with at most limit calls in flight.
//
// Workers pull the next unclaimed index from a shared cursor, so a slow lookup
// only holds back its own worker. Each index has its own result slot, merged
// into the returned map after all workers joined. Ids are not de-duplicated.
func RunBounded(ctx context.Context, ids []int64, limit int, fetch QuantityFunc) map[int64]float64 {
	if limit < 1 {
		limit = 1
	}

	results := make([]float64, len(ids))
	var cursor atomic.Int64
	var g errgroup.Group

	for w := 0; w < min(limit, len(ids)); w++ {
		g.Go(func() error {
			for {
				i := int(cursor.Add(1) - 1)
				if i >= len(ids) {
					return nil
				}
				results[i] = fetch(ctx, ids[i])
			}
		})
	}
	_ = g.Wait()

	quantities := make(map[int64]float64, len(ids))
	for i, id := range ids {
		quantities[id] = results[i]
	}
	return quantities
}
