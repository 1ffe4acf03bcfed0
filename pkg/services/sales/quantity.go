package sales

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/client"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

const itemLineType = "ITEM"

// QuantityFetcher sums, for one note, the quantity sold of the target product.
// Lookup failures are absorbed and count as zero.
type QuantityFetcher struct {
	items    ItemSource
	target   float64
	matchAll bool
	timeout  time.Duration
}

// NewQuantityFetcher builds a fetcher for productID. A zero or unparsable
// product id matches every product line.
func NewQuantityFetcher(items ItemSource, productID string, timeout time.Duration) *QuantityFetcher {
	target, err := cast.ToFloat64E(strings.TrimSpace(productID))
	matchAll := err != nil || target == 0 || math.IsNaN(target) || math.IsInf(target, 0)

	return &QuantityFetcher{
		items:    items,
		target:   target,
		matchAll: matchAll,
		timeout:  timeout,
	}
}

func (f *QuantityFetcher) Quantity(ctx context.Context, noteID int64) float64 {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	items, err := f.items.FetchNoteItems(ctx, noteID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Int64("note_id", noteID).
			Msg("item lookup failed, counting quantity as zero")
		return 0
	}

	return f.Sum(items)
}

// Sum adds the quantities of the lines that match the target product.
func (f *QuantityFetcher) Sum(items []domain.NoteLineItem) float64 {
	var total float64
	for _, item := range items {
		if f.matches(item) {
			total += client.Amount(item.Quantity)
		}
	}
	return total
}

func (f *QuantityFetcher) matches(item domain.NoteLineItem) bool {
	if strings.ToUpper(cast.ToString(item.Type)) != itemLineType {
		return false
	}
	if truthy(item.Cancelled) {
		return false
	}
	if f.matchAll {
		return true
	}

	productID, err := cast.ToFloat64E(item.ProductID)
	if err != nil || item.ProductID == nil {
		return false
	}
	return productID == f.target
}

// truthy follows the loose truthiness of the ERP payloads: null, false, 0 and
// the empty string are false, anything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}
