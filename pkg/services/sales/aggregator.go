package sales

import (
	"slices"
	"strconv"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// ParseSaleHour extracts the hour of an HH:MM[:SS] sale time. The hour is the
// leading integer of the part before the first colon, so "09h:15" is hour 9.
func ParseSaleHour(saleTime *string) (int, bool) {
	if saleTime == nil || !strings.Contains(*saleTime, ":") {
		return 0, false
	}

	hourStr, _, _ := strings.Cut(*saleTime, ":")
	hour, ok := leadingInt(hourStr)
	if !ok || hour < 0 || hour >= domain.HoursPerDay {
		return 0, false
	}
	return hour, true
}

// leadingInt reads an optionally signed base-10 integer at the start of s,
// after leading spaces, and ignores whatever follows it.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	return v, err == nil
}

// Aggregate folds the notes into the hourly table.
//
// Notes whose sale time does not parse are left out of the table, of
// totalSales and of the per-sale list. TotalProductQty is the sum of the whole
// quantity mapping, whether or not the note made it into the table.
func Aggregate(notes []domain.SalesNote, quantities map[int64]float64) domain.HourlyAggregate {
	var agg domain.HourlyAggregate
	for h := range agg.Buckets {
		agg.Buckets[h].Hour = h
	}
	agg.PerSaleQuantities = []domain.PerSaleQuantity{}

	for _, note := range notes {
		hour, ok := ParseSaleHour(note.SaleTime)
		if !ok {
			continue
		}

		var qty float64
		if note.ID != nil {
			qty = quantities[*note.ID]
		}

		bucket := &agg.Buckets[hour]
		bucket.SaleCount++
		bucket.ProductQuantity += qty
		bucket.Revenue += note.Total

		agg.PerSaleQuantities = append(agg.PerSaleQuantities, domain.PerSaleQuantity{
			NoteID:          note.ID,
			SaleTime:        *note.SaleTime,
			ProductQuantity: qty,
		})
	}

	maxCount := 0
	for _, bucket := range agg.Buckets {
		agg.TotalSales += bucket.SaleCount
		agg.TotalRevenue += bucket.Revenue
		maxCount = max(maxCount, bucket.SaleCount)
	}

	agg.PeakHours = []domain.HourBucket{}
	if maxCount > 0 {
		for _, bucket := range agg.Buckets {
			if bucket.SaleCount == maxCount {
				agg.PeakHours = append(agg.PeakHours, bucket)
			}
		}
	}

	// sorted so that repeated runs add in the same order
	ids := make([]int64, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		agg.TotalProductQty += quantities[id]
	}

	return agg
}
