package sales

import (
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSaleHour(t *testing.T) {
	tests := []struct {
		name     string
		saleTime *string
		wantHour int
		wantOK   bool
	}{
		{name: "hour and minutes", saleTime: strPtr("09:15"), wantHour: 9, wantOK: true},
		{name: "with seconds", saleTime: strPtr("23:59:59"), wantHour: 23, wantOK: true},
		{name: "midnight", saleTime: strPtr("00:00"), wantHour: 0, wantOK: true},
		{name: "padded with spaces", saleTime: strPtr(" 7:30"), wantHour: 7, wantOK: true},
		{name: "suffix after the hour digits", saleTime: strPtr("09h:15"), wantHour: 9, wantOK: true},
		{name: "explicit plus sign", saleTime: strPtr("+8:00"), wantHour: 8, wantOK: true},
		{name: "hour out of range", saleTime: strPtr("24:00")},
		{name: "letters before the digits", saleTime: strPtr("h9:00")},
		{name: "sign without digits", saleTime: strPtr("-:00")},
		{name: "negative hour", saleTime: strPtr("-1:00")},
		{name: "not numeric", saleTime: strPtr("ab:cd")},
		{name: "missing separator", saleTime: strPtr("0915")},
		{name: "empty", saleTime: strPtr("")},
		{name: "absent", saleTime: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, ok := ParseSaleHour(tt.saleTime)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHour, hour)
			}
		})
	}
}

func TestAggregate_Scenario(t *testing.T) {
	notes := []domain.SalesNote{
		note(1, 100, "09:15"),
		note(2, 50, "09:45"),
		note(3, 200, "14:00"),
	}
	quantities := map[int64]float64{1: 2, 2: 3, 3: 1}

	agg := Aggregate(notes, quantities)

	assert.Equal(t, domain.HourBucket{Hour: 9, SaleCount: 2, ProductQuantity: 5, Revenue: 150}, agg.Buckets[9])
	assert.Equal(t, domain.HourBucket{Hour: 14, SaleCount: 1, ProductQuantity: 1, Revenue: 200}, agg.Buckets[14])
	assert.Equal(t, []domain.HourBucket{agg.Buckets[9]}, agg.PeakHours)
	assert.Equal(t, 3, agg.TotalSales)
	assert.Equal(t, 6.0, agg.TotalProductQty)
	assert.Equal(t, 350.0, agg.TotalRevenue)

	require.Len(t, agg.PerSaleQuantities, 3)
	assert.Equal(t, domain.PerSaleQuantity{NoteID: int64Ptr(1), SaleTime: "09:15", ProductQuantity: 2}, agg.PerSaleQuantities[0])

	for h, bucket := range agg.Buckets {
		assert.Equal(t, h, bucket.Hour)
	}
}

func TestAggregate_UnparsableTimeIsDroppedButQuantityCounts(t *testing.T) {
	notes := []domain.SalesNote{
		note(1, 100, "09:15"),
		note(2, 50, "09:45"),
		note(3, 200, "14:00"),
		{ID: int64Ptr(4), Total: 80, SaleTime: nil},
		note(5, 20, "not a time"),
	}
	quantities := map[int64]float64{1: 2, 2: 3, 3: 1, 4: 7, 5: 0.5}

	agg := Aggregate(notes, quantities)

	sum := 0
	for _, bucket := range agg.Buckets {
		sum += bucket.SaleCount
	}
	assert.Equal(t, 3, sum)
	assert.Equal(t, 3, agg.TotalSales)
	assert.Equal(t, 350.0, agg.TotalRevenue)
	assert.Len(t, agg.PerSaleQuantities, 3)
	// the quantity total covers the whole mapping
	assert.Equal(t, 13.5, agg.TotalProductQty)
}

func TestAggregate_PeakHours(t *testing.T) {
	t.Run("ties are all returned in hour order", func(t *testing.T) {
		notes := []domain.SalesNote{
			note(1, 10, "18:00"),
			note(2, 10, "08:30"),
			note(3, 10, "12:10"),
			note(4, 10, "18:45"),
			note(5, 10, "08:05"),
		}

		agg := Aggregate(notes, map[int64]float64{})

		require.Len(t, agg.PeakHours, 2)
		assert.Equal(t, 8, agg.PeakHours[0].Hour)
		assert.Equal(t, 18, agg.PeakHours[1].Hour)
		assert.Equal(t, 2, agg.PeakHours[0].SaleCount)
	})

	t.Run("no sales means no peak", func(t *testing.T) {
		agg := Aggregate(nil, nil)

		assert.NotNil(t, agg.PeakHours)
		assert.Empty(t, agg.PeakHours)
		assert.Empty(t, agg.PerSaleQuantities)
		assert.Zero(t, agg.TotalSales)
		assert.Zero(t, agg.TotalProductQty)
		assert.Zero(t, agg.TotalRevenue)
	})

	t.Run("only unparsable times means no peak", func(t *testing.T) {
		agg := Aggregate([]domain.SalesNote{{ID: int64Ptr(1), Total: 5}}, map[int64]float64{1: 4})

		assert.Empty(t, agg.PeakHours)
		assert.Equal(t, 4.0, agg.TotalProductQty)
	})
}

func TestAggregate_HourWithTrailingText(t *testing.T) {
	agg := Aggregate([]domain.SalesNote{note(1, 40, "09h:15")}, map[int64]float64{1: 2})

	assert.Equal(t, domain.HourBucket{Hour: 9, SaleCount: 1, ProductQuantity: 2, Revenue: 40}, agg.Buckets[9])
	assert.Equal(t, 1, agg.TotalSales)
}

func TestAggregate_NoteWithoutID(t *testing.T) {
	notes := []domain.SalesNote{{Total: 30, SaleTime: strPtr("10:00")}}

	agg := Aggregate(notes, map[int64]float64{})

	assert.Equal(t, domain.HourBucket{Hour: 10, SaleCount: 1, Revenue: 30}, agg.Buckets[10])
	require.Len(t, agg.PerSaleQuantities, 1)
	assert.Nil(t, agg.PerSaleQuantities[0].NoteID)
}

func TestAggregate_IsIdempotent(t *testing.T) {
	notes := []domain.SalesNote{
		note(1, 10.1, "09:15"),
		note(2, 20.2, "10:45"),
		note(3, 30.3, "10:00"),
	}
	quantities := map[int64]float64{1: 0.1, 2: 0.2, 3: 0.3, 9: 0.7}

	first := Aggregate(notes, quantities)
	second := Aggregate(notes, quantities)

	assert.Equal(t, first, second)
}
