package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testQuery(t *testing.T) domain.SalesQuery {
	t.Helper()
	q, err := ParseQuery(QueryParams{ProductID: "42", StartDate: "2025-01-01", EndDate: "2025-01-31"}, 0)
	require.NoError(t, err)
	return q
}

func itemLine(productID, qty float64) domain.NoteLineItem {
	return domain.NoteLineItem{Type: "ITEM", Cancelled: false, ProductID: productID, Quantity: qty}
}

func TestEngine_Details(t *testing.T) {
	// Given
	q := testQuery(t)
	source := new(mockSource)
	source.On("FetchNotes", mock.Anything, q).Return(&domain.NotesPage{
		Notes: []domain.SalesNote{
			note(1, 100, "09:15"),
			note(2, 50, "09:45"),
			note(3, 200, "14:00"),
			note(3, 200, "14:00"),
			{Total: 10, SaleTime: strPtr("20:00")},
		},
	}, nil)
	source.On("FetchNoteItems", mock.Anything, int64(1)).Return([]domain.NoteLineItem{itemLine(42, 2), itemLine(7, 9)}, nil)
	source.On("FetchNoteItems", mock.Anything, int64(2)).Return(nil, errors.New("status 500"))
	source.On("FetchNoteItems", mock.Anything, int64(3)).Return([]domain.NoteLineItem{itemLine(42, 1)}, nil)

	// When
	details, err := NewEngine(source, DefaultSettings()).Details(context.Background(), q)

	// Then
	require.NoError(t, err)
	source.AssertExpectations(t)
	source.AssertNumberOfCalls(t, "FetchNoteItems", 3)

	assert.Equal(t, domain.HourBucket{Hour: 9, SaleCount: 2, ProductQuantity: 2, Revenue: 150}, details.Buckets[9])
	assert.Equal(t, domain.HourBucket{Hour: 14, SaleCount: 2, ProductQuantity: 2, Revenue: 400}, details.Buckets[14])
	assert.Equal(t, domain.HourBucket{Hour: 20, SaleCount: 1, Revenue: 10}, details.Buckets[20])
	assert.Equal(t, 5, details.TotalSales)
	assert.Equal(t, 3.0, details.TotalProductQty)
	assert.Equal(t, 560.0, details.TotalRevenue)
	require.Len(t, details.PeakHours, 2)
	assert.Equal(t, 9, details.PeakHours[0].Hour)
	assert.Equal(t, 14, details.PeakHours[1].Hour)

	assert.Len(t, details.Items, 5)
	assert.Equal(t, domain.Pagination{Page: 0, Size: 5, TotalElements: 5, TotalPages: 1, First: true, Last: true}, details.Pagination)
}

func TestEngine_Details_EchoesUpstreamPagination(t *testing.T) {
	q := testQuery(t)
	number, size, pages := 2, 10, 7
	total := int64(64)
	first, last := false, false

	source := new(mockSource)
	source.On("FetchNotes", mock.Anything, q).Return(&domain.NotesPage{
		Notes:         []domain.SalesNote{},
		Number:        &number,
		Size:          &size,
		TotalElements: &total,
		TotalPages:    &pages,
		First:         &first,
		Last:          &last,
	}, nil)

	details, err := NewEngine(source, DefaultSettings()).Details(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, domain.Pagination{Page: 2, Size: 10, TotalElements: 64, TotalPages: 7}, details.Pagination)
	assert.NotNil(t, details.Items)
	assert.Empty(t, details.PeakHours)
	source.AssertNotCalled(t, "FetchNoteItems", mock.Anything, mock.Anything)
}

func TestEngine_Details_UpstreamFailure(t *testing.T) {
	q := testQuery(t)
	source := new(mockSource)
	source.On("FetchNotes", mock.Anything, q).Return(nil, errx.WrapUpstream(503, "maintenance"))

	_, err := NewEngine(source, DefaultSettings()).Details(context.Background(), q)

	require.Error(t, err)
	assert.True(t, errx.IsKind(err, errx.KindUpstream))
	var upstream *errx.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 503, upstream.StatusCode)
	assert.Equal(t, "maintenance", upstream.Body)
	source.AssertNotCalled(t, "FetchNoteItems", mock.Anything, mock.Anything)
}

func TestEngine_Details_ItemTimeoutIsAbsorbed(t *testing.T) {
	q := testQuery(t)
	notes := &domain.NotesPage{Notes: []domain.SalesNote{note(1, 10, "08:00")}}

	source := struct {
		NotesSource
		ItemSource
	}{
		NotesSource: staticNotes{page: notes},
		ItemSource:  blockingItems{},
	}
	settings := DefaultSettings()
	settings.ItemTimeout = 10 * time.Millisecond

	details, err := NewEngine(source, settings).Details(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, domain.HourBucket{Hour: 8, SaleCount: 1, Revenue: 10}, details.Buckets[8])
	assert.Zero(t, details.TotalProductQty)
}

type staticNotes struct {
	page *domain.NotesPage
}

func (s staticNotes) FetchNotes(context.Context, domain.SalesQuery) (*domain.NotesPage, error) {
	return s.page, nil
}

func TestDistinctNoteIDs(t *testing.T) {
	notes := []domain.SalesNote{
		note(3, 0, ""),
		note(1, 0, ""),
		{},
		note(3, 0, ""),
		note(2, 0, ""),
	}

	assert.Equal(t, []int64{3, 1, 2}, distinctNoteIDs(notes))
	assert.Empty(t, distinctNoteIDs(nil))
}
