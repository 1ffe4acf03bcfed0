package sales

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchNotes(ctx context.Context, q domain.SalesQuery) (*domain.NotesPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotesPage), args.Error(1)
}

func (m *mockSource) FetchNoteItems(ctx context.Context, noteID int64) ([]domain.NoteLineItem, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteLineItem), args.Error(1)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func note(noteID int64, total float64, saleTime string) domain.SalesNote {
	return domain.SalesNote{ID: int64Ptr(noteID), Total: total, SaleTime: strPtr(saleTime)}
}
