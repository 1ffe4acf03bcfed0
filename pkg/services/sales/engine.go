package sales

import (
	"context"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type NotesSource interface {
	FetchNotes(ctx context.Context, q domain.SalesQuery) (*domain.NotesPage, error)
}

type ItemSource interface {
	FetchNoteItems(ctx context.Context, noteID int64) ([]domain.NoteLineItem, error)
}

// Source is the ERP API as seen by the engine.
type Source interface {
	NotesSource
	ItemSource
}

type Settings struct {
	// ItemTimeout bounds a single item lookup; a timeout counts as quantity 0.
	ItemTimeout time.Duration
	// NotesTimeout bounds the notes page request.
	NotesTimeout time.Duration
	// DefaultPageSize is used when a query does not carry a page size.
	DefaultPageSize int
}

func DefaultSettings() Settings {
	return Settings{
		ItemTimeout:     10 * time.Second,
		NotesTimeout:    30 * time.Second,
		DefaultPageSize: domain.DefaultPageSize,
	}
}

// Engine computes the hourly sales details of one request.
type Engine struct {
	source   Source
	settings Settings
}

func NewEngine(source Source, settings Settings) *Engine {
	return &Engine{
		source:   source,
		settings: settings,
	}
}

func (e *Engine) Details(ctx context.Context, q domain.SalesQuery) (domain.SalesDetails, error) {
	logger := zerolog.Ctx(ctx)

	page, err := e.fetchNotes(ctx, q)
	if err != nil {
		return domain.SalesDetails{}, err
	}

	ids := distinctNoteIDs(page.Notes)
	fetcher := NewQuantityFetcher(e.source, q.ProductID, e.settings.ItemTimeout)

	start := time.Now()
	quantities := RunBounded(ctx, ids, MaxConcurrentItemLookups, fetcher.Quantity)
	logger.Debug().
		Int("notes", len(page.Notes)).
		Int("lookups", len(ids)).
		Dur("elapsed", time.Since(start)).
		Msg("item quantities resolved")

	return Assemble(page, Aggregate(page.Notes, quantities)), nil
}

func (e *Engine) fetchNotes(ctx context.Context, q domain.SalesQuery) (*domain.NotesPage, error) {
	if e.settings.NotesTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.settings.NotesTimeout)
		defer cancel()
	}

	page, err := e.source.FetchNotes(ctx, q)
	if err != nil {
		return nil, err
	}
	if page == nil {
		page = &domain.NotesPage{}
	}
	return page, nil
}

// distinctNoteIDs lists the note ids in first-seen order. Notes without an id
// are not looked up.
func distinctNoteIDs(notes []domain.SalesNote) []int64 {
	seen := make(map[int64]struct{}, len(notes))
	ids := make([]int64, 0, len(notes))
	for _, note := range notes {
		if note.ID == nil {
			continue
		}
		if _, ok := seen[*note.ID]; ok {
			continue
		}
		seen[*note.ID] = struct{}{}
		ids = append(ids, *note.ID)
	}
	return ids
}
