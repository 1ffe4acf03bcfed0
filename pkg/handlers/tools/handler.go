package tools

import (
	"context"
	"io"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/handlers"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxArgumentsBytes = 64 << 10

type Catalog interface {
	List(ctx context.Context) ([]api.Tool, error)
	Invoke(ctx context.Context, name, arguments string) (string, error)
}

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.catalog.List(r.Context())
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	handlers.WriteJSON(w, r, http.StatusOK, tools)
}

// InvokeTool runs a tool with the JSON request body as its arguments.
func (h *Handler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "tool")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxArgumentsBytes))
	if err != nil {
		handlers.WriteError(w, r, errx.Validation("failed to read tool arguments"))
		return
	}

	out, err := h.catalog.Invoke(ctx, name, string(body))
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Debug().Str("tool", name).Msg("tool invoked")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, out); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("tool", name).Msg("failed to write tool output")
	}
}
