package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/rs/zerolog"
)

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

// WriteError maps err to its status code. Unexpected errors are logged in full
// and answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())
	appErr := errx.From(err)

	resp := api.ErrorResponse{Error: appErr.Message}

	var upstream *errx.UpstreamError
	if errors.As(appErr, &upstream) {
		resp.Status = upstream.StatusCode
		resp.Details = &upstream.Body
	}

	switch appErr.Kind {
	case errx.KindUnexpected:
		logger.Error().Err(err).Msg("unexpected error")
	case errx.KindUpstream:
		logger.Warn().Err(err).Msg("upstream request failed")
	default:
		logger.Debug().Err(err).Str("kind", string(appErr.Kind)).Msg("request rejected")
	}

	WriteJSON(w, r, appErr.Status, resp)
}
