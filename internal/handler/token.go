package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/moodlog/moodlog/internal/handler/dto"
	"github.com/moodlog/moodlog/internal/token"
)

// TokenHandler handles the standalone token-issuing endpoint.
// Issued tokens are not consulted by any other route.
type TokenHandler struct {
	issuer *token.Issuer
	logger *slog.Logger
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(issuer *token.Issuer, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		issuer: issuer,
		logger: logger,
	}
}

// Issue handles POST /jwt.
// Any caller-supplied email is accepted as-is; there is no existence check
// against the user store and nothing is persisted.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.MissingField(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	signed, err := h.issuer.Issue(req.Email)
	if err != nil {
		h.logger.Error("token_issue_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: signed})
}
