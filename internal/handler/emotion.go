package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodlog/moodlog/internal/handler/dto"
	"github.com/moodlog/moodlog/internal/service"
)

// EmotionHandler handles HTTP requests for emotion journal operations.
type EmotionHandler struct {
	svc    *service.JournalService
	logger *slog.Logger
}

// NewEmotionHandler creates a new EmotionHandler.
func NewEmotionHandler(svc *service.JournalService, logger *slog.Logger) *EmotionHandler {
	return &EmotionHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/emotions?email=.
func (h *EmotionHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email required")
		return
	}

	emotions, err := h.svc.ListEmotions(r.Context(), email)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEmotionListResponse(emotions))
}

// Create handles POST /api/emotions.
func (h *EmotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.MissingField(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	emotion, err := h.svc.CreateEmotion(r.Context(), service.CreateEmotionInput{
		Email:           req.Email,
		Text:            req.Text,
		DetectedEmotion: req.DetectedEmotion,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("emotion_created",
		"emotion_id", emotion.ID,
		"user_id", emotion.UserID,
	)

	writeJSON(w, http.StatusCreated, dto.ToEmotionResponse(emotion))
}

// DeleteOne handles DELETE /api/emotions/{id}.
// Deleting an ID that does not exist is still a success; the response
// reports how many rows were removed.
func (h *EmotionHandler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.svc.DeleteEmotion(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("emotion_deleted", "emotion_id", id, "deleted", deleted)

	writeJSON(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}

// DeleteAll handles DELETE /api/emotions?email=.
func (h *EmotionHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email required")
		return
	}

	deleted, err := h.svc.DeleteAllEmotions(r.Context(), email)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("emotions_cleared", "deleted", deleted)

	writeJSON(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
