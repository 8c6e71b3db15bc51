package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/recyclink/recyclink/internal/assist"
	"github.com/recyclink/recyclink/internal/storage"
)

// User-facing strings. Validation and provider failures never leak the
// underlying error to the page; these are the whole vocabulary.
const (
	msgFillAllFields     = "Please fill out all the fields."
	msgEmptyMessage      = "Message cannot be empty."
	msgCouldNotIdentify  = "Could not identify the item. Please try a clearer photo."
	msgCouldNotCalculate = "Could not calculate the value. Please try again."
	apologeticReply      = "Sorry, I'm having a little trouble right now. Please try again in a moment."
)

type Handler struct {
	assistant    assist.Assistant
	sessions     *storage.ChatStore
	contactDelay time.Duration
}

func New(assistant assist.Assistant, sessions *storage.ChatStore, contactDelay time.Duration) *Handler {
	return &Handler{
		assistant:    assistant,
		sessions:     sessions,
		contactDelay: contactDelay,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("Unable to encode JSON error", "err", err)
	}
}
