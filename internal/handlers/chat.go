package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/recyclink/recyclink/internal/assist"
	"github.com/recyclink/recyclink/internal/models"
)

// HandleChat answers one chat widget message. The conversation is
// created lazily on the first message and reused for every later one
// carrying the same session ID. Provider failures come back as the
// apologetic reply, never as a broken bubble.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(request.Message)
	if message == "" {
		h.writeError(w, msgEmptyMessage, http.StatusBadRequest)
		return
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conv, err := h.sessions.GetOrCreate(sessionID, func() (assist.Conversation, error) {
		return h.assistant.StartConversation(r.Context())
	})
	if err != nil {
		slog.Error("Failed to start conversation", "err", err, "session_id", sessionID)
		h.writeJSON(w, models.ChatResponse{SessionID: sessionID, Reply: apologeticReply})
		return
	}

	reply, err := conv.Send(r.Context(), message)
	if err != nil {
		slog.Error("Failed to send chat message", "err", err, "session_id", sessionID)
		reply = apologeticReply
	}

	h.writeJSON(w, models.ChatResponse{SessionID: sessionID, Reply: reply})
}
