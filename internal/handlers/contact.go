package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/recyclink/recyclink/internal/models"
)

// HandleContact validates a pickup request and answers with a
// personalized confirmation. A provider failure is absorbed: the pickup
// was accepted either way, so the client still gets a confirmation.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var request models.ContactRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	request.Name = strings.TrimSpace(request.Name)
	if request.Name == "" ||
		strings.TrimSpace(request.Phone) == "" ||
		strings.TrimSpace(request.Email) == "" ||
		strings.TrimSpace(request.Address) == "" {
		h.writeError(w, msgFillAllFields, http.StatusBadRequest)
		return
	}

	// Fixed processing delay so the submit button's pending state is
	// visible, matching the widget's designed timing.
	if h.contactDelay > 0 {
		select {
		case <-time.After(h.contactDelay):
		case <-r.Context().Done():
			return
		}
	}

	message, err := h.assistant.ConfirmationMessage(r.Context(), request.Name)
	if err != nil {
		slog.Error("Failed to generate confirmation message", "err", err)
		message = fmt.Sprintf("Thank you, %s! Your pickup request has been received. A Kabaadiwala partner will call you shortly.", request.Name)
	}

	h.writeJSON(w, map[string]string{"message": message})
}
