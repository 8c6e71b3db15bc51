package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/recyclink/recyclink/internal/models"
)

// HandleCalculate estimates the resale value of a scrap lot. Stateless
// per submission; nothing is kept between calls.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var request models.CalculateRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	request.ScrapType = strings.TrimSpace(request.ScrapType)
	request.Weight = strings.TrimSpace(request.Weight)
	request.Unit = strings.TrimSpace(request.Unit)
	if request.ScrapType == "" || request.Weight == "" || request.Unit == "" {
		h.writeError(w, msgFillAllFields, http.StatusBadRequest)
		return
	}

	result, err := h.assistant.EstimateValue(r.Context(), request.ScrapType, request.Weight, request.Unit)
	if err != nil {
		slog.Error("Failed to estimate value", "err", err, "scrap_type", request.ScrapType)
		h.writeError(w, msgCouldNotCalculate, http.StatusBadGateway)
		return
	}

	h.writeJSON(w, result)
}
