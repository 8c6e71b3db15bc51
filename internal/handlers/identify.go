package handlers

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

// maxImageBytes caps uploads at 10MB.
const maxImageBytes = 10 * 1024 * 1024

// dataURIRe pulls the MIME type and payload out of a data URI.
var dataURIRe = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,(.+)$`)

// HandleIdentify classifies an uploaded scrap photo. It accepts either a
// multipart upload (field "image") or a JSON body with a base64 payload.
func (h *Handler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var (
		image    []byte
		mimeType string
		ok       bool
	)

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		image, mimeType, ok = h.readJSONImage(w, r)
	} else {
		image, mimeType, ok = h.readMultipartImage(w, r)
	}
	if !ok {
		return
	}

	if !strings.HasPrefix(mimeType, "image/") {
		h.writeError(w, "Only image uploads are supported", http.StatusBadRequest)
		return
	}

	result, err := h.assistant.IdentifyScrap(r.Context(), image, mimeType)
	if err != nil {
		slog.Error("Failed to identify scrap", "err", err, "provider", h.assistant.Name())
		h.writeError(w, msgCouldNotIdentify, http.StatusBadGateway)
		return
	}

	h.writeJSON(w, result)
}

func (h *Handler) readJSONImage(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	// Bound the body before buffering it: base64 inflates the image by
	// 4/3, so twice the image cap leaves room for the JSON framing.
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxImageBytes)

	var request struct {
		ImageData string `json:"image_data"`
		MimeType  string `json:"mime_type"`
	}
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	if request.ImageData == "" {
		h.writeError(w, "image_data is required", http.StatusBadRequest)
		return nil, "", false
	}

	payload := request.ImageData
	mimeType := request.MimeType
	if m := dataURIRe.FindStringSubmatch(payload); m != nil {
		mimeType = m[1]
		payload = m[2]
	}
	if mimeType == "" {
		h.writeError(w, "mime_type is required for raw base64 payloads", http.StatusBadRequest)
		return nil, "", false
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		h.writeError(w, "Invalid base64 image data", http.StatusBadRequest)
		return nil, "", false
	}
	if len(image) > maxImageBytes {
		h.writeError(w, "Image too large (max 10MB)", http.StatusBadRequest)
		return nil, "", false
	}
	return image, mimeType, true
}

func (h *Handler) readMultipartImage(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, "Failed to read image: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read image contents: "+err.Error(), http.StatusInternalServerError)
		return nil, "", false
	}
	if len(image) > maxImageBytes {
		h.writeError(w, "Image too large (max 10MB)", http.StatusBadRequest)
		return nil, "", false
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(image)
	}
	return image, mimeType, true
}
