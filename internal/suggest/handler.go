package suggest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/shivansh-2003/color-UI/internal/media"
	"github.com/shivansh-2003/color-UI/internal/palette"
	"github.com/shivansh-2003/color-UI/internal/preview"
	"github.com/shivansh-2003/color-UI/internal/vision"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var errUploadTooLarge = errors.New("upload exceeds size limit")

// Handler exposes the color suggestion endpoint.
type Handler struct {
	Service Service
	Scratch *media.ScratchStore
	// Credential presence, checked before any work happens.
	GeminiConfigured bool
	GroqConfigured   bool
}

type response struct {
	Result
	ColorAnalysis     map[string]Analysis               `json:"color_analysis"`
	UIRecommendations []palette.ComponentRecommendation `json:"ui_recommendations"`
	AdditionalNotes   []string                          `json:"additional_notes"`
}

// SuggestColors handles POST /api/suggest-colors.
func (h Handler) SuggestColors(w http.ResponseWriter, r *http.Request) {
	requestID := "req_" + uuid.NewString()
	log.Printf("request %s: processing color suggestion request", requestID)

	if !h.GeminiConfigured {
		writeDetail(w, http.StatusInternalServerError, "GEMINI_API_KEY not configured")
		return
	}
	if !h.GroqConfigured {
		writeDetail(w, http.StatusInternalServerError, "GROQ_API_KEY not configured")
		return
	}

	if err := r.ParseMultipartForm(vision.MaxImageBytes + (1 << 20)); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("could not parse form: %v", err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "image is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf(
			"Unsupported file type: %s. Supported types: %s",
			contentType, strings.Join(allowedImageTypes, ", ")))
		return
	}

	description := r.FormValue("description")
	template := preview.ParseTemplate(r.FormValue("template"))
	withPreview, _ := strconv.ParseBool(r.FormValue("include_preview"))

	tempPath, err := h.saveUpload(header.Filename, file)
	if err != nil {
		if errors.Is(err, errUploadTooLarge) {
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf(
				"File too large. Maximum size: %d bytes", vision.MaxImageBytes))
			return
		}
		h.writeInternalError(w, requestID, err)
		return
	}
	defer h.Scratch.Remove(tempPath)

	data, err := os.ReadFile(tempPath)
	if err != nil {
		h.writeInternalError(w, requestID, fmt.Errorf("read upload: %w", err))
		return
	}
	log.Printf("request %s: image saved, processing with AI models", requestID)

	result := h.Service.Suggest(r.Context(), data, description, template, withPreview)
	log.Printf("request %s: processing complete, enhancing results with analysis", requestID)

	writeJSON(w, http.StatusOK, response{
		Result:            result,
		ColorAnalysis:     BuildAnalysis(result.OrganizedPalette, result.DescriptionBased),
		UIRecommendations: result.OrganizedPalette.UIComponents.Recommendations(),
		AdditionalNotes:   AdditionalNotes(),
	})
}

func (h Handler) saveUpload(filename string, file io.Reader) (string, error) {
	if h.Scratch == nil {
		return "", fmt.Errorf("scratch store not configured")
	}
	limited := io.LimitReader(file, vision.MaxImageBytes+1)
	path, err := h.Scratch.Save(filename, limited)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		h.Scratch.Remove(path)
		return "", fmt.Errorf("stat upload: %w", err)
	}
	if info.Size() > vision.MaxImageBytes {
		h.Scratch.Remove(path)
		return "", errUploadTooLarge
	}
	return path, nil
}

func (h Handler) writeInternalError(w http.ResponseWriter, requestID string, err error) {
	details := fmt.Sprintf("%v\n%s", err, debug.Stack())
	log.Printf("request %s: error processing request: %v", requestID, err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":      err.Error(),
		"details":    details,
		"request_id": requestID,
	})
}

func isAllowedImageType(contentType string) bool {
	for _, allowed := range allowedImageTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// writeDetail mirrors the plain validation/configuration error shape,
// distinct from the structured internal error body.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
