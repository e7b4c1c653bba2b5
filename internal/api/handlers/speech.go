package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/video-scout/backend/internal/speech"
)

type SpeechHandler struct {
	service *speech.Service // nil when no API key is configured
}

func NewSpeechHandler(service *speech.Service) *SpeechHandler {
	return &SpeechHandler{service: service}
}

type speechRequest struct {
	Text string `json:"text"`
}

type speechResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize converts the posted text into MP3 audio, returned base64-encoded.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		jsonError(w, "text is required for speech synthesis", http.StatusBadRequest)
		return
	}
	if h.service == nil {
		jsonError(w, "speech synthesis not configured", http.StatusInternalServerError)
		return
	}

	audio, err := h.service.Synthesize(r.Context(), req.Text)
	if err != nil {
		log.Printf("[speech] synthesis failed: %v", err)
		jsonError(w, "speech synthesis failed", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, speechResponse{
		AudioContent: base64.StdEncoding.EncodeToString(audio),
	}, http.StatusOK)
}
