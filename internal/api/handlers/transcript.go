package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/video-scout/backend/internal/transcript"
)

type TranscriptHandler struct {
	resolver transcript.Resolver
}

func NewTranscriptHandler(resolver transcript.Resolver) *TranscriptHandler {
	return &TranscriptHandler{resolver: resolver}
}

type transcriptRequest struct {
	VideoID string `json:"videoId"`
}

// Fetch resolves the transcript for a video. POST takes {"videoId": "..."}
// in the body; GET takes ?videoId= as a query parameter. An empty array is a
// valid success response meaning no captions were found.
func (h *TranscriptHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var videoID string
	switch r.Method {
	case http.MethodGet:
		videoID = r.URL.Query().Get("videoId")
	default:
		var req transcriptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		videoID = req.VideoID
	}

	if videoID == "" {
		jsonError(w, "missing videoId in request body", http.StatusBadRequest)
		return
	}

	segments, err := h.resolver.Resolve(r.Context(), videoID)
	if err != nil {
		var nf *transcript.NotFoundError
		if errors.As(err, &nf) {
			jsonError(w, nf.Reason, http.StatusNotFound)
			return
		}
		log.Printf("[transcript] resolve %s failed: %v", videoID, err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if segments == nil {
		segments = []transcript.Segment{}
	}
	jsonResponse(w, segments, http.StatusOK)
}
