package handlers

import (
	"log"
	"net/http"

	"github.com/video-scout/backend/internal/youtube"
)

type SearchHandler struct {
	client *youtube.Client // nil when no API key is configured
}

func NewSearchHandler(client *youtube.Client) *SearchHandler {
	return &SearchHandler{client: client}
}

// Search returns recently published videos matching ?q=, ordered by view
// count descending.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		jsonError(w, "missing q query parameter", http.StatusBadRequest)
		return
	}
	if h.client == nil {
		jsonError(w, "video search not configured", http.StatusInternalServerError)
		return
	}

	videos, err := h.client.Search(r.Context(), keyword)
	if err != nil {
		log.Printf("[search] query %q failed: %v", keyword, err)
		jsonError(w, "video search failed", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, videos, http.StatusOK)
}
