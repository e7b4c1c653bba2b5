package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchMissingQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/videos/search", nil)
	rec := httptest.NewRecorder()
	NewSearchHandler(nil).Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchNotConfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/videos/search?q=go", nil)
	rec := httptest.NewRecorder()
	NewSearchHandler(nil).Search(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}
