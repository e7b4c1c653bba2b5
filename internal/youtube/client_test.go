package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMergesAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			q := r.URL.Query()
			assert.Equal(t, "gophers", q.Get("q"))
			assert.Equal(t, "viewCount", q.Get("order"))
			assert.Equal(t, "video", q.Get("type"))
			assert.NotEmpty(t, q.Get("publishedAfter"))
			w.Write([]byte(`{"items":[
				{"id":{"videoId":"low"},"snippet":{"title":"Low","channelTitle":"c1",
					"thumbnails":{"medium":{"url":"http://img/low"}}}},
				{"id":{"videoId":"high"},"snippet":{"title":"High","channelTitle":"c2",
					"thumbnails":{"medium":{"url":"http://img/high"}}}}
			]}`))
		case "/videos":
			assert.Equal(t, "low,high", r.URL.Query().Get("id"))
			w.Write([]byte(`{"items":[
				{"id":"high","statistics":{"viewCount":"500000"},"contentDetails":{"duration":"PT10M2S"}},
				{"id":"low","statistics":{"viewCount":"1200"},"contentDetails":{"duration":"PT3M"}}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.Client())
	c.apiBase = srv.URL

	videos, err := c.Search(context.Background(), "gophers")
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "high", videos[0].ID)
	assert.Equal(t, "500000", videos[0].ViewCount)
	assert.Equal(t, "500.0K views", videos[0].ViewCountText)
	assert.Equal(t, "10:02", videos[0].DurationText)

	assert.Equal(t, "low", videos[1].ID)
	assert.Equal(t, "3:00", videos[1].DurationText)
}

func TestSearchNoResults(t *testing.T) {
	statsCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/videos" {
			statsCalled = true
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.Client())
	c.apiBase = srv.URL

	videos, err := c.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.False(t, statsCalled, "statistics call is skipped when search is empty")
}

func TestSearchMissingStatsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			w.Write([]byte(`{"items":[{"id":{"videoId":"orphan"},"snippet":{"title":"Orphan"}}]}`))
			return
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.Client())
	c.apiBase = srv.URL

	videos, err := c.Search(context.Background(), "orphan")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "0", videos[0].ViewCount)
	assert.Equal(t, "PT0S", videos[0].Duration)
}

func TestSearchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.Client())
	c.apiBase = srv.URL

	_, err := c.Search(context.Background(), "anything")
	require.Error(t, err)
}
