package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/video-scout/backend/internal/httpx"
)

const (
	defaultWatchBase = "https://www.youtube.com"

	// Watch pages are large; cap how much we read while scraping.
	maxWatchPageSize = 6 * 1024 * 1024

	// A realistic browser identity, without which the watch page serves a
	// bot interstitial instead of the player payload.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// captionTracksMarker precedes the embedded JSON array of caption track
// descriptors inside the watch page markup.
var captionTracksMarker = []byte(`"captionTracks":`)

// ScrapeResolver extracts caption track descriptors from the public watch
// page HTML and fetches the selected track as timed-text markup. The page
// structure is undocumented and unstable: zero matches mean zero tracks, not
// a crash.
type ScrapeResolver struct {
	client     *http.Client
	baseURL    string
	targetLang string
}

func NewScrapeResolver(client *http.Client, targetLang string) *ScrapeResolver {
	return &ScrapeResolver{
		client:     client,
		baseURL:    defaultWatchBase,
		targetLang: targetLang,
	}
}

func (r *ScrapeResolver) Name() string {
	return "scrape"
}

type scrapeTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
}

func (r *ScrapeResolver) Resolve(ctx context.Context, videoID string) ([]Segment, error) {
	page, err := r.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		return nil, err
	}

	track, ok := SelectTrack(tracks, r.targetLang)
	if !ok {
		return []Segment{}, nil
	}
	if track.BaseURL == "" {
		// Selection failure, distinct from "no captions": the descriptor
		// existed but carried no fetchable handle.
		return nil, fmt.Errorf("caption track %q has no fetch URL", track.LanguageCode)
	}

	payload, err := r.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	return parseTimedTextXML(payload)
}

func (r *ScrapeResolver) fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", r.baseURL, url.QueryEscape(videoID))

	resp, err := httpx.Do(ctx, httpx.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", browserUserAgent)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		return r.client.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, &NotFoundError{Reason: "video page unavailable"}
	case resp.StatusCode != http.StatusOK:
		return nil, upstreamError("fetch watch page", resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxWatchPageSize))
}

// extractCaptionTracks pulls the embedded captionTracks JSON array out of the
// watch page markup. A page without the marker but with player metadata is a
// video that simply has no captions; a page without player metadata at all is
// an unavailable or private video.
func extractCaptionTracks(page []byte) ([]Track, error) {
	idx := bytes.Index(page, captionTracksMarker)
	if idx < 0 {
		if !bytes.Contains(page, []byte("playabilityStatus")) {
			return nil, &NotFoundError{Reason: "video unavailable or private"}
		}
		return nil, nil
	}

	// Decode just the array; the decoder stops at its closing bracket and
	// ignores the markup that follows.
	var raw []scrapeTrack
	dec := json.NewDecoder(bytes.NewReader(page[idx+len(captionTracksMarker):]))
	if err := dec.Decode(&raw); err != nil {
		excerpt := page[idx:]
		if len(excerpt) > 256 {
			excerpt = excerpt[:256]
		}
		log.Printf("[transcript] scrape: captionTracks present but undecodable: %v (input %q)", err, excerpt)
		return nil, nil
	}

	tracks := make([]Track, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, Track{
			LanguageCode: t.LanguageCode,
			BaseURL:      t.BaseURL,
		})
	}
	return tracks, nil
}

func (r *ScrapeResolver) fetchTimedText(ctx context.Context, trackURL string) ([]byte, error) {
	resp, err := httpx.Do(ctx, httpx.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", browserUserAgent)
		return r.client.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch caption payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError("fetch caption payload", resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
}
