package transcript

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"github.com/video-scout/backend/internal/httpx"
)

const defaultTimedTextBase = "https://www.youtube.com"

// maxPayloadSize bounds how much of any caption payload we read.
const maxPayloadSize = 2 * 1024 * 1024

var (
	trackTagRE = regexp.MustCompile(`<track\b[^>]*>`)
	langCodeRE = regexp.MustCompile(`lang_code="([^"]+)"`)
	langAttrRE = regexp.MustCompile(`\slang="([^"]+)"`)
)

// TimedTextResolver lists caption tracks through the unauthenticated
// timedtext endpoint and fetches the selected track as structured json3
// events.
type TimedTextResolver struct {
	client     *http.Client
	baseURL    string
	targetLang string
}

func NewTimedTextResolver(client *http.Client, targetLang string) *TimedTextResolver {
	return &TimedTextResolver{
		client:     client,
		baseURL:    defaultTimedTextBase,
		targetLang: targetLang,
	}
}

func (r *TimedTextResolver) Name() string {
	return "timedtext"
}

func (r *TimedTextResolver) Resolve(ctx context.Context, videoID string) ([]Segment, error) {
	tracks, err := r.listTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, ok := SelectTrack(tracks, r.targetLang)
	if !ok {
		// No tracks is a valid outcome, not a failure.
		return []Segment{}, nil
	}

	payload, err := r.fetchTrack(ctx, videoID, track.LanguageCode)
	if err != nil {
		return nil, err
	}
	return parseJSON3(payload)
}

// listTracks fetches the track-list document and extracts a language code
// from every <track> declaration, preferring lang_code over lang. A document
// without track tags yields zero tracks rather than an error.
func (r *TimedTextResolver) listTracks(ctx context.Context, videoID string) ([]Track, error) {
	listURL := fmt.Sprintf("%s/api/timedtext?type=list&v=%s", r.baseURL, url.QueryEscape(videoID))

	body, err := r.get(ctx, "list caption tracks", listURL)
	if err != nil {
		return nil, err
	}

	var tracks []Track
	for _, tag := range trackTagRE.FindAllString(string(body), -1) {
		var lang string
		if m := langCodeRE.FindStringSubmatch(tag); m != nil {
			lang = m[1]
		} else if m := langAttrRE.FindStringSubmatch(tag); m != nil {
			lang = m[1]
		}
		if lang == "" {
			continue
		}
		tracks = append(tracks, Track{LanguageCode: lang})
	}
	return tracks, nil
}

func (r *TimedTextResolver) fetchTrack(ctx context.Context, videoID, lang string) ([]byte, error) {
	fetchURL := fmt.Sprintf("%s/api/timedtext?lang=%s&v=%s&fmt=json3",
		r.baseURL, url.QueryEscape(lang), url.QueryEscape(videoID))
	return r.get(ctx, "fetch caption payload", fetchURL)
}

func (r *TimedTextResolver) get(ctx context.Context, op, rawURL string) ([]byte, error) {
	resp, err := httpx.Do(ctx, httpx.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		return r.client.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(op, resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
}
