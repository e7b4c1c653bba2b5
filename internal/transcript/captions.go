package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/video-scout/backend/internal/httpx"
)

const (
	defaultCaptionsAPIBase = "https://www.googleapis.com/youtube/v3"
	defaultTokenURL        = "https://oauth2.googleapis.com/token"
)

// OAuthCredentials are the long-lived secrets exchanged for a short-lived
// bearer token on every request. The token is never persisted and never
// cached across requests.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// CaptionsResolver lists caption tracks through the authorized captions API.
// Track results carry opaque caption IDs that need a further authorized
// download, delivered as SubRip text.
type CaptionsResolver struct {
	client     *http.Client
	apiBase    string
	tokenURL   string
	creds      OAuthCredentials
	targetLang string
}

func NewCaptionsResolver(client *http.Client, creds OAuthCredentials, targetLang string) *CaptionsResolver {
	return &CaptionsResolver{
		client:     client,
		apiBase:    defaultCaptionsAPIBase,
		tokenURL:   defaultTokenURL,
		creds:      creds,
		targetLang: targetLang,
	}
}

func (r *CaptionsResolver) Name() string {
	return "captions"
}

func (r *CaptionsResolver) Resolve(ctx context.Context, videoID string) ([]Segment, error) {
	token, err := r.refreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	tracks, err := r.listCaptions(ctx, videoID, token)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		// Under the authorized strategy an empty listing is authoritative:
		// the video exists and has no captions.
		return nil, &NotFoundError{Reason: "no captions available for this video"}
	}

	track, _ := SelectTrack(tracks, r.targetLang)
	if track.ID == "" {
		return nil, fmt.Errorf("caption track %q has no caption ID", track.LanguageCode)
	}

	payload, err := r.downloadCaption(ctx, track.ID, token)
	if err != nil {
		return nil, err
	}
	return parseSRT(payload), nil
}

// refreshAccessToken exchanges the refresh credential for a bearer token.
// One round trip, no retry; a response without access_token is a hard
// failure carrying the upstream error payload for diagnosis.
func (r *CaptionsResolver) refreshAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("client_id", r.creds.ClientID)
	form.Set("client_secret", r.creds.ClientSecret)
	form.Set("refresh_token", r.creds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("token exchange: read response: %w", err)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token exchange failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return tokenResp.AccessToken, nil
}

func (r *CaptionsResolver) listCaptions(ctx context.Context, videoID, token string) ([]Track, error) {
	listURL := fmt.Sprintf("%s/captions?part=snippet&videoId=%s", r.apiBase, url.QueryEscape(videoID))

	resp, err := r.authorizedGet(ctx, listURL, token)
	if err != nil {
		return nil, fmt.Errorf("list captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Reason: "video not found"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError("list captions", resp)
	}

	var listResp struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Language string `json:"language"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("decode captions listing: %w", err)
	}

	tracks := make([]Track, 0, len(listResp.Items))
	for _, item := range listResp.Items {
		tracks = append(tracks, Track{
			LanguageCode: item.Snippet.Language,
			ID:           item.ID,
		})
	}
	return tracks, nil
}

func (r *CaptionsResolver) downloadCaption(ctx context.Context, captionID, token string) ([]byte, error) {
	downloadURL := fmt.Sprintf("%s/captions/%s?tfmt=srt", r.apiBase, url.PathEscape(captionID))

	resp, err := r.authorizedGet(ctx, downloadURL, token)
	if err != nil {
		return nil, fmt.Errorf("download caption: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError("download caption", resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
}

func (r *CaptionsResolver) authorizedGet(ctx context.Context, rawURL, token string) (*http.Response, error) {
	return httpx.Do(ctx, httpx.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return r.client.Do(req)
	})
}
