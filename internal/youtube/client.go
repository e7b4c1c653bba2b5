package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/video-scout/backend/internal/httpx"
)

const defaultAPIBase = "https://www.googleapis.com/youtube/v3"

// maxSearchResults caps how many videos one search returns.
const maxSearchResults = 10

// Client queries the YouTube Data API v3 for recently published videos
// ordered by view count.
type Client struct {
	apiKey  string
	client  *http.Client
	apiBase string
}

func NewClient(apiKey string, client *http.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  client,
		apiBase: defaultAPIBase,
	}
}

// Video is one merged search result: snippet fields from the search call,
// view count and duration from the statistics call.
type Video struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ChannelTitle  string `json:"channelTitle"`
	Description   string `json:"description"`
	PublishedAt   string `json:"publishedAt"`
	Thumbnail     string `json:"thumbnail"`
	ViewCount     string `json:"viewCount"`
	ViewCountText string `json:"viewCountText"`
	Duration      string `json:"duration"` // ISO-8601, e.g. "PT1H2M3S"
	DurationText  string `json:"durationText"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type statsResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Search runs the two-step search: list videos published in the last 24 hours
// matching keyword, then fetch their statistics in one batched call and merge
// by video ID. Results are sorted by view count, highest first.
func (c *Client) Search(ctx context.Context, keyword string) ([]Video, error) {
	publishedAfter := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", keyword)
	params.Set("type", "video")
	params.Set("publishedAfter", publishedAfter)
	params.Set("order", "viewCount")
	params.Set("maxResults", strconv.Itoa(maxSearchResults))
	params.Set("key", c.apiKey)

	var searchResp searchResponse
	if err := c.getJSON(ctx, "video search", c.apiBase+"/search?"+params.Encode(), &searchResp); err != nil {
		return nil, err
	}
	if len(searchResp.Items) == 0 {
		return []Video{}, nil
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		ids = append(ids, item.ID.VideoID)
	}

	statsParams := url.Values{}
	statsParams.Set("part", "statistics,contentDetails")
	statsParams.Set("id", strings.Join(ids, ","))
	statsParams.Set("key", c.apiKey)

	var statsResp statsResponse
	if err := c.getJSON(ctx, "video statistics", c.apiBase+"/videos?"+statsParams.Encode(), &statsResp); err != nil {
		return nil, err
	}

	type stats struct {
		viewCount string
		duration  string
	}
	statsByID := make(map[string]stats, len(statsResp.Items))
	for _, item := range statsResp.Items {
		statsByID[item.ID] = stats{
			viewCount: item.Statistics.ViewCount,
			duration:  item.ContentDetails.Duration,
		}
	}

	videos := make([]Video, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		st, ok := statsByID[item.ID.VideoID]
		if !ok {
			st = stats{viewCount: "0", duration: "PT0S"}
		}
		videos = append(videos, Video{
			ID:            item.ID.VideoID,
			Title:         item.Snippet.Title,
			ChannelTitle:  item.Snippet.ChannelTitle,
			Description:   item.Snippet.Description,
			PublishedAt:   item.Snippet.PublishedAt,
			Thumbnail:     item.Snippet.Thumbnails.Medium.URL,
			ViewCount:     st.viewCount,
			ViewCountText: FormatViewCount(st.viewCount),
			Duration:      st.duration,
			DurationText:  FormatDuration(st.duration),
		})
	}

	sort.SliceStable(videos, func(i, j int) bool {
		vi, _ := strconv.ParseInt(videos[i].ViewCount, 10, 64)
		vj, _ := strconv.ParseInt(videos[j].ViewCount, 10, 64)
		return vi > vj
	})
	return videos, nil
}

func (c *Client) getJSON(ctx context.Context, op, rawURL string, out any) error {
	resp, err := httpx.Do(ctx, httpx.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		return c.client.Do(req)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: upstream status %d", op, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
