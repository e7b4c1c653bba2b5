package transcript

import (
	"context"
	"strings"
)

// Segment is one normalized unit of transcript output. Start is whole seconds
// from the beginning of the video. Duration is omitted when the upstream
// payload does not carry one.
type Segment struct {
	Text     string `json:"text"`
	Start    int    `json:"start"`
	Duration int    `json:"duration,omitempty"`
}

// Track is a caption track discovered on the platform. Depending on the
// strategy it carries either a directly fetchable URL or an opaque caption ID
// that needs an authorized lookup.
type Track struct {
	LanguageCode string
	BaseURL      string
	ID           string
}

// Resolver turns a video ID into an ordered sequence of transcript segments.
// A video without captions resolves to an empty slice, not an error.
type Resolver interface {
	Resolve(ctx context.Context, videoID string) ([]Segment, error)
	// Name returns the strategy name
	Name() string
}

// SelectTrack picks exactly one track: the first whose language code equals or
// starts with targetLang, otherwise the first track in upstream order.
func SelectTrack(tracks []Track, targetLang string) (Track, bool) {
	if len(tracks) == 0 {
		return Track{}, false
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, targetLang) {
			return t, true
		}
	}
	return tracks[0], true
}
