package transcript

import (
	"encoding/json"
	"fmt"
)

// json3 is the structured caption format served by the timedtext endpoint
// with fmt=json3: an ordered list of events, each carrying zero or more text
// fragments and a start offset in milliseconds.

type json3Doc struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	StartMs    int64      `json:"tStartMs"`
	DurationMs int64      `json:"dDurationMs"`
	Segs       []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
	Text string `json:"text"`
}

// parseJSON3 normalizes a json3 payload into segments. Events without
// fragments, or whose concatenated text is empty, are dropped. Millisecond
// offsets are floored to whole seconds.
func parseJSON3(data []byte) ([]Segment, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json3 payload: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Events))
	for _, ev := range doc.Events {
		if len(ev.Segs) == 0 {
			continue
		}
		var text string
		for _, s := range ev.Segs {
			if s.UTF8 != "" {
				text += s.UTF8
			} else {
				text += s.Text
			}
		}
		if text == "" {
			continue
		}
		seg := Segment{
			Text:  text,
			Start: int(ev.StartMs / 1000),
		}
		if ev.DurationMs > 0 {
			seg.Duration = int(ev.DurationMs / 1000)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
