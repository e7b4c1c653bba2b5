package transcript

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
)

// Timed-text markup: repeated <text start="…" dur="…"> elements with
// fractional-second attributes and entity-encoded inline content.

type timedTextDoc struct {
	Entries []timedTextEntry `xml:"text"`
}

type timedTextEntry struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// parseTimedTextXML normalizes a timed-text markup payload into segments.
// Fractional start/dur values are floored to whole seconds; text content is
// entity-decoded and trimmed, and empty entries are dropped. The caption
// endpoint double-encodes entities, so a decode pass is still needed after
// XML parsing.
func parseTimedTextXML(data []byte) ([]Segment, error) {
	var doc timedTextDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		text := strings.TrimSpace(html.UnescapeString(entry.Text))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    int(entry.Start),
			Duration: int(entry.Dur),
		})
	}
	return segments, nil
}
