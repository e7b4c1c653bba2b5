package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// srtTimingRE matches the start timestamp of an SRT timing line:
// "HH:MM:SS,mmm --> HH:MM:SS,mmm". Only the start's whole-second part is
// used; the millisecond and end-time components are ignored.
var srtTimingRE = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),\d{3} --> \d{2}:\d{2}:\d{2},\d{3}`)

// parseSRT normalizes a SubRip payload into segments. Each block is an index
// line, a timing line, and one or more text lines; blocks with fewer than
// three lines or no remaining text are dropped.
func parseSRT(data []byte) []Segment {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	var segments []Segment
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		m := srtTimingRE.FindStringSubmatch(lines[1])
		if m == nil {
			continue
		}
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])

		var parts []string
		for _, line := range lines[2:] {
			line = strings.TrimSpace(line)
			if line != "" {
				parts = append(parts, line)
			}
		}
		text := strings.Join(parts, " ")
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Text:  text,
			Start: hours*3600 + minutes*60 + seconds,
		})
	}
	return segments
}
