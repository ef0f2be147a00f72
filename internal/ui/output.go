package ui

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chris-regnier/caldiary/internal/day"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Bytes   int    `json:"bytes"`
	Preview string `json:"preview"`
}

// Summarize builds the list summary of one entry.
func Summarize(d day.Date, content string) EntrySummary {
	return EntrySummary{
		Date:    d.String(),
		Weekday: d.Weekday().String(),
		Bytes:   len(content),
		Preview: Preview(content, 60),
	}
}

// EntryJSON is the JSON representation of a whole entry.
type EntryJSON struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	Date    string `json:"date"`
	Deleted bool   `json:"deleted"`
}

// Preview returns the first non-blank line of content, cut to width cells.
func Preview(content string, width int) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return runewidth.Truncate(line, width, "…")
	}
	return ""
}
