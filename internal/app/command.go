package app

import "github.com/chris-regnier/caldiary/internal/day"

// Command is a side effect requested by Update and run by an Executor.
type Command interface {
	command()
}

// LoadDiary reads the entry for Date.
type LoadDiary struct{ Date day.Date }

// SaveDiary writes Content as the entry for Date.
type SaveDiary struct {
	Date    day.Date
	Content string
}

// DeleteDiary removes the entry for Date.
type DeleteDiary struct{ Date day.Date }

// CopyToClipboard mirrors Text to the system clipboard.
type CopyToClipboard struct{ Text string }

func (LoadDiary) command()       {}
func (SaveDiary) command()       {}
func (DeleteDiary) command()     {}
func (CopyToClipboard) command() {}
