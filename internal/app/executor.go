package app

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/logger"
	"github.com/chris-regnier/caldiary/internal/storage"
)

// Storage is the subset of a storage backend the executor needs.
type Storage interface {
	Load(date day.Date) (string, error)
	Save(date day.Date, content string) error
	Delete(date day.Date) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Executor runs Commands. It never touches the Model; every outcome is
// reported as a message for Update.
type Executor struct {
	store     Storage
	clipboard Clipboard
}

// NewExecutor creates an executor. clip may be nil when the system
// clipboard is disabled.
func NewExecutor(store Storage, clip Clipboard) *Executor {
	return &Executor{store: store, clipboard: clip}
}

// Execute runs cmd and returns the resulting message, or nil when the
// command produces none.
func (e *Executor) Execute(cmd Command) Msg {
	switch cmd := cmd.(type) {
	case LoadDiary:
		logger.Debug("loading entry", "date", cmd.Date.String())
		content, err := e.store.Load(cmd.Date)
		if err != nil {
			notFound := errors.Is(err, storage.ErrNotFound)
			if !notFound {
				logger.Warn("load failed", "date", cmd.Date.String(), "error", err)
			}
			return LoadDiaryFailed{Date: cmd.Date, Err: err, NotFound: notFound}
		}
		return LoadDiarySuccess{Date: cmd.Date, Content: content}

	case SaveDiary:
		logger.Debug("saving entry", "date", cmd.Date.String(), "bytes", len(cmd.Content))
		if err := e.store.Save(cmd.Date, cmd.Content); err != nil {
			logger.Warn("save failed", "date", cmd.Date.String(), "error", err)
			return SaveDiaryFailed{Date: cmd.Date, Err: err}
		}
		return SaveDiarySuccess{Date: cmd.Date, Content: cmd.Content}

	case DeleteDiary:
		logger.Debug("deleting entry", "date", cmd.Date.String())
		if err := e.store.Delete(cmd.Date); err != nil && !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("delete failed", "date", cmd.Date.String(), "error", err)
			return DeleteDiaryFailed{Date: cmd.Date, Err: err}
		}
		return DeleteDiarySuccess{Date: cmd.Date}

	case CopyToClipboard:
		if e.clipboard == nil {
			return nil
		}
		if err := e.clipboard.WriteAll(cmd.Text); err != nil {
			logger.Warn("clipboard write failed", "error", err)
		}
		return nil
	}
	return nil
}

// Dispatch applies msg and then runs every resulting command to completion,
// feeding each follow-up message back through Update.
func Dispatch(m *Model, e *Executor, msg Msg) {
	for msg != nil {
		cmd := Update(m, msg)
		if cmd == nil {
			return
		}
		msg = e.Execute(cmd)
	}
}
