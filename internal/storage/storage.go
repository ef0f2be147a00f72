package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chris-regnier/caldiary/internal/day"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("entry not found")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Store persists one diary entry per calendar date. Content is stored
// verbatim; Load returns exactly what the last Save wrote.
type Store interface {
	// Load returns the entry for date, or ErrNotFound.
	Load(date day.Date) (string, error)
	// Save creates or replaces the entry for date.
	Save(date day.Date, content string) error
	// Delete removes the entry for date, or returns ErrNotFound.
	Delete(date day.Date) error
	// Scan returns every date with an entry, in ascending order.
	Scan() ([]day.Date, error)
	Close() error
}

// Validate checks a save request. Blank entries are never stored; callers
// delete instead.
func Validate(date day.Date, content string) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	return nil
}

// ValidateDate rejects dates outside the supported range.
func ValidateDate(date day.Date) error {
	if !date.Valid() {
		return fmt.Errorf("%w: invalid date %s", ErrValidation, date)
	}
	return nil
}
