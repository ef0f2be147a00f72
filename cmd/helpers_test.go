package cmd

import (
	"testing"

	"github.com/fatih/color"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
	"github.com/chris-regnier/caldiary/internal/storage/markdown"
)

func setupTestStore(t *testing.T) storage.Store {
	t.Helper()
	color.NoColor = true
	s, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s storage.Store, date string, content string) day.Date {
	t.Helper()
	d, err := day.Parse(date)
	if err != nil {
		t.Fatalf("parsing %s: %v", date, err)
	}
	if err := s.Save(d, content); err != nil {
		t.Fatalf("saving %s: %v", date, err)
	}
	return d
}
