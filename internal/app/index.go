package app

import (
	"slices"
	"time"

	"github.com/chris-regnier/caldiary/internal/day"
)

// DiaryIndex is the set of dates known to have a saved entry.
type DiaryIndex struct {
	dates map[day.Date]struct{}
}

// NewDiaryIndex builds an index from the dates found in storage.
func NewDiaryIndex(dates []day.Date) DiaryIndex {
	idx := DiaryIndex{dates: make(map[day.Date]struct{}, len(dates))}
	for _, d := range dates {
		idx.dates[d] = struct{}{}
	}
	return idx
}

// Has reports whether date has an entry.
func (i *DiaryIndex) Has(date day.Date) bool {
	_, ok := i.dates[date]
	return ok
}

// Add marks date as having an entry.
func (i *DiaryIndex) Add(date day.Date) {
	if i.dates == nil {
		i.dates = make(map[day.Date]struct{})
	}
	i.dates[date] = struct{}{}
}

// Remove unmarks date.
func (i *DiaryIndex) Remove(date day.Date) {
	delete(i.dates, date)
}

// Len returns the number of indexed dates.
func (i *DiaryIndex) Len() int {
	return len(i.dates)
}

// Dates returns all indexed dates in ascending order.
func (i *DiaryIndex) Dates() []day.Date {
	out := make([]day.Date, 0, len(i.dates))
	for d := range i.dates {
		out = append(out, d)
	}
	slices.SortFunc(out, day.Date.Compare)
	return out
}

// CountInMonth returns how many entries fall in the given month.
func (i *DiaryIndex) CountInMonth(year int, month time.Month) int {
	n := 0
	for d := range i.dates {
		if d.Year == year && d.Month == month {
			n++
		}
	}
	return n
}

// Streak counts consecutive days with an entry, walking back from today.
// It is zero when today has no entry.
func (i *DiaryIndex) Streak(today day.Date) int {
	n := 0
	for d, ok := today, true; ok && i.Has(d); d, ok = d.AddDays(-1) {
		n++
	}
	return n
}
