package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-regnier/caldiary/internal/calendar"
	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/editor"
	"github.com/chris-regnier/caldiary/internal/storage"
)

var testToday = day.New(2025, time.March, 15)

type memStore struct {
	entries map[day.Date]string
	fail    error
	calls   []string
}

func newMemStore() *memStore {
	return &memStore{entries: map[day.Date]string{}}
}

func (s *memStore) Load(date day.Date) (string, error) {
	s.calls = append(s.calls, "load "+date.String())
	if s.fail != nil {
		return "", s.fail
	}
	c, ok := s.entries[date]
	if !ok {
		return "", storage.ErrNotFound
	}
	return c, nil
}

func (s *memStore) Save(date day.Date, content string) error {
	s.calls = append(s.calls, "save "+date.String())
	if s.fail != nil {
		return s.fail
	}
	s.entries[date] = content
	return nil
}

func (s *memStore) Delete(date day.Date) error {
	s.calls = append(s.calls, "delete "+date.String())
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.entries[date]; !ok {
		return storage.ErrNotFound
	}
	delete(s.entries, date)
	return nil
}

type memClipboard struct{ text string }

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type harness struct {
	m     *Model
	store *memStore
	clip  *memClipboard
	exec  *Executor
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	store := newMemStore()
	clip := &memClipboard{}
	opts.Today = func() day.Date { return testToday }
	h := &harness{store: store, clip: clip, exec: NewExecutor(store, clip)}
	h.m = NewModel(nil, opts)
	return h
}

func (h *harness) seed(date day.Date, content string) {
	h.store.entries[date] = content
	h.m.Index.Add(date)
}

// keys feeds a sequence of key names through Interpret and Dispatch.
func (h *harness) keys(names ...string) {
	for _, name := range names {
		if msg := Interpret(h.m, keyMsg(name)); msg != nil {
			Dispatch(h.m, h.exec, msg)
		}
	}
}

// typeText feeds every rune of s as its own key press.
func (h *harness) typeText(s string) {
	for _, r := range s {
		h.keys(string(r))
	}
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ", "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func TestNewModelStartsOnCalendarToday(t *testing.T) {
	h := newHarness(t, Options{})
	assert.Equal(t, ScreenCalendar, h.m.Screen)
	assert.Equal(t, testToday, h.m.Calendar.SelectedDate)
	assert.Equal(t, 2025, h.m.Calendar.CurrentYear)
	assert.Equal(t, time.March, h.m.Calendar.CurrentMonth)
}

func TestUnknownKeyYieldsNoMessage(t *testing.T) {
	h := newHarness(t, Options{})
	assert.Nil(t, Interpret(h.m, keyMsg("f1")))
	assert.Nil(t, Interpret(h.m, keyMsg("z")))

	h.keys("enter")
	assert.Nil(t, Interpret(h.m, keyMsg("f1")))
	assert.Nil(t, Interpret(h.m, keyMsg("Z")))
}

func TestUnknownMessageLeavesModelUnchanged(t *testing.T) {
	h := newHarness(t, Options{})
	before := *h.m
	assert.Nil(t, Update(h.m, struct{ Foo int }{1}))
	assert.Equal(t, before.Calendar, h.m.Calendar)
	assert.Equal(t, before.Screen, h.m.Screen)
}

func TestCalendarNavigation(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("l", "l", "j")
	assert.Equal(t, day.New(2025, time.March, 24), h.m.Calendar.SelectedDate)
	h.keys("h", "k")
	assert.Equal(t, day.New(2025, time.March, 16), h.m.Calendar.SelectedDate)
	h.keys("left", "up", "right", "down")
	assert.Equal(t, day.New(2025, time.March, 16), h.m.Calendar.SelectedDate)

	h.keys(" ", "n", "n", "N")
	assert.Equal(t, calendar.Space, h.m.Calendar.Submode)
	assert.Equal(t, day.New(2026, time.May, 16), h.m.Calendar.SelectedDate)
	h.keys("p", "P", "esc")
	assert.Equal(t, calendar.NoSubmode, h.m.Calendar.Submode)
	assert.Equal(t, day.New(2025, time.April, 16), h.m.Calendar.SelectedDate)

	h.keys("t")
	assert.Equal(t, testToday, h.m.Calendar.SelectedDate)
}

func TestCalendarSpaceIgnoresMovementKeys(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys(" ")
	assert.Nil(t, Interpret(h.m, keyMsg("h")))
}

func TestSelectDateLoadsEntry(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "dear diary\nsecond line")
	h.keys("enter")

	assert.Equal(t, ScreenEditor, h.m.Screen)
	assert.Equal(t, testToday, h.m.Editor.Date)
	assert.Equal(t, "dear diary\nsecond line", h.m.Editor.GetContent())
	assert.False(t, h.m.Editor.Modified)
	assert.Equal(t, []string{"load 2025-03-15"}, h.store.calls)
}

func TestSelectDateWithoutEntryOpensEmptyDocument(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter")
	assert.Equal(t, ScreenEditor, h.m.Screen)
	assert.Equal(t, "", h.m.Editor.GetContent())
	assert.False(t, h.m.ShowError, "a missing entry is not an error")
}

func TestLoadFailureRaisesError(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.fail = fmt.Errorf("%w: disk on fire", storage.ErrStorage)
	h.keys("enter")

	assert.True(t, h.m.ShowError)
	assert.Contains(t, h.m.Err, "disk on fire")
	assert.Equal(t, "", h.m.Editor.GetContent())

	// The popup swallows everything but esc.
	assert.Nil(t, Interpret(h.m, keyMsg("i")))
	h.keys("i")
	assert.Equal(t, editor.Normal, h.m.Editor.Mode)
	h.keys("esc")
	assert.False(t, h.m.ShowError)
	assert.Empty(t, h.m.Err)
}

func TestStaleLoadResultIsIgnored(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter")
	Update(h.m, LoadDiarySuccess{Date: day.New(2020, time.January, 1), Content: "old"})
	assert.Equal(t, "", h.m.Editor.GetContent())
}

func TestTypeAndSave(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i")
	h.typeText("hello")
	h.keys("enter")
	h.typeText("world")
	h.keys("esc")
	require.True(t, h.m.Editor.Modified)

	h.keys(" ", "w")
	assert.Equal(t, "hello\nworld", h.store.entries[testToday])
	assert.False(t, h.m.Editor.Modified)
	assert.True(t, h.m.Index.Has(testToday))
	assert.Equal(t, editor.NoSubmode, h.m.Editor.Submode)
}

func TestInsertModeTypesCommandLetters(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i")
	h.typeText("q x")
	assert.Equal(t, "q x", h.m.Editor.GetContent())
	assert.False(t, h.m.Quitting)
}

func TestInsertMultiRuneKeyEvent(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i")
	h.keys("pasted")
	assert.Equal(t, "pasted", h.m.Editor.GetContent())
}

func TestSaveFailureKeepsModified(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i", "x", "esc")
	h.store.fail = errors.New("read-only")
	h.keys(" ", "w")

	assert.True(t, h.m.ShowError)
	assert.True(t, h.m.Editor.Modified)
	assert.False(t, h.m.Index.Has(testToday))
}

func TestEscFromEditorSavesAndReturns(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i", "a", "esc", "esc")

	assert.Equal(t, ScreenCalendar, h.m.Screen)
	assert.Equal(t, "a", h.store.entries[testToday])
	assert.True(t, h.m.Index.Has(testToday))
}

func TestEscWithoutChangesDoesNotSave(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "esc")
	assert.Equal(t, ScreenCalendar, h.m.Screen)
	assert.Equal(t, []string{"load 2025-03-15"}, h.store.calls)
}

func TestReopenAfterFailedSaveKeepsWork(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.fail = errors.New("read-only")
	h.keys("enter")
	h.keys("esc") // dismiss load error
	h.keys("i", "w", "i", "p", "esc", "esc")
	require.True(t, h.m.ShowError)
	h.keys("esc")
	require.Equal(t, ScreenCalendar, h.m.Screen)

	h.keys("enter")
	assert.Equal(t, "wip", h.m.Editor.GetContent())
	assert.True(t, h.m.Editor.Modified)
}

func TestSavingBlankDeletesEntry(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "gone soon")
	h.keys("enter", "x", "d")
	require.Equal(t, "", h.m.Editor.GetContent())
	h.keys(" ", "w")

	_, ok := h.store.entries[testToday]
	assert.False(t, ok)
	assert.False(t, h.m.Index.Has(testToday))
	assert.False(t, h.m.Editor.Modified)
}

func TestSavingBlankWithoutEntryIsNoop(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "o", "esc")
	require.True(t, h.m.Editor.Modified)
	h.keys(" ", "w")
	assert.False(t, h.m.Editor.Modified)
	assert.Equal(t, []string{"load 2025-03-15"}, h.store.calls)
}

func TestQuitRefusedWhenModified(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i", "a", "esc", " ", "q")
	assert.False(t, h.m.Quitting)
	assert.True(t, h.m.ShowError)

	h.keys("esc", " ", "Q")
	assert.True(t, h.m.Quitting)
	assert.Empty(t, h.store.entries)
}

func TestQuitWhenClean(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", " ", "q")
	assert.True(t, h.m.Quitting)
}

func TestSaveAndQuit(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i", "a", "esc", " ", "x")
	assert.True(t, h.m.Quitting)
	assert.Equal(t, "a", h.store.entries[testToday])
}

func TestSaveAndQuitStaysOnFailure(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i", "a", "esc")
	h.store.fail = errors.New("nope")
	h.keys(" ", "x")
	assert.False(t, h.m.Quitting)
	assert.True(t, h.m.ShowError)

	// A later successful save must not quit.
	h.store.fail = nil
	h.keys("esc", " ", "w")
	assert.False(t, h.m.Quitting)
}

func TestCalendarQuit(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("q")
	assert.True(t, h.m.Quitting)

	h = newHarness(t, Options{})
	h.keys("ctrl+c")
	assert.True(t, h.m.Quitting)
}

func TestCalendarQuitRefusesUnsavedWork(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i", "x", "esc")
	h.store.fail = errors.New("read-only")
	h.keys("esc") // save fails
	require.True(t, h.m.ShowError)
	h.keys("esc")
	require.Equal(t, ScreenCalendar, h.m.Screen)

	h.keys("q")
	assert.False(t, h.m.Quitting)
	assert.True(t, h.m.ShowError)
	assert.Contains(t, h.m.Err, "unsaved changes in 2025-03-15")
	assert.True(t, h.m.Editor.Modified)

	// Once the work is saved, q quits again.
	h.store.fail = nil
	h.keys("esc", "enter", " ", "w", "esc", "q")
	assert.True(t, h.m.Quitting)
	assert.Equal(t, "x", h.store.entries[testToday])
}

func TestCalendarDeleteConfirm(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "entry")

	h.keys("D")
	require.True(t, h.m.ConfirmDelete)
	h.keys("n")
	assert.False(t, h.m.ConfirmDelete)
	assert.True(t, h.m.Index.Has(testToday))

	h.keys("D", "y")
	assert.False(t, h.m.ConfirmDelete)
	assert.False(t, h.m.Index.Has(testToday))
	assert.Empty(t, h.store.entries)
}

func TestCalendarDeleteWithoutEntryDoesNothing(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("D")
	assert.False(t, h.m.ConfirmDelete)
}

func TestGotoSubmodeExitsAfterJump(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "one\ntwo\nthree")
	h.keys("enter", "g", "e")
	assert.Equal(t, 2, h.m.Editor.CursorLine)
	assert.Equal(t, editor.NoSubmode, h.m.Editor.Submode)

	h.keys("g", "l")
	assert.Equal(t, 5, h.m.Editor.CursorCol)
	h.keys("g", "h")
	assert.Equal(t, 0, h.m.Editor.CursorCol)
	h.keys("g", "g")
	assert.Equal(t, 0, h.m.Editor.CursorLine)

	h.keys("g", "esc")
	assert.Equal(t, editor.NoSubmode, h.m.Editor.Submode)
	assert.Equal(t, ScreenEditor, h.m.Screen, "esc in a submode does not leave the editor")
}

func TestSearchFlow(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "cat dog\ndog cat")
	h.keys("enter", "/")
	require.Equal(t, editor.Search, h.m.Editor.Submode)
	h.typeText("dog")
	h.keys("enter")

	assert.Equal(t, editor.NoSubmode, h.m.Editor.Submode)
	assert.Len(t, h.m.Editor.SearchMatches, 2)
	assert.Equal(t, 0, h.m.Editor.CursorLine)
	assert.Equal(t, 4, h.m.Editor.CursorCol)

	h.keys("n")
	assert.Equal(t, 1, h.m.Editor.CursorLine)
	assert.Equal(t, 0, h.m.Editor.CursorCol)
	h.keys("n")
	assert.Equal(t, 0, h.m.Editor.CursorLine, "search wraps")
	h.keys("N")
	assert.Equal(t, 1, h.m.Editor.CursorLine)
}

func TestSearchTypesSpace(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "a b")
	h.keys("enter", "/", "a", " ", "b")
	assert.Equal(t, "a b", h.m.Editor.SearchPattern)
	assert.Len(t, h.m.Editor.SearchMatches, 1)
}

func TestUndoRedoThroughKeys(t *testing.T) {
	h := newHarness(t, Options{})
	h.keys("enter", "i")
	h.typeText("abc")
	h.keys("esc")
	h.keys("u")
	assert.Equal(t, "", h.m.Editor.GetContent())
	assert.False(t, h.m.Editor.Modified)
	h.keys("U")
	assert.Equal(t, "abc", h.m.Editor.GetContent())
	assert.True(t, h.m.Editor.Modified)
}

func TestYankMirrorsToSystemClipboard(t *testing.T) {
	h := newHarness(t, Options{SystemClipboard: true})
	h.seed(testToday, "first\nsecond")
	h.keys("enter", "y")
	assert.Equal(t, "first\n", h.clip.text)
	assert.Equal(t, "first\n", h.m.Editor.Clipboard)

	h.keys("j", "p")
	assert.Equal(t, "first\nsecond\nfirst", h.m.Editor.GetContent())
}

func TestYankWithoutSystemClipboard(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "first")
	h.keys("enter", "y")
	assert.Empty(t, h.clip.text)
	assert.Equal(t, "first\n", h.m.Editor.Clipboard)
}

func TestClipboardSurvivesDateChange(t *testing.T) {
	h := newHarness(t, Options{})
	h.seed(testToday, "carry me")
	h.keys("enter", "y", "esc", "l", "enter", "P")
	assert.Equal(t, day.New(2025, time.March, 16), h.m.Editor.Date)
	assert.Equal(t, "carry me\n", h.m.Editor.GetContent())
}

func TestHelpKeysFollowContext(t *testing.T) {
	h := newHarness(t, Options{})
	assert.NotEmpty(t, h.m.HelpKeys())
	h.keys(" ")
	assert.Equal(t, "next month", h.m.HelpKeys()[0].Help().Desc)
	h.keys("esc", "enter", " ")
	assert.Equal(t, "save", h.m.HelpKeys()[0].Help().Desc)
}

func TestDiaryIndex(t *testing.T) {
	a := day.New(2025, time.March, 1)
	b := day.New(2025, time.March, 20)
	c := day.New(2025, time.April, 2)
	idx := NewDiaryIndex([]day.Date{c, a})
	idx.Add(b)
	idx.Add(b)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []day.Date{a, b, c}, idx.Dates())
	assert.Equal(t, 2, idx.CountInMonth(2025, time.March))

	idx.Remove(a)
	assert.False(t, idx.Has(a))
	assert.Equal(t, 1, idx.CountInMonth(2025, time.March))

	var zero DiaryIndex
	zero.Add(a)
	assert.True(t, zero.Has(a))
}

func TestDiaryIndexStreak(t *testing.T) {
	idx := NewDiaryIndex([]day.Date{
		day.New(2025, time.February, 27),
		day.New(2025, time.February, 28),
		day.New(2025, time.March, 1),
		day.New(2025, time.March, 3),
	})

	assert.Equal(t, 3, idx.Streak(day.New(2025, time.March, 1)))
	assert.Equal(t, 1, idx.Streak(day.New(2025, time.March, 3)))
	assert.Equal(t, 0, idx.Streak(day.New(2025, time.March, 2)))

	first := NewDiaryIndex([]day.Date{day.MinDate})
	assert.Equal(t, 1, first.Streak(day.MinDate))
}

func TestExecuteDeleteMissingIsSuccess(t *testing.T) {
	exec := NewExecutor(newMemStore(), nil)
	msg := exec.Execute(DeleteDiary{Date: testToday})
	assert.Equal(t, DeleteDiarySuccess{Date: testToday}, msg)
	assert.Nil(t, exec.Execute(CopyToClipboard{Text: "x"}))
}
