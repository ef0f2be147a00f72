package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-regnier/caldiary/internal/ui"
)

func TestListNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s, "2025-03-01", "first of the month")
	seed(t, s, "2025-03-15", "# Ides\nbeware")
	seed(t, s, "2024-12-31", "new year's eve")

	var buf bytes.Buffer
	require.NoError(t, listRun(&buf, s, "", false))
	out := buf.String()

	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "PREVIEW")
	i15 := strings.Index(out, "2025-03-15")
	i01 := strings.Index(out, "2025-03-01")
	i31 := strings.Index(out, "2024-12-31")
	require.True(t, i15 >= 0 && i01 >= 0 && i31 >= 0, out)
	assert.Less(t, i15, i01)
	assert.Less(t, i01, i31)

	assert.Contains(t, out, "Sat")
	assert.Contains(t, out, "# Ides")
	assert.NotContains(t, out, "beware")
}

func TestListMonthFilter(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s, "2025-03-15", "march")
	seed(t, s, "2025-04-01", "april")

	var buf bytes.Buffer
	require.NoError(t, listRun(&buf, s, "2025-04", false))
	assert.Contains(t, buf.String(), "2025-04-01")
	assert.NotContains(t, buf.String(), "2025-03-15")
}

func TestListEmpty(t *testing.T) {
	s := setupTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, listRun(&buf, s, "1999-01", false))
	assert.Equal(t, "No entries found.\n", buf.String())
}

func TestListInvalidMonth(t *testing.T) {
	s := setupTestStore(t)
	err := listRun(&bytes.Buffer{}, s, "March", false)
	assert.ErrorContains(t, err, "invalid month")
}

func TestListJSON(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s, "2025-03-14", "older")
	seed(t, s, "2025-03-15", "newer")

	var buf bytes.Buffer
	require.NoError(t, listRun(&buf, s, "", true))

	var got []ui.EntrySummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-15", got[0].Date)
	assert.Equal(t, "newer", got[0].Preview)
	assert.Equal(t, "Friday", got[1].Weekday)
}

func TestListJSONEmpty(t *testing.T) {
	s := setupTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, listRun(&buf, s, "", true))
	assert.JSONEq(t, "[]", buf.String())
}
