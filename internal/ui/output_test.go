package ui

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-regnier/caldiary/internal/day"
)

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello", Preview("\n\n  hello  \nworld", 50))
	assert.Equal(t, "", Preview("   \n", 50))
	assert.Equal(t, "abcd…", Preview("abcdefghij", 5))
}

func TestFormatJSONSummaries(t *testing.T) {
	d := day.New(2025, time.March, 15)

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, []EntrySummary{Summarize(d, "# Ides\nbeware")}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-15", got[0]["date"])
	assert.Equal(t, "Saturday", got[0]["weekday"])
	assert.Equal(t, float64(13), got[0]["bytes"])
	assert.Equal(t, "# Ides", got[0]["preview"])
}
