package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-regnier/caldiary/internal/day"
)

func TestOpenStoreBackends(t *testing.T) {
	for _, backend := range []string{"markdown", "sqlite", "diskv"} {
		t.Run(backend, func(t *testing.T) {
			s, err := openStore(backend, t.TempDir())
			require.NoError(t, err)
			defer s.Close()

			d := day.New(2025, time.March, 15)
			require.NoError(t, s.Save(d, "via "+backend))
			got, err := s.Load(d)
			require.NoError(t, err)
			assert.Equal(t, "via "+backend, got)
		})
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := openStore("postgres", t.TempDir())
	assert.EqualError(t, err, "unknown storage backend: postgres")
}

func TestTodayRun(t *testing.T) {
	s := setupTestStore(t)
	d := seed(t, s, "2025-03-15", "today's thoughts")

	var buf bytes.Buffer
	require.NoError(t, todayRun(&buf, s, d))
	assert.Equal(t, "today's thoughts\n", buf.String())

	buf.Reset()
	require.NoError(t, todayRun(&buf, s, day.New(2025, time.March, 16)))
	assert.Equal(t, "No entry for 2025-03-16.\n", buf.String())
}

func TestParseDateArg(t *testing.T) {
	today := day.New(2025, time.March, 1)

	got, err := parseDateArg("yesterday", today)
	require.NoError(t, err)
	assert.Equal(t, day.New(2025, time.February, 28), got)

	got, err = parseDateArg("Tomorrow", today)
	require.NoError(t, err)
	assert.Equal(t, day.New(2025, time.March, 2), got)

	got, err = parseDateArg("2024-02-29", today)
	require.NoError(t, err)
	assert.Equal(t, day.New(2024, time.February, 29), got)

	_, err = parseDateArg("2025-02-30", today)
	assert.Error(t, err)

	_, err = parseDateArg("0000-01-01", today)
	assert.Error(t, err)
}
