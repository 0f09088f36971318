package churchboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("not a time"))

	got := parseTimestamp("2026-12-24T19:00:00")
	require.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 19, got.Hour())

	// A trailing Z on a zone-less layout is tolerated.
	got = parseTimestamp("2026-12-24T19:00:00Z")
	require.NotNil(t, got)
	assert.Equal(t, 19, got.Hour())

	got = parseTimestamp("2026-12-24")
	require.NotNil(t, got)
	assert.Equal(t, time.December, got.Month())
}

func TestParseDate(t *testing.T) {
	assert.Nil(t, parseDate(""))

	got := parseDate("2026-10-03T14:30:00")
	require.NotNil(t, got)
	assert.Equal(t, "2026-10-03", got.Format("2006-01-02"))
	assert.Equal(t, 0, got.Hour())
}

func TestParseClock(t *testing.T) {
	assert.Equal(t, "10:30", parseClock("10:30"))
	assert.Equal(t, "", parseClock(""))
	assert.Equal(t, "", parseClock("25:99"))
	assert.Equal(t, "", parseClock("morning"))
}

func TestIsoHelpers(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01T12:00:00Z", isoTime(ts))

	assert.Nil(t, isoTimePtr(nil))
	assert.Equal(t, "2026-03-01T12:00:00Z", *isoTimePtr(&ts))

	assert.Nil(t, isoDatePtr(nil))
	assert.Equal(t, "2026-03-01", *isoDatePtr(&ts))
}
