package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DateColumn_ShouldScanDriverValues(t *testing.T) {
	var c dateColumn

	require.NoError(t, c.Scan(time.Date(2024, 6, 10, 0, 0, 0, 0, time.FixedZone("", 0))))
	assert.Equal(t, date(2024, time.June, 10), c.Time)

	require.NoError(t, c.Scan("2024-06-11"))
	assert.Equal(t, date(2024, time.June, 11), c.Time)

	require.NoError(t, c.Scan([]byte("2024-06-12T00:00:00Z")))
	assert.Equal(t, date(2024, time.June, 12), c.Time)

	assert.Error(t, c.Scan(42))
	assert.Error(t, c.Scan("yesterday"))
}

func Test_TimeColumn_ShouldScanDriverValues(t *testing.T) {
	var c timeColumn
	want := time.Date(2024, 6, 10, 8, 15, 0, 123, time.UTC)

	require.NoError(t, c.Scan(want.Format(sqliteTimeLayout)))
	assert.True(t, want.Equal(c.Time))

	require.NoError(t, c.Scan(want))
	assert.True(t, want.Equal(c.Time))

	require.NoError(t, c.Scan(nil))
	assert.True(t, c.Time.IsZero())

	assert.Error(t, c.Scan("not a time"))
}
