package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Day_ShouldUseCalendarDateOfLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, time.June, 10, 1, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), Day(ts))
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Month(ts))
	assert.Equal(t, "2024-06-10", FormatDate(Day(ts)))
}

func Test_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}
