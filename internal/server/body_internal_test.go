package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1048576, "5.0 MB"},
		{3 * 1073741824, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatSize(tt.size), "size %d", tt.size)
	}
}

func TestParseDate(t *testing.T) {
	ts := parseDate("Mon, 23 Jun 2025 10:00:00 +0900")
	assert.Equal(t, 2025, ts.Year())
	assert.Equal(t, time.June, ts.Month())

	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("not a date").IsZero())

	// RFC 3339 fallback for producers that write ISO timestamps.
	assert.False(t, parseDate("2025-06-23T10:00:00+09:00").IsZero())
}
