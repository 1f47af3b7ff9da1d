package mailheader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emurenMRz/mailpanel/internal/mailheader"
)

const sampleHeaders = "From: alice@example.com\n" +
	"To: bob@example.com,\n" +
	" carol@example.com\n" +
	"Subject: hello\n" +
	"Date: Mon, 23 Jun 2025 10:00:00 +0900\n" +
	"Message-ID: <abc@example.com>\n"

func TestParseKeepsWireOrder(t *testing.T) {
	h := mailheader.Parse(sampleHeaders)

	var names []string
	for _, f := range h.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"From", "To", "Subject", "Date", "Message-ID"}, names)
}

func TestParseUnfoldsContinuationLines(t *testing.T) {
	h := mailheader.Parse(sampleHeaders)

	to, ok := h.Get("To")
	require.True(t, ok)
	assert.Equal(t, "bob@example.com, carol@example.com", to)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	h := mailheader.Parse(sampleHeaders)

	subject, ok := h.Get("SUBJECT")
	require.True(t, ok)
	assert.Equal(t, "hello", subject)

	_, ok = h.Get("X-Missing")
	assert.False(t, ok)
}

func TestParseSkipsInvalidLines(t *testing.T) {
	h := mailheader.Parse("garbage without colon\nFrom: a@example.com\n")

	assert.Len(t, h.Fields(), 1)
	assert.True(t, h.Has("From"))
}

func TestParseIgnoresFoldAfterInvalidLine(t *testing.T) {
	// A continuation line after a non-header line has no field to
	// attach to and is dropped.
	h := mailheader.Parse("garbage\n\tcontinuation\nFrom: a@example.com\n")

	assert.Len(t, h.Fields(), 1)
	from, _ := h.Get("From")
	assert.Equal(t, "a@example.com", from)
}

func TestStringRoundTrip(t *testing.T) {
	h := mailheader.Parse(sampleHeaders)
	rebuilt := h.String()

	assert.True(t, strings.HasPrefix(rebuilt, "From: alice@example.com\n"))
	assert.Contains(t, rebuilt, "To: bob@example.com,\n\tcarol@example.com\n")

	// Reparsing the rebuilt block yields the same unfolded values.
	again := mailheader.Parse(rebuilt)
	to, _ := again.Get("To")
	assert.Equal(t, "bob@example.com, carol@example.com", to)
}

func TestAppend(t *testing.T) {
	var h mailheader.Headers
	h.Append("Status", "RO")

	assert.True(t, h.Has("status"))
	v, _ := h.Get("Status")
	assert.Equal(t, "RO", v)
}
