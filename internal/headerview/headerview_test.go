package headerview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emurenMRz/mailpanel/internal/headerview"
)

func TestIsRecipientList(t *testing.T) {
	assert.True(t, headerview.IsRecipientList("To"))
	assert.True(t, headerview.IsRecipientList("to"))
	assert.True(t, headerview.IsRecipientList("CC"))
	assert.True(t, headerview.IsRecipientList("Cc"))
	assert.False(t, headerview.IsRecipientList("From"))
	assert.False(t, headerview.IsRecipientList("Bcc"))
	assert.False(t, headerview.IsRecipientList("Subject"))
	assert.False(t, headerview.IsRecipientList(""))
}

func TestEntries(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		value    string
		expected []string
	}{
		{
			name:     "to header is split",
			header:   "To",
			value:    `"Doe, Jane" <jane@example.com>, Team <team@example.com>`,
			expected: []string{`"Doe, Jane" <jane@example.com>`, "Team <team@example.com>"},
		},
		{
			name:     "cc header is split",
			header:   "Cc",
			value:    "a@example.com, b@example.com",
			expected: []string{"a@example.com", "b@example.com"},
		},
		{
			name:     "blank recipient header yields no entries",
			header:   "To",
			value:    "  ",
			expected: nil,
		},
		{
			name:     "subject passes through with commas intact",
			header:   "Subject",
			value:    "one, two, three",
			expected: []string{"one, two, three"},
		},
		{
			name:     "from passes through unchanged",
			header:   "From",
			value:    "a@example.com, b@example.com",
			expected: []string{"a@example.com, b@example.com"},
		},
		{
			name:     "empty non-recipient value keeps its single entry",
			header:   "X-Mailer",
			value:    "",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, headerview.Entries(tt.header, tt.value))
		})
	}
}
