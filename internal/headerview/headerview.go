// Package headerview decides how a header value is presented in the
// viewer: recipient-list headers are split into one entry per
// recipient, everything else passes through as a single entry.
package headerview

import (
	"strings"

	"github.com/emurenMRz/mailpanel/internal/addrlist"
)

// Recipient-valued header fields. Matching is case-insensitive.
var recipientFields = map[string]bool{
	"to": true,
	"cc": true,
}

// IsRecipientList reports whether a header field holds a comma-separated
// recipient list.
func IsRecipientList(name string) bool {
	return recipientFields[strings.ToLower(name)]
}

// Entries returns the display entries for one header. To and Cc values
// are split into individual recipients; any other field yields exactly
// one entry holding the raw value unchanged, even when it is empty.
func Entries(name, value string) []string {
	if IsRecipientList(name) {
		return addrlist.Split(value)
	}
	return []string{value}
}
