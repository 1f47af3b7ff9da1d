package mailheader

import (
	"fmt"
	"net/mail"
	"time"
)

// Normalize repairs a raw header block toward RFC 5322 compliance:
// missing From/Date are reported, and a missing Message-ID is both
// reported and filled in with a generated one. The rebuilt, refolded
// block is returned together with the findings.
func Normalize(raw string, msgIndex int) (string, []ValidationResult) {
	h := Parse(raw)

	var results []ValidationResult
	for _, name := range []string{"From", "Date"} {
		if !h.Has(name) {
			results = append(results, ValidationResult{
				MsgIndex: msgIndex,
				Field:    name,
				Status:   StatusMissing,
			})
		}
	}

	if !h.Has("Message-ID") {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    "Message-ID",
			Status:   StatusMissing,
		})
		h.Append("Message-ID", fmt.Sprintf("<%s@%s>", generatedID(h), "mailfix"))
	}

	return h.String(), results
}

// generatedID derives an identifier from the Date header when it
// parses (UUIDv7, so repaired messages still sort by time), falling
// back to a random UUIDv4.
func generatedID(h Headers) string {
	var timestamp time.Time
	if date, ok := h.Get("Date"); ok {
		if t, err := mail.ParseDate(date); err == nil {
			timestamp = t
		}
	}
	if timestamp.IsZero() {
		return newUUID()
	}
	return newUUIDv7(timestamp)
}
