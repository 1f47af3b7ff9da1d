package mailheader

import (
	"net/mail"
	"regexp"
	"strings"
)

const (
	StatusValid   = "valid"
	StatusMissing = "missing"
	StatusInvalid = "invalid"
	StatusDeleted = "deleted"
)

// ValidationResult records one finding about a message's headers.
type ValidationResult struct {
	MsgIndex int    `json:"msgIndex"`
	Field    string `json:"field"`
	Status   string `json:"status"`
	Detail   string `json:"detail,omitempty"`
}

// Headers every stored message must carry per RFC 5322.
var requiredFields = []string{"From", "Date", "Message-ID"}

var messageIDPattern = regexp.MustCompile(`^<[^<>@]+@[^<>@]+>$`)

// Validate checks a raw header block for required fields, parseable
// From/Date values, a well-formed Message-ID and the mbox deletion
// marker.
func Validate(raw string, msgIndex int) []ValidationResult {
	h := Parse(raw)

	var results []ValidationResult
	for _, name := range requiredFields {
		if !h.Has(name) {
			results = append(results, ValidationResult{
				MsgIndex: msgIndex,
				Field:    name,
				Status:   StatusMissing,
			})
		}
	}

	if from, ok := h.Get("From"); ok {
		if _, err := mail.ParseAddressList(from); err != nil {
			results = append(results, ValidationResult{
				MsgIndex: msgIndex,
				Field:    "From",
				Status:   StatusInvalid,
				Detail:   "Invalid From address format",
			})
		}
	}

	if date, ok := h.Get("Date"); ok {
		if _, err := mail.ParseDate(date); err != nil {
			results = append(results, ValidationResult{
				MsgIndex: msgIndex,
				Field:    "Date",
				Status:   StatusInvalid,
				Detail:   "Invalid Date format",
			})
		}
	}

	if msgID, ok := h.Get("Message-ID"); ok {
		if !validMessageID(msgID) {
			results = append(results, ValidationResult{
				MsgIndex: msgIndex,
				Field:    "Message-ID",
				Status:   StatusInvalid,
				Detail:   "Invalid Message-ID format",
			})
		}
	}

	if status, ok := h.Get("Status"); ok && status == "D" {
		results = append(results, ValidationResult{
			MsgIndex: msgIndex,
			Field:    "Status",
			Status:   StatusDeleted,
		})
	}

	return results
}

func validMessageID(msgID string) bool {
	msgID = strings.Trim(msgID, "<>")
	return messageIDPattern.MatchString("<" + msgID + ">")
}
