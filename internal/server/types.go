package server

import "time"

// Email is one row of the mailbox listing.
type Email struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
	// Timestamp is the parsed Date used for sorting. Not exported to
	// JSON.
	Timestamp time.Time `json:"-"`
}

// HeaderEntry is one header field prepared for display: To and Cc
// carry one entry per recipient, every other field a single raw entry.
type HeaderEntry struct {
	Name    string   `json:"name"`
	Entries []string `json:"entries"`
}

// Attachment describes one attachment without its content.
type Attachment struct {
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
}

// EmailContent is the message detail view.
type EmailContent struct {
	Body        string        `json:"body"`
	BodyType    string        `json:"bodyType"`
	Headers     []HeaderEntry `json:"headers"`
	Attachments []Attachment  `json:"attachments"`
}
