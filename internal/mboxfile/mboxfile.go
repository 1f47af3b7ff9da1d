// Package mboxfile handles mbox files at the raw text level: splitting
// a file into message strings, separating envelope/headers/body, and
// rewriting a file in place. Structured reading goes through
// emersion/go-mbox; this package exists for the paths that must
// preserve the original bytes (header repair, status updates).
package mboxfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadMessages splits an mbox file into raw message strings, each
// starting with its "From " envelope line.
func ReadMessages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var messages []string
	var current strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "From ") && current.Len() > 0 {
			messages = append(messages, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current.Len() > 0 {
		messages = append(messages, current.String())
	}
	return messages, nil
}

// SplitEnvelope separates the "From " envelope line from the rest of a
// raw message.
func SplitEnvelope(msg string) (envelope, rest string) {
	if i := strings.Index(msg, "\n"); i != -1 {
		return msg[:i], msg[i+1:]
	}
	return msg, ""
}

// SplitBody separates the header block (including its trailing newline)
// from the body at the first blank line.
func SplitBody(rest string) (headers, body string) {
	if i := strings.Index(rest, "\n\n"); i != -1 {
		return rest[:i+1], rest[i+2:]
	}
	return rest, ""
}

// SetStatus rewrites or appends the Status header in a raw header
// block. The second return is false when the status already matches
// and nothing changed.
func SetStatus(headers, status string) (string, bool) {
	start := strings.Index(headers, "Status: ")
	if start == -1 {
		if len(headers) > 0 && headers[len(headers)-1] != '\n' {
			headers += "\n"
		}
		return headers + "Status: " + status + "\n", true
	}

	end := strings.Index(headers[start:], "\n")
	if end != -1 {
		end += start
	} else {
		end = len(headers)
	}
	current := strings.TrimSpace(headers[start+len("Status: ") : end])
	if current == status {
		return headers, false
	}
	if end < len(headers) && headers[end] == '\n' {
		end++
	}
	return headers[:start] + "Status: " + status + "\n" + headers[end:], true
}

// WriteMessages atomically replaces an mbox file with the given
// messages, staging them in a temp file in the same directory so the
// final rename cannot cross filesystems.
func WriteMessages(path string, messages []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "mailpanel-*.mbox")
	if err != nil {
		return fmt.Errorf("stage mbox rewrite: %w", err)
	}
	defer os.Remove(tmp.Name())

	for _, msg := range messages {
		if _, err := tmp.WriteString(msg); err != nil {
			tmp.Close()
			return fmt.Errorf("write staged mbox: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flush staged mbox: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace mbox: %w", err)
	}
	return nil
}
