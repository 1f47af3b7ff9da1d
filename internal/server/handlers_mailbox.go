package server

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/mail"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/emersion/go-imap/utf7"
	"github.com/emersion/go-mbox"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/emurenMRz/mailpanel/internal/headerview"
	"github.com/emurenMRz/mailpanel/internal/mailheader"
	"github.com/emurenMRz/mailpanel/internal/mboxfile"
)

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

// mboxPath resolves a UTF-8 mailbox name to its on-disk path. Files on
// disk are IMAP-UTF7 encoded.
func (s *Server) mboxPath(name string) (string, error) {
	encoded, err := utf7.Encoding.NewEncoder().String(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.cfg.Mailboxes.Path, encoded), nil
}

func (s *Server) handleMailboxes(w http.ResponseWriter, r *http.Request) {
	files, err := os.ReadDir(s.cfg.Mailboxes.Path)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.cfg.Mailboxes.Path).Msg("read mailbox directory")
		http.Error(w, "Failed to read directory", http.StatusInternalServerError)
		return
	}

	var mailboxes []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		decoded, err := utf7.Encoding.NewDecoder().String(file.Name())
		if err != nil {
			s.log.Warn().Err(err).Str("file", file.Name()).Msg("decode mailbox name")
			continue
		}
		mailboxes = append(mailboxes, decoded)
	}

	s.writeJSON(w, mailboxes)
}

func (s *Server) handleListEmails(w http.ResponseWriter, r *http.Request) {
	boxName := chi.URLParam(r, "box")
	path, err := s.mboxPath(boxName)
	if err != nil {
		http.Error(w, "Invalid mailbox name", http.StatusBadRequest)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	decoder := &mime.WordDecoder{CharsetReader: charsetReader}

	var emails []Email
	reader := mbox.NewReader(f)
	for i := 0; ; i++ {
		mr, err := reader.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Warn().Err(err).Str("mailbox", boxName).Int("msg", i).Msg("read message")
			continue
		}

		msg, err := mail.ReadMessage(mr)
		if err != nil {
			s.log.Warn().Err(err).Str("mailbox", boxName).Int("msg", i).Msg("parse message headers")
			continue
		}

		header := msg.Header
		status := header.Get("Status")
		if status == "D" {
			continue
		}
		if status == "" {
			// No Status header means the message is unread.
			status = "N"
		}

		subject := header.Get("Subject")
		if decoded, err := decoder.DecodeHeader(subject); err == nil {
			subject = decoded
		}

		dateStr := header.Get("Date")
		emails = append(emails, Email{
			ID:        i,
			From:      decodeAddressList(header.Get("From"), decoder),
			Date:      dateStr,
			Subject:   subject,
			Status:    status,
			Timestamp: parseDate(dateStr),
		})
	}

	// Sort by Timestamp descending (newest first). Zero timestamps go
	// last.
	sort.SliceStable(emails, func(a, b int) bool {
		ta := emails[a].Timestamp
		tb := emails[b].Timestamp
		if ta.Equal(tb) {
			return emails[a].ID < emails[b].ID
		}
		if ta.IsZero() {
			return false
		}
		if tb.IsZero() {
			return true
		}
		return ta.After(tb)
	})

	s.writeJSON(w, emails)
}

func (s *Server) handleEmailContent(w http.ResponseWriter, r *http.Request) {
	boxName := chi.URLParam(r, "box")
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid email ID", http.StatusBadRequest)
		return
	}
	path, err := s.mboxPath(boxName)
	if err != nil {
		http.Error(w, "Invalid mailbox name", http.StatusBadRequest)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	raw, ok := s.messageAt(w, r, f, boxName, id)
	if !ok {
		return
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		s.log.Warn().Err(err).Str("mailbox", boxName).Int("msg", id).Msg("parse message")
		http.Error(w, "Failed to parse message", http.StatusInternalServerError)
		return
	}

	content := s.parseBody(msg)
	content.Headers = headerEntries(raw)
	s.writeJSON(w, content)
}

// messageAt reads the raw bytes of the id-th message. It writes the
// HTTP error itself and returns ok=false when the message cannot be
// delivered.
func (s *Server) messageAt(w http.ResponseWriter, r *http.Request, f *os.File, boxName string, id int) ([]byte, bool) {
	reader := mbox.NewReader(f)
	for i := 0; ; i++ {
		mr, err := reader.NextMessage()
		if err == io.EOF {
			http.NotFound(w, r)
			return nil, false
		}
		if err != nil {
			s.log.Error().Err(err).Str("mailbox", boxName).Int("msg", i).Msg("read message")
			http.Error(w, "Error reading mbox", http.StatusInternalServerError)
			return nil, false
		}
		if i != id {
			continue
		}
		raw, err := io.ReadAll(mr)
		if err != nil {
			s.log.Error().Err(err).Str("mailbox", boxName).Int("msg", i).Msg("read message body")
			http.Error(w, "Error reading mbox", http.StatusInternalServerError)
			return nil, false
		}
		return raw, true
	}
}

// headerEntries builds the ordered header pane from the raw message
// text: wire order preserved, To/Cc split into individual recipients.
func headerEntries(raw []byte) []HeaderEntry {
	headersText, _ := mboxfile.SplitBody(string(raw))
	fields := mailheader.Parse(headersText).Fields()

	entries := make([]HeaderEntry, 0, len(fields))
	for _, f := range fields {
		entries = append(entries, HeaderEntry{
			Name:    f.Name,
			Entries: headerview.Entries(f.Name, f.Value()),
		})
	}
	return entries
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	s.updateStatus(w, r, "RO")
}

func (s *Server) handleDeleteEmail(w http.ResponseWriter, r *http.Request) {
	s.updateStatus(w, r, "D")
}

// updateStatus rewrites the Status header of one message and replaces
// the mbox file atomically.
func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request, status string) {
	boxName := chi.URLParam(r, "box")
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid email ID", http.StatusBadRequest)
		return
	}
	path, err := s.mboxPath(boxName)
	if err != nil {
		http.Error(w, "Invalid mailbox name", http.StatusBadRequest)
		return
	}

	messages, err := mboxfile.ReadMessages(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if id < 0 || id >= len(messages) {
		http.Error(w, "Invalid email ID", http.StatusBadRequest)
		return
	}

	envelope, rest := mboxfile.SplitEnvelope(messages[id])
	headers, body := mboxfile.SplitBody(rest)
	newHeaders, changed := mboxfile.SetStatus(headers, status)
	if !changed {
		w.WriteHeader(http.StatusOK)
		return
	}
	messages[id] = envelope + "\n" + newHeaders + "\n" + body

	if err := mboxfile.WriteMessages(path, messages); err != nil {
		s.log.Error().Err(err).Str("mailbox", boxName).Int("msg", id).Msg("rewrite mbox")
		http.Error(w, "Error updating mbox", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
