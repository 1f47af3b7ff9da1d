package server

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// parseBody walks the MIME structure of a message and extracts the
// first displayable body part plus attachment metadata.
func (s *Server) parseBody(msg *mail.Message) EmailContent {
	content := EmailContent{Attachments: []Attachment{}}

	var processEntity func(header interface{ Get(string) string }, body io.Reader)
	processEntity = func(header interface{ Get(string) string }, body io.Reader) {
		ctype, params, err := mime.ParseMediaType(header.Get("Content-Type"))
		if err != nil {
			ctype = "text/plain"
		}

		if strings.HasPrefix(ctype, "multipart/") {
			mr := multipart.NewReader(body, params["boundary"])
			for {
				p, err := mr.NextPart()
				if err == io.EOF {
					break
				}
				if err != nil {
					s.log.Warn().Err(err).Msg("read multipart body")
					break
				}
				processEntity(p.Header, p)
			}
			return
		}

		if disp, dispParams, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil && disp == "attachment" {
			size := decodedSize(header.Get("Content-Transfer-Encoding"), body)
			content.Attachments = append(content.Attachments, Attachment{
				Filename:  dispParams["filename"],
				Size:      size,
				SizeLabel: formatSize(size),
			})
			return
		}

		reader := decodeTransferEncoding(header.Get("Content-Transfer-Encoding"), body)

		if content.Body == "" && (ctype == "text/plain" || ctype == "text/html") {
			bodyBytes, err := io.ReadAll(reader)
			if err != nil {
				return
			}

			charset := params["charset"]
			if charset == "" {
				charset = "utf-8"
			}
			encoding, err := ianaindex.IANA.Encoding(charset)
			if err != nil || encoding == nil {
				encoding, _ = ianaindex.IANA.Encoding("utf-8")
			}

			decoded, err := encoding.NewDecoder().Bytes(bodyBytes)
			if err != nil {
				content.Body = string(bodyBytes)
			} else {
				content.Body = string(decoded)
			}
			content.BodyType = ctype
		}
	}

	processEntity(msg.Header, msg.Body)
	return content
}

// decodeTransferEncoding unwraps base64 and quoted-printable bodies;
// 7bit, 8bit and binary pass through.
func decodeTransferEncoding(cte string, body io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(cte)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		return quotedprintable.NewReader(body)
	default:
		return body
	}
}

// decodedSize counts the decoded bytes of a part without keeping them.
func decodedSize(cte string, body io.Reader) int64 {
	n, err := io.Copy(io.Discard, decodeTransferEncoding(cte, body))
	if err != nil {
		return 0
	}
	return n
}

// formatSize renders a byte count the way the attachment list shows
// it: binary units with one decimal above KB.
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}

// parseDate tries common email Date header formats and returns zero
// time when none match.
func parseDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	if t, err := mail.ParseDate(dateStr); err == nil {
		return t
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		time.RFC850,
		time.RFC3339,
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, dateStr); err == nil {
			return t
		}
	}
	return time.Time{}
}

// charsetReader converts encoded-words in non-UTF8 charsets (e.g.
// ISO-2022-JP) to UTF-8.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if charset == "" {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// decodeAddressList renders a From header for the list view, decoding
// encoded-word display names when the header parses as an address
// list.
func decodeAddressList(header string, decoder *mime.WordDecoder) string {
	if header == "" {
		return ""
	}
	addrs, err := mail.ParseAddressList(header)
	if err != nil {
		// Fallback: try to decode the whole header as one encoded-word.
		if dec, e := decoder.DecodeHeader(header); e == nil {
			return dec
		}
		return header
	}
	var parts []string
	for _, a := range addrs {
		name := a.Name
		if name != "" {
			if dec, e := decoder.DecodeHeader(name); e == nil {
				name = dec
			}
			parts = append(parts, name+" <"+a.Address+">")
		} else {
			parts = append(parts, a.Address)
		}
	}
	return strings.Join(parts, ", ")
}
