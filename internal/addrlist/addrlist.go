// Package addrlist splits raw To/Cc header values into individual
// recipient entries without doing full RFC 5322 address parsing.
// Commas inside double-quoted display names and inside <...> address
// brackets are kept literal; only top-level commas separate entries.
package addrlist

import "strings"

// scanState tracks the splitter position within quoted runs and
// angle-bracket regions. angleDepth only changes outside quotes, quote
// toggling only happens at depth zero, and escapes are only honored
// inside quotes.
type scanState struct {
	inQuotes   bool
	escapeNext bool
	angleDepth int
}

type splitter struct {
	state scanState
	token strings.Builder
	out   []string
}

// step consumes one character. Rule order matters: an escaped character
// is always literal, and bracket/quote characters in the "wrong" region
// (a quote inside <...>, a > at depth zero) fall through to a plain
// append rather than changing state.
func (sp *splitter) step(c rune) {
	switch {
	case sp.state.escapeNext:
		sp.token.WriteRune(c)
		sp.state.escapeNext = false
	case sp.state.inQuotes && c == '\\':
		sp.token.WriteRune(c)
		sp.state.escapeNext = true
	case c == '"' && sp.state.angleDepth == 0:
		sp.token.WriteRune(c)
		sp.state.inQuotes = !sp.state.inQuotes
	case !sp.state.inQuotes && c == '<':
		sp.token.WriteRune(c)
		sp.state.angleDepth++
	case !sp.state.inQuotes && c == '>' && sp.state.angleDepth > 0:
		sp.token.WriteRune(c)
		sp.state.angleDepth--
	case c == ',' && !sp.state.inQuotes && sp.state.angleDepth == 0:
		sp.flush()
	default:
		sp.token.WriteRune(c)
	}
}

// flush trims the current token and emits it unless it is empty, so
// consecutive or trailing separators produce no entries.
func (sp *splitter) flush() {
	if entry := strings.TrimSpace(sp.token.String()); entry != "" {
		sp.out = append(sp.out, entry)
	}
	sp.token.Reset()
}

// Split breaks a raw header value into trimmed recipient entries in
// input order. It never fails: unterminated quotes or brackets and a
// trailing backslash simply leave the scan state dangling, which has no
// effect because the last token is flushed unconditionally.
func Split(value string) []string {
	var sp splitter
	for _, c := range value {
		sp.step(c)
	}
	sp.flush()
	return sp.out
}
