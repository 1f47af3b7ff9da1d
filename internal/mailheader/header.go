// Package mailheader parses raw RFC 5322 header blocks while keeping
// the fields in wire order, which net/mail's map-backed Header cannot
// do. The viewer's header pane and the mailfix tool both need the
// original order and the original field names.
package mailheader

import (
	"bufio"
	"strings"
)

// Field is one header field: its original name and the raw value
// lines, the first line followed by any folded continuations.
type Field struct {
	Name  string
	Lines []string
}

// Value joins the folded lines back into a single-line value.
func (f Field) Value() string {
	return strings.TrimSpace(strings.Join(f.Lines, " "))
}

// Headers is an ordered header block with case-insensitive lookup.
// Lookup resolves to the first occurrence of a repeated field.
type Headers struct {
	fields []Field
	index  map[string]int
}

// Parse reads a raw header block line by line. Continuation lines
// (starting with SP or HT) attach to the preceding field; lines
// without a colon are ignored and also terminate any fold in progress.
func Parse(raw string) Headers {
	h := Headers{index: map[string]int{}}

	var current *Field
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current != nil {
				current.Lines = append(current.Lines, strings.TrimLeft(line, " \t"))
			}
			continue
		}

		i := strings.Index(line, ":")
		if i == -1 {
			current = nil
			continue
		}

		h.fields = append(h.fields, Field{
			Name:  strings.TrimSpace(line[:i]),
			Lines: []string{strings.TrimSpace(line[i+1:])},
		})
		current = &h.fields[len(h.fields)-1]

		key := strings.ToLower(current.Name)
		if _, exists := h.index[key]; !exists {
			h.index[key] = len(h.fields) - 1
		}
	}

	return h
}

// Fields returns the fields in wire order.
func (h Headers) Fields() []Field {
	return h.fields
}

// Has reports whether a field with the given name is present.
func (h Headers) Has(name string) bool {
	_, ok := h.index[strings.ToLower(name)]
	return ok
}

// Get returns the unfolded value of the first field with the given
// name.
func (h Headers) Get(name string) (string, bool) {
	i, ok := h.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return h.fields[i].Value(), true
}

// Append adds a field at the end of the block.
func (h *Headers) Append(name, value string) {
	if h.index == nil {
		h.index = map[string]int{}
	}
	h.fields = append(h.fields, Field{Name: name, Lines: []string{value}})
	key := strings.ToLower(name)
	if _, exists := h.index[key]; !exists {
		h.index[key] = len(h.fields) - 1
	}
}

// String rebuilds the header block, folding continuation lines with a
// leading tab.
func (h Headers) String() string {
	var b strings.Builder
	for _, f := range h.fields {
		if len(f.Lines) == 0 {
			continue
		}
		b.WriteString(f.Name + ": " + f.Lines[0] + "\n")
		for _, line := range f.Lines[1:] {
			b.WriteString("\t" + line + "\n")
		}
	}
	return b.String()
}
