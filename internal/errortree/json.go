package errortree

import (
	"bytes"

	"github.com/goccy/go-json"
)

// FromJSON normalizes an error report from its wire form, keeping the
// children in the order the keys appear in the document. The editor
// widget posts its report as JSON text, and "first child wins" is
// defined against that order. Malformed JSON or a non-object document
// yields an empty node.
func FromJSON(data []byte) Node {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := parseValue(dec)
	if err != nil {
		return Node{}
	}
	if n, ok := v.(Node); ok {
		return n
	}
	return Node{}
}

// FirstJSON is shorthand for FromJSON(data).First().
func FirstJSON(data []byte) (string, bool) {
	return FromJSON(data).First()
}

// parseValue consumes exactly one JSON value from the decoder. Objects
// become nodes, arrays come back as []any (only consulted for the
// reserved key), scalars are returned as-is and later ignored.
func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		var n Node
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			val, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			if key == LocalErrorsKey {
				if list, ok := val.([]any); ok {
					n.Messages = stringsOf(list)
				}
				continue
			}
			if child, ok := val.(Node); ok {
				n.Children = append(n.Children, Child{Key: key, Node: child})
			}
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, err
		}
		return n, nil
	case '[':
		var list []any
		for dec.More() {
			v, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil { // closing bracket
			return nil, err
		}
		return list, nil
	}
	return nil, nil
}
