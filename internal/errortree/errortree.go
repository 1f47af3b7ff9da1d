// Package errortree walks the nested error reports produced by
// JSON-Schema-style form validators. A report maps field names to child
// reports, with messages for the field itself stored under the reserved
// "__errors" key. The package answers one question: what is the first
// error in the tree.
package errortree

import "sort"

// LocalErrorsKey holds the messages that apply to a node itself rather
// than to one of its child fields.
const LocalErrorsKey = "__errors"

// Node is the normalized form of one error-report level: its own
// messages plus ordered child nodes. The leaf-or-branch ambiguity of the
// raw mapping shape is resolved during construction, never during
// search.
type Node struct {
	Messages []string
	Children []Child
}

// Child pairs a field name with its error subtree.
type Child struct {
	Key  string
	Node Node
}

// Empty reports whether the tree carries no message at any depth.
func (n Node) Empty() bool {
	if len(n.Messages) > 0 {
		return false
	}
	for _, c := range n.Children {
		if !c.Node.Empty() {
			return false
		}
	}
	return true
}

// First returns the first error message in pre-order: messages on the
// node itself win over anything in a child, and among children the
// first subtree containing any message wins regardless of depth.
func (n Node) First() (string, bool) {
	if len(n.Messages) > 0 {
		return n.Messages[0], true
	}
	for _, c := range n.Children {
		if msg, ok := c.Node.First(); ok {
			return msg, true
		}
	}
	return "", false
}

// FromValue normalizes an already-decoded error report. Anything that
// is not a string-keyed mapping becomes an empty node, so nil input,
// arrays in object position and scalar junk all degrade to "no error".
// Children are ordered by sorted key so the result is deterministic;
// use FromJSON when the report's own key order matters.
func FromValue(v any) Node {
	m, ok := v.(map[string]any)
	if !ok {
		return Node{}
	}

	var n Node
	if raw, ok := m[LocalErrorsKey]; ok {
		if list, ok := raw.([]any); ok {
			n.Messages = stringsOf(list)
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if k != LocalErrorsKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if child, ok := m[k].(map[string]any); ok {
			n.Children = append(n.Children, Child{Key: k, Node: FromValue(child)})
		}
	}
	return n
}

// First is shorthand for FromValue(v).First().
func First(v any) (string, bool) {
	return FromValue(v).First()
}

func stringsOf(list []any) []string {
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
