// Package editorgate decides whether the JSON editor widget should
// surface a validation message. The error lookup itself lives in
// errortree; this package only owns the UI-state gating, so the search
// never learns about modified/required/has-value flags.
package editorgate

import "github.com/emurenMRz/mailpanel/internal/errortree"

// State is the widget-side state of the edited field.
type State struct {
	Modified bool
	Required bool
	HasValue bool
}

// Visible normalizes a raw error report and applies the display gate.
func Visible(st State, tree any) (string, bool) {
	return VisibleNode(st, errortree.FromValue(tree))
}

// VisibleNode returns the message to show, if any. A message is shown
// only for a field the user has touched, and only while the field
// holds a value or is required — an untouched or cleared optional
// field stays quiet even when the validator reports errors.
func VisibleNode(st State, n errortree.Node) (string, bool) {
	msg, ok := n.First()
	if !ok {
		return "", false
	}
	if !st.Modified {
		return "", false
	}
	if !st.HasValue && !st.Required {
		return "", false
	}
	return msg, true
}
