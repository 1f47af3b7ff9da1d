package errortree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emurenMRz/mailpanel/internal/errortree"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		found    bool
	}{
		{
			name:     "local messages",
			input:    map[string]any{"__errors": []any{"Required"}},
			expected: "Required",
			found:    true,
		},
		{
			name: "first child in key order wins",
			input: map[string]any{
				"a": map[string]any{"__errors": []any{"Bad a"}},
				"b": map[string]any{"__errors": []any{"Bad b"}},
			},
			expected: "Bad a",
			found:    true,
		},
		{
			name: "local error beats nested child error",
			input: map[string]any{
				"__errors": []any{"Top"},
				"a":        map[string]any{"__errors": []any{"Nested"}},
			},
			expected: "Top",
			found:    true,
		},
		{
			name: "recursion reaches arbitrary depth",
			input: map[string]any{
				"a": map[string]any{
					"b": map[string]any{"__errors": []any{"Deep"}},
				},
			},
			expected: "Deep",
			found:    true,
		},
		{
			name: "shallow-but-later child loses to deep-but-earlier child",
			input: map[string]any{
				"a": map[string]any{
					"b": map[string]any{"__errors": []any{"Deep first"}},
				},
				"z": map[string]any{"__errors": []any{"Shallow later"}},
			},
			expected: "Deep first",
			found:    true,
		},
		{
			name:  "empty object",
			input: map[string]any{},
			found: false,
		},
		{
			name:  "nil input",
			input: nil,
			found: false,
		},
		{
			name:  "non-object input",
			input: "not an object",
			found: false,
		},
		{
			name:  "array input",
			input: []any{"oops"},
			found: false,
		},
		{
			name:  "empty message list",
			input: map[string]any{"__errors": []any{}},
			found: false,
		},
		{
			name:  "reserved key holding a non-list",
			input: map[string]any{"__errors": "Required"},
			found: false,
		},
		{
			name: "non-object children skipped",
			input: map[string]any{
				"a": "junk",
				"b": map[string]any{"__errors": []any{"Bad b"}},
			},
			expected: "Bad b",
			found:    true,
		},
		{
			name: "non-string messages skipped",
			input: map[string]any{
				"__errors": []any{42, "Second is a string"},
			},
			expected: "Second is a string",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := errortree.First(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestFirstJSONKeepsDocumentOrder(t *testing.T) {
	// "z" appears before "a" in the document, so it wins even though it
	// sorts later.
	doc := []byte(`{"z":{"__errors":["From z"]},"a":{"__errors":["From a"]}}`)
	msg, ok := errortree.FirstJSON(doc)
	assert.True(t, ok)
	assert.Equal(t, "From z", msg)
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
		found    bool
	}{
		{
			name:     "local messages",
			doc:      `{"__errors":["Required","Also bad"]}`,
			expected: "Required",
			found:    true,
		},
		{
			name:     "local beats child",
			doc:      `{"__errors":["Top"],"a":{"__errors":["Nested"]}}`,
			expected: "Top",
			found:    true,
		},
		{
			name:     "deep nesting",
			doc:      `{"a":{"b":{"c":{"__errors":["Deep"]}}}}`,
			expected: "Deep",
			found:    true,
		},
		{
			name:  "scalar document",
			doc:   `"not an object"`,
			found: false,
		},
		{
			name:  "array document",
			doc:   `[{"__errors":["In array"]}]`,
			found: false,
		},
		{
			name:  "malformed document",
			doc:   `{"a":`,
			found: false,
		},
		{
			name:  "empty document",
			doc:   ``,
			found: false,
		},
		{
			name:  "empty object",
			doc:   `{}`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := errortree.FromJSON([]byte(tt.doc)).First()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestEmpty(t *testing.T) {
	assert.True(t, errortree.Node{}.Empty())
	assert.True(t, errortree.FromValue(nil).Empty())
	assert.True(t, errortree.FromValue(map[string]any{"a": map[string]any{}}).Empty())
	assert.False(t, errortree.FromValue(map[string]any{"__errors": []any{"E"}}).Empty())
	assert.False(t, errortree.FromValue(map[string]any{
		"a": map[string]any{"__errors": []any{"E"}},
	}).Empty())
}
