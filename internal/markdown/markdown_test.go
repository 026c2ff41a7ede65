package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const note = `# Scope Functions

Intro.

## Context object

- this
- it

### Details

` + "```kotlin\n# not a heading\n```" + `

## Return value

#### Too deep
`

func TestOutline(t *testing.T) {
	headings, err := Outline(note)
	require.NoError(t, err)

	require.Equal(t, []Heading{
		{Level: 1, Text: "Scope Functions", Anchor: "scope-functions"},
		{Level: 2, Text: "Context object", Anchor: "context-object"},
		{Level: 3, Text: "Details", Anchor: "details"},
		{Level: 2, Text: "Return value", Anchor: "return-value"},
	}, headings)
}

func TestOutline_NoHeadings(t *testing.T) {
	headings, err := Outline("just text")
	require.NoError(t, err)
	require.Empty(t, headings)
}

func TestFormatOutline(t *testing.T) {
	out := FormatOutline([]Heading{
		{Level: 1, Text: "Scope Functions"},
		{Level: 2, Text: "Context object"},
		{Level: 3, Text: "Details"},
	})

	require.Equal(t, "- Scope Functions\n  - Context object\n    - Details\n", out)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"terminal", FormatTerminal, false},
		{"HTML", FormatHTML, false},
		{" plain ", FormatPlain, false},
		{"pdf", "", true},
	}

	for _, test := range tests {
		f, err := ParseFormat(test.input)
		if test.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.expected, f)
	}
}

func TestRenderer_HTML(t *testing.T) {
	r, err := NewRenderer(FormatHTML, Options{})
	require.NoError(t, err)

	out, err := r.Render("# Scope Functions\n\nUse `apply`.\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="scope-functions">Scope Functions</h1>`)
	assert.Contains(t, out, "<code>apply</code>")
}

func TestRenderer_Plain(t *testing.T) {
	r, err := NewRenderer(FormatPlain, Options{})
	require.NoError(t, err)

	out, err := r.Render(note)
	require.NoError(t, err)
	assert.Equal(t, note, out)
}

func TestRenderer_Terminal(t *testing.T) {
	r, err := NewRenderer(FormatTerminal, Options{Width: 60, Style: "notty"})
	require.NoError(t, err)

	out, err := r.Render(note)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer(Format("pdf"), Options{})
	require.Error(t, err)
}
