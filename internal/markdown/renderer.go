package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

type Format string

const (
	FormatTerminal Format = "terminal"
	FormatHTML     Format = "html"
	FormatPlain    Format = "plain"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTerminal, FormatHTML, FormatPlain:
		return f, nil
	default:
		return "", fmt.Errorf("unknown render format: %q", s)
	}
}

// Renderer turns a markdown body into something printable.
type Renderer interface {
	Render(body string) (string, error)
}

// Options configures the terminal renderer. Width 0 disables word wrapping.
type Options struct {
	Width int
	Style string // "auto" or a glamour standard style such as "dark", "light", "notty"
}

func NewRenderer(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatTerminal:
		return newTerminalRenderer(opts)
	case FormatHTML:
		return &htmlRenderer{md: newGoldmark()}, nil
	case FormatPlain:
		return plainRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown render format: %q", format)
	}
}

func newGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

type terminalRenderer struct {
	tr *glamour.TermRenderer
}

func newTerminalRenderer(opts Options) (*terminalRenderer, error) {
	termOpts := []glamour.TermRendererOption{glamour.WithWordWrap(opts.Width)}
	if opts.Style == "" || opts.Style == "auto" {
		termOpts = append(termOpts, glamour.WithAutoStyle())
	} else {
		termOpts = append(termOpts, glamour.WithStandardStyle(opts.Style))
	}

	tr, err := glamour.NewTermRenderer(termOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	return &terminalRenderer{tr: tr}, nil
}

func (r *terminalRenderer) Render(body string) (string, error) {
	out, err := r.tr.Render(body)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

type htmlRenderer struct {
	md goldmark.Markdown
}

func (r *htmlRenderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

type plainRenderer struct{}

func (plainRenderer) Render(body string) (string, error) {
	return body, nil
}
