package markdown

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Heading is one entry of a note's table of contents.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Outline returns the h1-h3 headings of a markdown body in document order.
func Outline(body string) ([]Heading, error) {
	html, err := (&htmlRenderer{md: newGoldmark()}).Render(body)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	headings := make([]Heading, 0)
	doc.Find("h1, h2, h3").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}

		anchor, _ := s.Attr("id")
		headings = append(headings, Heading{
			Level:  headingLevel(goquery.NodeName(s)),
			Text:   text,
			Anchor: anchor,
		})
	})

	log.Debugf("Extracted %d headings", len(headings))
	return headings, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	default:
		return 3
	}
}

// FormatOutline renders headings as an indented list.
func FormatOutline(headings []Heading) string {
	var b strings.Builder
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", h.Level-1))
		b.WriteString("- ")
		b.WriteString(h.Text)
		b.WriteString("\n")
	}
	return b.String()
}
