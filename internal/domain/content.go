package domain

// ContentItem is one note of a category. Body stays nil until the companion
// markdown file has been attached.
type ContentItem struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Body  *string `json:"-"`
}

// HasBody reports whether the item has been hydrated.
func (c ContentItem) HasBody() bool {
	return c.Body != nil
}

// BodyText returns the body or an empty string for an item that was not hydrated.
func (c ContentItem) BodyText() string {
	if c.Body == nil {
		return ""
	}
	return *c.Body
}
