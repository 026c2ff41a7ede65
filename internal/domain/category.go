package domain

import (
	"fmt"
	"path"
	"strings"
)

type CategoryType string

func (c CategoryType) String() string {
	return string(c)
}

const (
	CategoryTypeKotlin         CategoryType = "kotlin"
	CategoryTypeAndroid        CategoryType = "android"
	CategoryTypeCompose        CategoryType = "compose"
	CategoryTypeDesignPatterns CategoryType = "design-patterns"
)

// Category is a topic grouping together with the location of its bundled assets.
type Category struct {
	Type     CategoryType `json:"type"`
	Title    string       `json:"title"`
	Folder   string       `json:"folder"`   // Asset folder, e.g. "files/kotlin"
	Filename string       `json:"filename"` // Index file inside Folder
}

var categories = []Category{
	{
		Type:     CategoryTypeKotlin,
		Title:    "Kotlin",
		Folder:   "files/kotlin",
		Filename: "contents_kotlin.json",
	},
	{
		Type:     CategoryTypeAndroid,
		Title:    "Android",
		Folder:   "files/android",
		Filename: "contents_android.json",
	},
	{
		Type:     CategoryTypeCompose,
		Title:    "Compose",
		Folder:   "files/compose",
		Filename: "contents_compose.json",
	},
	{
		Type:     CategoryTypeDesignPatterns,
		Title:    "Design Patterns",
		Folder:   "files/designPatterns",
		Filename: "contents_design_patterns.json",
	},
}

// Categories returns the selectable categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategoryType resolves a category by its type key or its title (case-insensitive).
func ParseCategoryType(s string) (Category, error) {
	needle := strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(c.Type.String(), needle) || strings.EqualFold(c.Title, needle) {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("unknown category: %q", s)
}

// Locate returns the asset folder and the full path of the index file.
func (c Category) Locate() (string, string) {
	return c.Folder, path.Join(c.Folder, c.Filename)
}

// ContentPath returns the path of the markdown companion file for a content id.
func (c Category) ContentPath(id int) string {
	return path.Join(c.Folder, fmt.Sprintf("content_%d.md", id))
}
