package domain

// ContentEvent is an input accepted by a content screen.
type ContentEvent interface {
	contentEvent()
}

// FetchContents asks a screen to (re)load the contents of a category.
type FetchContents struct {
	Category Category
}

func (FetchContents) contentEvent() {}
