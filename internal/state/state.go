package state

import "interview/notes/internal/domain"

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusPopulated
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusPopulated:
		return "populated"
	case StatusEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ScreenState is the snapshot published by a ContentScreen.
type ScreenState struct {
	Status   Status
	Category domain.Category
	Contents []domain.ContentItem
}

// Settled reports whether the state is the outcome of a finished load.
func (s ScreenState) Settled() bool {
	return s.Status == StatusPopulated || s.Status == StatusEmpty
}

func (s ScreenState) clone() ScreenState {
	contents := make([]domain.ContentItem, len(s.Contents))
	copy(contents, s.Contents)
	s.Contents = contents
	return s
}
