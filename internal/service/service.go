package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"interview/notes/internal/domain"
	"interview/notes/internal/markdown"
	"interview/notes/internal/repository"
	"interview/notes/internal/state"

	log "github.com/sirupsen/logrus"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrNoContents      = errors.New("no contents available")
)

// ShowOptions controls how a single note is printed.
type ShowOptions struct {
	Format  markdown.Format
	Render  markdown.Options
	Outline bool
}

// Service drives the three screens: categories, contents of a category and
// the detail of one note.
type Service struct {
	repository repository.ContentRepository
	out        io.Writer
}

func NewService(repository repository.ContentRepository, out io.Writer) *Service {
	return &Service{
		repository: repository,
		out:        out,
	}
}

func (s *Service) ListCategories(_ context.Context) error {
	for _, category := range domain.Categories() {
		if _, err := fmt.Fprintf(s.out, "%-16s %s\n", category.Type, category.Title); err != nil {
			return fmt.Errorf("failed to write category: %w", err)
		}
	}
	return nil
}

func (s *Service) ListContents(ctx context.Context, categoryName string) error {
	category, err := domain.ParseCategoryType(categoryName)
	if err != nil {
		return err
	}

	screenState, err := s.FetchContents(ctx, category)
	if err != nil {
		return err
	}

	if screenState.Status == state.StatusEmpty {
		return fmt.Errorf("%w for %s", ErrNoContents, category.Title)
	}

	for _, content := range screenState.Contents {
		if _, err := fmt.Fprintf(s.out, "%4d  %s\n", content.ID, content.Title); err != nil {
			return fmt.Errorf("failed to write content: %w", err)
		}
	}

	return nil
}

func (s *Service) ShowContent(ctx context.Context, categoryName string, id int, opts ShowOptions) error {
	category, err := domain.ParseCategoryType(categoryName)
	if err != nil {
		return err
	}

	screenState, err := s.FetchContents(ctx, category)
	if err != nil {
		return err
	}

	var content *domain.ContentItem
	for i := range screenState.Contents {
		if screenState.Contents[i].ID == id {
			content = &screenState.Contents[i]
			break
		}
	}
	if content == nil || !content.HasBody() {
		return fmt.Errorf("%w: %s #%d", ErrContentNotFound, category.Title, id)
	}

	if opts.Outline {
		headings, err := markdown.Outline(content.BodyText())
		if err != nil {
			return fmt.Errorf("failed to build outline: %w", err)
		}
		if _, err := io.WriteString(s.out, markdown.FormatOutline(headings)+"\n"); err != nil {
			return fmt.Errorf("failed to write outline: %w", err)
		}
	}

	renderer, err := markdown.NewRenderer(opts.Format, opts.Render)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(content.BodyText())
	if err != nil {
		return err
	}

	if _, err := io.WriteString(s.out, rendered); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}

	return nil
}

// FetchContents opens a content screen for category, waits for its load to
// settle and disposes the screen.
func (s *Service) FetchContents(ctx context.Context, category domain.Category) (state.ScreenState, error) {
	if err := ctx.Err(); err != nil {
		return state.ScreenState{}, fmt.Errorf("loading %s cancelled: %w", category.Title, err)
	}

	screen := state.NewContentScreen(ctx, s.repository)
	defer screen.Close()

	settled := make(chan state.ScreenState, 1)
	unsubscribe := screen.Subscribe(func(st state.ScreenState) {
		if st.Settled() {
			select {
			case settled <- st:
			default:
			}
		}
	})
	defer unsubscribe()

	log.Infof("🔄 Loading %s", category.Title)
	screen.Handle(domain.FetchContents{Category: category})

	select {
	case <-ctx.Done():
		return state.ScreenState{}, fmt.Errorf("loading %s cancelled: %w", category.Title, ctx.Err())
	case st := <-settled:
		log.Infof("✅ %s: %d contents", category.Title, len(st.Contents))
		return st, nil
	}
}
