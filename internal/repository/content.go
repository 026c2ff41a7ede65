package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"interview/notes/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

type ContentRepository interface {
	// LoadContents sends exactly one list on the returned channel and closes it.
	// The list is empty when anything in the category could not be read.
	LoadContents(ctx context.Context, category domain.Category) <-chan []domain.ContentItem
}

type contentRepository struct {
	fs          afero.Fs
	maxParallel int
}

func NewContentRepository(fs afero.Fs, maxParallel int) ContentRepository {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &contentRepository{
		fs:          fs,
		maxParallel: maxParallel,
	}
}

func (r *contentRepository) LoadContents(ctx context.Context, category domain.Category) <-chan []domain.ContentItem {
	out := make(chan []domain.ContentItem, 1)

	go func() {
		defer close(out)

		contents, err := r.loadContents(ctx, category)
		if err != nil {
			log.Warnf("⚠️ Contents of %s unavailable: %v", category.Title, err)
			out <- []domain.ContentItem{}
			return
		}

		log.Debugf("✅ Loaded %d contents for %s", len(contents), category.Title)
		out <- contents
	}()

	return out
}

func (r *contentRepository) loadContents(ctx context.Context, category domain.Category) ([]domain.ContentItem, error) {
	_, indexPath := category.Locate()

	raw, err := r.readText(ctx, indexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var contents []domain.ContentItem
	if err := json.Unmarshal([]byte(raw), &contents); err != nil {
		return nil, fmt.Errorf("failed to decode index %s: %w", indexPath, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallel)

	for i := range contents {
		i := i // per-iteration copy; go directive is below 1.22
		markdownPath := category.ContentPath(contents[i].ID)

		g.Go(func() error {
			markdown, err := r.readText(gctx, markdownPath)
			if err != nil {
				return fmt.Errorf("failed to read content %d: %w", contents[i].ID, err)
			}
			contents[i].Body = &markdown
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if contents == nil {
		contents = []domain.ContentItem{}
	}

	return contents, nil
}

func (r *contentRepository) readText(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read of %s cancelled: %w", name, err)
	}

	data, err := afero.ReadFile(r.fs, name)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		log.Debugf("Replacing invalid UTF-8 in %s", name)
		return strings.ToValidUTF8(string(data), "\uFFFD"), nil
	}

	return string(data), nil
}
