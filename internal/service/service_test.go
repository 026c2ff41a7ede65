package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"interview/notes/internal/assets"
	"interview/notes/internal/domain"
	"interview/notes/internal/markdown"
	"interview/notes/internal/repository"
	"interview/notes/internal/state"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBundleService(t *testing.T) (*Service, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewService(repository.NewContentRepository(assets.Bundle(), 4), &out), &out
}

func TestListCategories(t *testing.T) {
	s, out := newBundleService(t)

	require.NoError(t, s.ListCategories(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Kotlin")
	assert.Contains(t, lines[1], "Android")
	assert.Contains(t, lines[2], "Compose")
	assert.Contains(t, lines[3], "Design Patterns")
}

func TestListContents(t *testing.T) {
	s, out := newBundleService(t)

	require.NoError(t, s.ListContents(context.Background(), "kotlin"))

	require.Equal(t,
		"   1  Scope Functions\n"+
			"   2  Coroutines vs Threads\n"+
			"   3  Sealed Classes and Interfaces\n",
		out.String())
}

func TestListContents_UnknownCategory(t *testing.T) {
	s, _ := newBundleService(t)
	require.Error(t, s.ListContents(context.Background(), "swift"))
}

func TestListContents_Unavailable(t *testing.T) {
	var out bytes.Buffer
	s := NewService(repository.NewContentRepository(afero.NewMemMapFs(), 1), &out)

	err := s.ListContents(context.Background(), "android")
	require.ErrorIs(t, err, ErrNoContents)
	require.Empty(t, out.String())
}

func TestShowContent_PlainWithOutline(t *testing.T) {
	s, out := newBundleService(t)

	err := s.ShowContent(context.Background(), "Design Patterns", 2, ShowOptions{
		Format:  markdown.FormatPlain,
		Outline: true,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "- Observer\n  - In Android\n\n# Observer\n"), out.String())
}

func TestShowContent_HTML(t *testing.T) {
	s, out := newBundleService(t)

	err := s.ShowContent(context.Background(), "compose", 1, ShowOptions{Format: markdown.FormatHTML})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `<h1 id="recomposition">Recomposition</h1>`)
}

func TestShowContent_NotFound(t *testing.T) {
	s, _ := newBundleService(t)

	err := s.ShowContent(context.Background(), "kotlin", 99, ShowOptions{Format: markdown.FormatPlain})
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestFetchContents(t *testing.T) {
	s, _ := newBundleService(t)

	c, err := domain.ParseCategoryType("android")
	require.NoError(t, err)

	st, err := s.FetchContents(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, state.StatusPopulated, st.Status)
	require.Len(t, st.Contents, 2)
	assert.Equal(t, "Activity Lifecycle", st.Contents[0].Title)
}

func TestFetchContents_Cancelled(t *testing.T) {
	s, _ := newBundleService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := domain.ParseCategoryType("android")
	require.NoError(t, err)

	_, err = s.FetchContents(ctx, c)
	require.ErrorIs(t, err, context.Canceled)
}
