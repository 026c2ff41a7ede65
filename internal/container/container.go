package container

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"interview/notes/internal/assets"
	"interview/notes/internal/config"
	"interview/notes/internal/markdown"
	"interview/notes/internal/repository"
	"interview/notes/internal/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Assets     afero.Fs
	Repository repository.ContentRepository

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config, out io.Writer) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	if err := setupLogging(cfg.Log); err != nil {
		return nil, err
	}

	// Embedded bundle unless a directory override is configured
	if cfg.Assets.Dir != "" {
		fs, err := assets.Dir(cfg.Assets.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize assets: %w", err)
		}
		container.Assets = fs
		log.Infof("📂 Reading notes from %s", cfg.Assets.Dir)
	} else {
		container.Assets = assets.Bundle()
		log.Debug("📦 Reading notes from embedded bundle")
	}

	contentRepo := repository.NewContentRepository(container.Assets, cfg.Loader.MaxParallelReads)
	container.Repository = contentRepo

	container.Service = service.NewService(contentRepo, out)

	return container, nil
}

// Run executes the command named by args[0].
func (c *Container) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	switch args[0] {
	case "categories":
		return c.Service.ListCategories(ctx)

	case "contents":
		if len(args) != 2 {
			return fmt.Errorf("%w: contents <category>", ErrUsage)
		}
		return c.Service.ListContents(ctx, args[1])

	case "show":
		if len(args) != 3 {
			return fmt.Errorf("%w: show <category> <id>", ErrUsage)
		}
		id, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: invalid content id %q", ErrUsage, args[2])
		}
		opts, err := c.showOptions()
		if err != nil {
			return err
		}
		return c.Service.ShowContent(ctx, args[1], id, opts)

	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

func (c *Container) showOptions() (service.ShowOptions, error) {
	format, err := markdown.ParseFormat(c.Config.Render.Format)
	if err != nil {
		return service.ShowOptions{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return service.ShowOptions{
		Format: format,
		Render: markdown.Options{
			Width: c.Config.Render.Width,
			Style: c.Config.Render.Style,
		},
		Outline: c.Config.Render.Outline,
	}, nil
}

func setupLogging(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
