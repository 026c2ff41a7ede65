package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"interview/notes/internal/config"
	"interview/notes/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `Usage: notes [flags] <command>

Commands:
  categories               list categories
  contents <category>      list the notes of a category
  show <category> <id>     print one note

Flags:
`

func main() {
	flags := pflag.NewFlagSet("notes", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}

	configFile := flags.String("config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("assets", "", "read notes from this directory instead of the embedded bundle")
	flags.String("format", "terminal", "note format for show: terminal, html or plain")
	flags.Int("width", 80, "word wrap width for terminal output")
	flags.Bool("outline", false, "print the headings of a note before its body")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	for key, flag := range map[string]string{
		"log.level":      "log-level",
		"assets.dir":     "assets",
		"render.format":  "format",
		"render.width":   "width",
		"render.outline": "outline",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatalf("Failed to bind flag %s: %v", flag, err)
		}
	}

	// Load configuration using viper
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize container with all dependencies
	app, err := container.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, flags.Args()); err != nil {
		if errors.Is(err, container.ErrUsage) {
			flags.Usage()
		}
		stop()
		log.Fatalf("%v", err)
	}
}
