package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mgnsk/revolver/internal/shell"
	"github.com/urfave/cli/v2"
)

// ErrLogFormat indicates an unsupported log format.
var ErrLogFormat = errors.New("unsupported log format")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ctx).Run(os.Args); err != nil {
		slog.Error("revolver failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newApp(ctx context.Context) *cli.App {
	return &cli.App{
		Name:  "revolver",
		Usage: "drive a circular list with a cursor",
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "read commands from stdin",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "value",
						Aliases: []string{"v"},
						Usage:   "initial value, may be repeated",
					},
				},
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}

					s.logger.Debug("starting repl", "values", c.StringSlice("value"))

					in := c.App.Reader
					if in == nil {
						in = os.Stdin
					}

					return s.Run(ctx, in)
				},
			},
			{
				Name:      "run",
				Usage:     "run a YAML script",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one script file, got %d", c.NArg())
					}

					s, err := newSession(c)
					if err != nil {
						return err
					}

					return s.runScript(ctx, c.Args().First())
				},
			},
		},
	}
}

type session struct {
	*shell.Session
	logger *slog.Logger
	out    io.Writer
}

func newSession(c *cli.Context) (*session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := cfg.Logger(c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "SHELL")

	s := shell.NewSession(c.App.Writer, logger, c.StringSlice("value")...)
	s.Strict = cfg.Strict

	return &session{Session: s, logger: logger, out: c.App.Writer}, nil
}

func (s *session) runScript(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	script, err := shell.LoadScript(f)
	if err != nil {
		return fmt.Errorf("script `%s`: %w", path, err)
	}

	s.logger.Debug("running script", "path", path, "commands", len(script.Commands))

	if err := s.RunScript(ctx, script); err != nil {
		return fmt.Errorf("script `%s`: %w", path, err)
	}

	_, err = fmt.Fprintln(s.out, s.Revolver())
	return err
}
