package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/sunnygitgud/aniflow/config"
	"github.com/sunnygitgud/aniflow/episodes"
	"github.com/sunnygitgud/aniflow/qbittorrent"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

type resolver interface {
	Resolve(ctx context.Context, category string) ([]episodes.Candidate, error)
}

type chooser func(title string, choices []string) (int, error)

// app runs one resolve, pick, open cycle.
type app struct {
	category string
	log      zerolog.Logger
	stdout   io.Writer
	resolver resolver
	choose   chooser
	launcher *launcher
}

func newApp(cfg *config.Config, logger zerolog.Logger, stdout io.Writer) *app {
	client := qbittorrent.NewClient(cfg.BaseURL, qbittorrent.NewHTTPClient(cfg.Timeout))
	opts := episodes.Options{
		SkipUnwanted:  cfg.SkipUnwanted,
		VideoOnly:     cfg.VideoOnly,
		RequireOnDisk: cfg.RequireOnDisk,
		Fs:            afero.NewOsFs(),
	}

	return &app{
		category: cfg.Category,
		log:      logger,
		stdout:   stdout,
		resolver: episodes.NewResolver(client, opts, logger, stdout),
		choose: func(title string, choices []string) (int, error) {
			return selectChoice(title, choices)
		},
		launcher: newLauncher(cfg.Player),
	}
}

func (a *app) run(ctx context.Context) int {
	candidates, err := a.resolver.Resolve(ctx, a.category)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			a.log.Warn().Msg("interrupted")
			return exitFailure
		}
		a.log.Error().Err(err).Str("category", a.category).Msg("could not get torrents list")
		return exitFailure
	}

	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}

	idx, err := a.choose(promptMessage, labels)
	if err == nil && (idx < 0 || idx >= len(candidates)) {
		err = fmt.Errorf("%w: index %d out of range", ErrSelectionCancelled, idx)
	}
	if err != nil {
		a.log.Debug().Err(err).Int("candidates", len(candidates)).Msg("nothing selected")
		fmt.Fprintln(a.stdout, "Nothing was selected, please try again")
		return exitOK
	}

	chosen := candidates[idx]
	if err := a.launcher.Launch(chosen.Path); err != nil {
		a.log.Error().Err(err).
			Str("path", chosen.Path).
			Str("torrent", chosen.Torrent).
			Msg("failed to open episode")
		return exitFailure
	}

	fmt.Fprintf(a.stdout, "Opened %s\n", chosen.Path)
	return exitOK
}
