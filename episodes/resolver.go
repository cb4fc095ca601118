// Package episodes turns the torrents of a category into the list of fully
// downloaded files a user can pick from.
package episodes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/sunnygitgud/aniflow/qbittorrent"
)

// progressComplete is compared with ==. The daemon reports exactly 1 for a
// finished file.
const progressComplete = 1.0

// Source is the part of the daemon client the resolver needs.
type Source interface {
	ListTorrents(ctx context.Context, category string) ([]qbittorrent.Torrent, error)
	ListFiles(ctx context.Context, hash string) ([]qbittorrent.EpisodeFile, error)
}

// Candidate is a completed file that can be offered for playback.
type Candidate struct {
	Label   string
	Path    string
	Torrent string
	Hash    string
}

// Options enables extra filters on top of the completion check. The zero
// value keeps every completed file.
type Options struct {
	// SkipUnwanted drops files marked "do not download".
	SkipUnwanted bool
	// VideoOnly drops files without a known video extension.
	VideoOnly bool
	// RequireOnDisk drops candidates whose path is missing from Fs.
	RequireOnDisk bool
	Fs            afero.Fs
}

// Resolver walks the torrents of a category and collects their completed
// files as candidates.
type Resolver struct {
	source   Source
	opts     Options
	log      zerolog.Logger
	progress io.Writer
}

// NewResolver creates a resolver reading from source. Each torrent name is
// written to progress as it is processed; a nil progress discards them.
func NewResolver(source Source, opts Options, logger zerolog.Logger, progress io.Writer) *Resolver {
	if progress == nil {
		progress = io.Discard
	}
	if opts.RequireOnDisk && opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &Resolver{
		source:   source,
		opts:     opts,
		log:      logger,
		progress: progress,
	}
}

// Resolve lists the completed files of every torrent in category, in torrent
// order then file order. Failing to list the torrents is fatal and returns no
// candidates. A torrent whose files cannot be listed is logged and skipped.
func (r *Resolver) Resolve(ctx context.Context, category string) ([]Candidate, error) {
	torrents, err := r.source.ListTorrents(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("could not get torrents list for category %q: %w", category, err)
	}

	var candidates []Candidate
	for _, t := range torrents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintln(r.progress, t.Name)

		files, err := r.source.ListFiles(ctx, t.Hash)
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if err != nil {
			r.log.Warn().Err(err).
				Str("torrent", t.Name).
				Str("hash", t.Hash).
				Msg("couldn't get episodes")
			continue
		}

		candidates = append(candidates, r.completedFiles(t, files)...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *Resolver) completedFiles(t qbittorrent.Torrent, files []qbittorrent.EpisodeFile) []Candidate {
	var candidates []Candidate
	for _, f := range files {
		if f.Progress != progressComplete {
			continue
		}
		if r.opts.SkipUnwanted && f.Priority == qbittorrent.PriorityDoNotDownload {
			continue
		}
		if r.opts.VideoOnly && !IsVideoFile(f.Name) {
			continue
		}

		path := FullPath(t.SavePath, f.Name)
		if r.opts.RequireOnDisk && !r.onDisk(path) {
			continue
		}

		candidates = append(candidates, Candidate{
			Label:   path,
			Path:    path,
			Torrent: t.Name,
			Hash:    t.Hash,
		})
	}
	return candidates
}

func (r *Resolver) onDisk(path string) bool {
	exists, err := afero.Exists(r.opts.Fs, path)
	if err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("couldn't stat episode")
		return false
	}
	if !exists {
		r.log.Debug().Str("path", path).Msg("episode missing from disk")
	}
	return exists
}

// FullPath joins a torrent save path and a file name by plain concatenation.
// No separator is inserted; the daemon's save_path already ends in one.
func FullPath(savePath, name string) string {
	return savePath + name
}
