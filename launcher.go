package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/pkg/browser"
)

// LaunchError reports that the chosen episode could not be opened.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

type opener func(path string) error

// launcher makes exactly one attempt to open a path.
type launcher struct {
	open opener
}

// newLauncher opens files with the OS default handler, or with player when
// one is configured.
func newLauncher(player string) *launcher {
	if player == "" {
		return &launcher{open: urlOpener(browser.OpenURL)}
	}
	return &launcher{open: playerOpener(player)}
}

// urlOpener hands path to openURL as an escaped file:// URL, so characters
// like '#', '?' and '%' stay part of the file name.
func urlOpener(openURL func(string) error) opener {
	return func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		return openURL(fileURL(abs))
	}
}

func playerOpener(player string) opener {
	return func(path string) error {
		cmd := exec.Command(player, path)
		return cmd.Start()
	}
}

func (l *launcher) Launch(path string) error {
	if err := l.open(path); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	return nil
}
