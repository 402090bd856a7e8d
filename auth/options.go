package auth

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Opener opens the file named by a file= item.
type Opener func(name string) (io.ReadCloser, error)

// Option is an option configuring an Authenticator.
type Option func(cfg *authConfig) error

type authConfig struct {
	open Opener
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// WithOpener configures how file= sources are opened. The default is os.Open.
func WithOpener(open Opener) Option {
	return func(cfg *authConfig) error {
		if open == nil {
			return errors.New("opener must not be nil")
		}
		cfg.open = open
		return nil
	}
}

// WithFS resolves file= sources against fsys instead of the operating system
// filesystem.
func WithFS(fsys fs.FS) Option {
	return func(cfg *authConfig) error {
		if fsys == nil {
			return errors.New("filesystem must not be nil")
		}
		cfg.open = func(name string) (io.ReadCloser, error) {
			return fsys.Open(name)
		}
		return nil
	}
}
