// Package filesystem holds the afero constructors and small file helpers shared by
// the settings, config and storage packages.
package filesystem

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// NewOSFileSystem returns the afero filesystem backed by real os operations.
func NewOSFileSystem() afero.Fs {
	return afero.NewOsFs()
}

// NewMemoryFileSystem returns an in-memory filesystem for testing.
func NewMemoryFileSystem() afero.Fs {
	return afero.NewMemMapFs()
}

// CloseQuietly closes c and discards any error. Nil closers are ignored.
func CloseQuietly(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("close failed")
	}
}
