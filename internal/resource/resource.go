package resource

import (
	"context"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a named resource cannot be located or opened.
var ErrNotFound = errors.New("resource not found")

// Loader resolves a logical, slash-separated resource name to a byte stream.
// The caller must close the returned stream.
type Loader interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type fsLoader struct {
	fsys fs.FS
}

// FS serves resources from any fs.FS, typically an embedded bundle.
func FS(fsys fs.FS) Loader {
	return fsLoader{fsys: fsys}
}

// Dir serves resources from a directory on disk.
func Dir(path string) Loader {
	return fsLoader{fsys: os.DirFS(path)}
}

func (l fsLoader) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) || name == "." {
		return nil, errors.Wrapf(ErrNotFound, "invalid name %q", name)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "%s: %v", name, err)
	}

	// Directories open fine on most fs.FS implementations but are not resources.
	st, err := f.Stat()
	if err != nil || st.IsDir() {
		_ = f.Close()
		return nil, errors.Wrapf(ErrNotFound, "%s: not a regular file", name)
	}
	return f, nil
}

type chain []Loader

// Chain tries each loader in order. The first one that finds the name wins;
// an error other than ErrNotFound stops the search.
func Chain(loaders ...Loader) Loader {
	return chain(loaders)
}

func (c chain) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	for _, l := range c {
		rc, err := l.Open(ctx, name)
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "%s: no loader has it", name)
}
