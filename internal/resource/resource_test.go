package resource

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestFS_Open(t *testing.T) {
	fsys := fstest.MapFS{
		"request.json":       {Data: []byte(`{"a":1}`)},
		"geode/request.json": {Data: []byte(`{"b":2}`)},
		"geode/other/x.json": {Data: []byte(`{}`)},
	}
	l := FS(fsys)
	ctx := context.Background()

	t.Run("top level", func(t *testing.T) {
		rc, err := l.Open(ctx, "request.json")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, readAll(t, rc))
	})

	t.Run("nested name", func(t *testing.T) {
		rc, err := l.Open(ctx, "geode/request.json")
		require.NoError(t, err)
		assert.Equal(t, `{"b":2}`, readAll(t, rc))
	})

	for _, name := range []string{"missing.json", "../request.json", "/request.json", "", ".", "geode", "geode/other"} {
		t.Run("not found "+name, func(t *testing.T) {
			rc, err := l.Open(ctx, name)
			assert.Nil(t, rc)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := l.Open(cctx, "request.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDir_Open(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "on-disk.json"), []byte(`{"disk":true}`), 0o600))

	l := Dir(dir)

	rc, err := l.Open(context.Background(), "on-disk.json")
	require.NoError(t, err)
	assert.Equal(t, `{"disk":true}`, readAll(t, rc))

	_, err = l.Open(context.Background(), "absent.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

type errLoader struct{ err error }

func (l errLoader) Open(context.Context, string) (io.ReadCloser, error) { return nil, l.err }

func TestChain_Open(t *testing.T) {
	first := FS(fstest.MapFS{"shared.json": {Data: []byte("first")}})
	second := FS(fstest.MapFS{
		"shared.json": {Data: []byte("second")},
		"only.json":   {Data: []byte("only second")},
	})
	ctx := context.Background()

	t.Run("first match wins", func(t *testing.T) {
		rc, err := Chain(first, second).Open(ctx, "shared.json")
		require.NoError(t, err)
		assert.Equal(t, "first", readAll(t, rc))
	})

	t.Run("falls through on not found", func(t *testing.T) {
		rc, err := Chain(first, second).Open(ctx, "only.json")
		require.NoError(t, err)
		assert.Equal(t, "only second", readAll(t, rc))
	})

	t.Run("nobody has it", func(t *testing.T) {
		_, err := Chain(first, second).Open(ctx, "nowhere.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := Chain().Open(ctx, "anything.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other errors stop the search", func(t *testing.T) {
		boom := errors.New("connection refused")
		_, err := Chain(errLoader{err: boom}, second).Open(ctx, "only.json")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
