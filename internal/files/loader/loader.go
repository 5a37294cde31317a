package loader

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/vvka-141/gamedata/internal/files/filesystem"
	"github.com/vvka-141/gamedata/internal/logging"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

// Loader reads single table files through a FileSystemProvider.
// Safe for concurrent use by multiple goroutines.
type Loader struct {
	fs     filesystem.FileSystemProvider
	logger gamedata.Logger
}

// NewLoader creates a new table loader.
// Panics if fsys is nil; a nil logger discards all messages.
func NewLoader(fsys filesystem.FileSystemProvider, logger gamedata.Logger) *Loader {
	if fsys == nil {
		panic("filesystem provider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Loader{fs: fsys, logger: logger}
}

// Result is the outcome of an asynchronous table read.
type Result[T any] struct {
	Value T
	Err   error
}

// LoadTable reads the file at path, checks that it is well-formed JSON and,
// when schema is non-nil, returns schema.Validate's result. Without a schema
// the content is decoded straight into T.
//
// The file is read on every call.
func LoadTable[T any](l *Loader, path string, schema gamedata.Schema[T]) (T, error) {
	var zero T

	l.logger.Verbose("Reading %s", path)
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", gamedata.ErrFileAccess, path, err)
	}

	if !json.Valid(data) {
		return zero, fmt.Errorf("%w: %s: %s", gamedata.ErrParse, path, syntaxDetail(data))
	}

	if schema == nil {
		var value T
		if err := json.Unmarshal(data, &value); err != nil {
			return zero, fmt.Errorf("%w: %s: %w", gamedata.ErrValidation, path, err)
		}
		return value, nil
	}

	value, err := schema.Validate(data)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", gamedata.ErrValidation, path, err)
	}
	return value, nil
}

// LoadTableAsync starts LoadTable on its own goroutine.
// The returned channel receives exactly one Result and is then closed.
// If ctx is already done when the goroutine starts, the file is not read
// and the Result carries ctx.Err().
func LoadTableAsync[T any](ctx context.Context, l *Loader, path string, schema gamedata.Schema[T]) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		if err := ctx.Err(); err != nil {
			ch <- Result[T]{Err: err}
			return
		}
		value, err := LoadTable(l, path, schema)
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// syntaxDetail describes why data is not valid JSON.
func syntaxDetail(data []byte) string {
	if len(data) == 0 {
		return "empty file"
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}
	return "invalid JSON"
}
