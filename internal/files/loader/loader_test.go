package loader

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gamedata/internal/files/filesystem"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var pointSchema = gamedata.SchemaFunc[point](func(raw []byte) (point, error) {
	var p struct {
		X *int `json:"x"`
		Y *int `json:"y"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return point{}, err
	}
	if p.X == nil || p.Y == nil {
		return point{}, errors.New("x and y are required")
	}
	return point{X: *p.X, Y: *p.Y}, nil
})

func newTestLoader(t *testing.T) (*Loader, *filesystem.MemoryFileSystem) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/data")
	return NewLoader(mfs, nil), mfs
}

func TestLoadTable_WithSchema(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("p.json", `{"x": 1, "y": 2, "z": 3}`)

	got, err := LoadTable[point](l, "/data/p.json", pointSchema)
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, got)
}

func TestLoadTable_WithoutSchemaReturnsRawValue(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("a.json", `{"k": [1, "two", null]}`)

	got, err := LoadTable[any](l, "/data/a.json", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": []any{float64(1), "two", nil}}, got)
}

func TestLoadTable_MissingFile(t *testing.T) {
	l, _ := newTestLoader(t)

	_, err := LoadTable[point](l, "/data/missing.json", pointSchema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gamedata.ErrFileAccess))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "/data/missing.json")
}

func TestLoadTable_ReadError(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.SetReadError("locked.json", fs.ErrPermission)

	_, err := LoadTable[point](l, "/data/locked.json", pointSchema)
	assert.True(t, errors.Is(err, gamedata.ErrFileAccess))
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestLoadTable_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		detail  string
	}{
		{"empty file", "", "empty file"},
		{"truncated object", `{"x": 1,`, ""},
		{"trailing garbage", `{"x": 1} }`, ""},
		{"bare word", `hello`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, mfs := newTestLoader(t)
			mfs.AddFile("bad.json", tt.content)

			_, err := LoadTable[point](l, "/data/bad.json", pointSchema)
			require.Error(t, err)
			assert.True(t, errors.Is(err, gamedata.ErrParse), "got %v", err)
			assert.False(t, errors.Is(err, gamedata.ErrValidation))
			if tt.detail != "" {
				assert.Contains(t, err.Error(), tt.detail)
			}
		})
	}
}

func TestLoadTable_SchemaRejection(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("p.json", `{"x": 1}`)

	_, err := LoadTable[point](l, "/data/p.json", pointSchema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gamedata.ErrValidation))
	assert.Contains(t, err.Error(), "x and y are required")
}

func TestLoadTable_ShapeMismatchWithoutSchema(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("p.json", `["not", "an", "object"]`)

	_, err := LoadTable[point](l, "/data/p.json", nil)
	assert.True(t, errors.Is(err, gamedata.ErrValidation))
}

func TestLoadTable_ReadsEveryCall(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("p.json", `{"x": 1, "y": 2}`)

	for i := 0; i < 3; i++ {
		_, err := LoadTable[point](l, "/data/p.json", pointSchema)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, mfs.Reads("p.json"))
}

func TestLoadTableAsync_MatchesBlocking(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("p.json", `{"x": 4, "y": 5}`)
	mfs.AddFile("bad.json", `{`)

	res, ok := <-LoadTableAsync[point](context.Background(), l, "/data/p.json", pointSchema)
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, point{X: 4, Y: 5}, res.Value)

	ch := LoadTableAsync[point](context.Background(), l, "/data/bad.json", pointSchema)
	res = <-ch
	assert.True(t, errors.Is(res.Err, gamedata.ErrParse))
	_, open := <-ch
	assert.False(t, open, "channel should be closed after one result")
}

func TestLoadTableAsync_CancelledBeforeRead(t *testing.T) {
	l, mfs := newTestLoader(t)
	mfs.AddFile("p.json", `{"x": 4, "y": 5}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := <-LoadTableAsync[point](ctx, l, "/data/p.json", pointSchema)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, 0, mfs.Reads("p.json"))
}

func TestNewLoader_NilFilesystemPanics(t *testing.T) {
	assert.Panics(t, func() { NewLoader(nil, nil) })
}
