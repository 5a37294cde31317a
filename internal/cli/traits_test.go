package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTraitsCapture(t *testing.T) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	traitsCmd.SetOut(&buf)
	t.Cleanup(func() { traitsCmd.SetOut(nil) })
	err := runTraits(traitsCmd, nil)
	return buf.String(), err
}

func TestTraits_RunsWithoutRoot(t *testing.T) {
	resetTraitsFlags()
	base := setupDataCommand(t)
	rootFlags.root = ""
	writeFile(t, filepath.Join(base, "locales", "ko-TL", "traits.json"), `{"a": "A"}`)

	out, err := runTraitsCapture(t)
	require.NoError(t, err)
	assert.Contains(t, out, "ko-TL=1")
	assert.Contains(t, out, "en-TL=0")
}

func TestTraits_JSON(t *testing.T) {
	resetTraitsFlags()
	traitsFlags.json = true
	traitsFlags.concurrent = true
	defer resetTraitsFlags()
	base := setupDataCommand(t)
	writeFile(t, filepath.Join(base, "locales", "en-TL", "traits.json"), `{"a": "A", "b": "B"}`)
	writeFile(t, filepath.Join(base, "locales", "ja-TL", "traits.json"), `{"a": `)

	out, err := runTraitsCapture(t)
	require.NoError(t, err)

	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, map[string]int{"en-TL": 2, "ja-TL": 0, "ko-TL": 0}, counts)
}
