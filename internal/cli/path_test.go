package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gamedata/pkg/gamedata"
)

func runPathCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	pathCmd.SetOut(&buf)
	t.Cleanup(func() { pathCmd.SetOut(nil) })
	err := runPath(pathCmd, args)
	return strings.TrimSpace(buf.String()), err
}

func TestPath_ResolvesLocaleDirectory(t *testing.T) {
	setupDataCommand(t)

	out, err := runPathCapture(t, "en-US", "operator")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootFlags.root, "en_US", "gamedata/excel/character_table.json"), out)
}

func TestPath_RangeUsesOriginalLocale(t *testing.T) {
	setupDataCommand(t)

	out, err := runPathCapture(t, "ja-JP", "Range")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootFlags.root, "zh_CN", "gamedata/excel/range_table.json"), out)
}

func TestPath_InvalidArguments(t *testing.T) {
	setupDataCommand(t)

	_, err := runPathCapture(t, "en_US", "Operator")
	assert.Equal(t, gamedata.ExitConfigError, gamedata.ExitCodeForError(err))

	_, err = runPathCapture(t, "en-US", "Stage")
	assert.Equal(t, gamedata.ExitConfigError, gamedata.ExitCodeForError(err))
}
