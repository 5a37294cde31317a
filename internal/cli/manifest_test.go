package cli

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gamedata/internal/checksum"
	"github.com/vvka-141/gamedata/internal/files/filesystem"
	"github.com/vvka-141/gamedata/internal/files/scanner"
	"github.com/vvka-141/gamedata/internal/services"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

func TestBuildManifest(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("/data/zh_CN/a.json", `{"a": 1}`)

	entries := buildManifest(scanner.NewScannerWithFS(checksum.New(), mfs), []services.TableFile{
		{Kind: "Operator", Locale: "zh-CN", Path: "/data/zh_CN/a.json"},
		{Kind: "Operator", Locale: "en-US", Path: "/data/en_US/a.json"},
	})

	require.Len(t, entries, 2)
	assert.False(t, entries[0].Missing)
	assert.Equal(t, int64(8), entries[0].Size)
	assert.Equal(t, checksum.New().CalculateRaw([]byte(`{"a": 1}`)), entries[0].SHA256)
	assert.Equal(t, checksum.New().CalculateRaw([]byte(`{"a":1}`)), entries[0].Normalized)
	assert.NotNil(t, entries[0].ModifiedAt)
	assert.True(t, entries[1].Missing)
	assert.Nil(t, entries[1].ModifiedAt)
	assert.Empty(t, entries[1].SHA256)
}

func TestManifest_JSON(t *testing.T) {
	resetManifestFlags()
	manifestFlags.json = true
	defer resetManifestFlags()
	setupDataCommand(t, gamedata.LocaleZhCN)
	rootFlags.locales = []string{"zh-CN", "en-US"}

	var buf bytes.Buffer
	manifestCmd.SetOut(&buf)
	defer manifestCmd.SetOut(nil)
	require.NoError(t, runManifest(manifestCmd, nil))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	// five kinds for two locales, one Range, three trait files
	require.Len(t, entries, 14)

	var missing, present int
	for _, e := range entries {
		if e["missing"] == true {
			missing++
		} else {
			present++
			assert.Len(t, e["sha256"], 64)
		}
	}
	// zh-CN tables are present; en-US tables and trait files are not
	assert.Equal(t, 6, present)
	assert.Equal(t, 8, missing)
}

func TestManifest_Plain(t *testing.T) {
	resetManifestFlags()
	setupDataCommand(t, gamedata.GameLocales()...)

	var buf bytes.Buffer
	manifestCmd.SetOut(&buf)
	defer manifestCmd.SetOut(nil)
	require.NoError(t, runManifest(manifestCmd, nil))

	assert.Contains(t, buf.String(), "character_table.json")
	assert.Contains(t, buf.String(), "traits.json missing")
}
