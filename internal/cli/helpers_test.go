package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gamedata/pkg/gamedata"
)

var tableFixtures = map[gamedata.TableKind]string{
	gamedata.TableOperator: `{
  "char_002_amiya": {"name": "Amiya", "position": "RANGED", "rarity": "TIER_5", "profession": "CASTER"},
  "char_285_medic2": {"name": "Lancet-2", "position": "RANGED", "rarity": "TIER_1", "profession": "MEDIC"}
}`,
	gamedata.TableOutfit:      `{"charSkins": {"char_002_amiya#1": {"skinId": "char_002_amiya#1", "charId": "char_002_amiya"}}}`,
	gamedata.TableRange:       `{"1-1": {"id": "1-1", "direction": 1, "grids": [{"row": 0, "col": 0}]}}`,
	gamedata.TableSkill:       `{"skchr_amiya_1": {"skillId": "skchr_amiya_1", "levels": [{"name": "Tactical Chant"}]}}`,
	gamedata.TableUniEquip:    `{"equipDict": {"uniequip_001_amiya": {"uniEquipId": "uniequip_001_amiya", "uniEquipName": "Original", "charId": "char_002_amiya"}}}`,
	gamedata.TableBattleEquip: `{"uniequip_002_amiya": {"phases": [{"equipLevel": 1}]}}`,
}

// setupDataCommand points the root flags at a fresh game data tree for the
// given locales and isolates the test from the caller's environment.
func setupDataCommand(t *testing.T, locales ...gamedata.GameLocale) string {
	t.Helper()
	resetRootFlags()
	t.Cleanup(resetRootFlags)

	for _, name := range []string{"GAME_DATA_ROOT_PATH", "GAME_DATA_LOCALES_DIR", "GAME_DATA_LOCALES", "GAME_DATA_CONCURRENT", "GAME_DATA_LOG_FILE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Setenv("GAMEDATA_PLAIN", "1")

	base := t.TempDir()
	root := filepath.Join(base, "data")
	for _, l := range locales {
		for kind, content := range tableFixtures {
			writeFile(t, filepath.Join(root, l.DirName(), kind.Location()), content)
		}
	}

	rootFlags.configDir = base
	rootFlags.root = root
	rootFlags.localesDir = filepath.Join(base, "locales")
	return base
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
