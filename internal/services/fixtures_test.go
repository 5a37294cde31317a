package services

import (
	"fmt"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gamedata/internal/files/filesystem"
	"github.com/vvka-141/gamedata/internal/files/loader"
	"github.com/vvka-141/gamedata/internal/logging"
	"github.com/vvka-141/gamedata/pkg/gamedata"
	"github.com/vvka-141/gamedata/pkg/gamedata/raw"
)

const testRoot = "/data"

func strPtr(s string) *string { return &s }

// sampleTables returns one small, valid value per table kind, with names
// tagged by locale so per-locale results can be told apart.
func sampleTables(locale gamedata.GameLocale) map[gamedata.TableKind]any {
	return map[gamedata.TableKind]any{
		gamedata.TableOperator: raw.CharacterTable{
			"char_002_amiya": {
				Name:       fmt.Sprintf("Amiya (%s)", locale),
				Position:   "RANGED",
				Rarity:     "TIER_5",
				Profession: "CASTER",
				Phases:     []raw.CharacterPhase{{CharacterPrefabKey: "char_002_amiya", RangeID: strPtr("1-1"), MaxLevel: 50}},
				Skills: []raw.CharacterSkill{{
					SkillID:    strPtr("skchr_amiya_1"),
					UnlockCond: raw.UnlockCondition{Phase: "PHASE_0", Level: 1},
				}},
			},
		},
		gamedata.TableOutfit: raw.SkinTable{
			CharSkins: map[string]raw.Skin{
				"char_002_amiya#1": {SkinID: "char_002_amiya#1", CharID: "char_002_amiya"},
			},
			BuildinEvolveMap: map[string]map[string]string{"char_002_amiya": {"0": "char_002_amiya#1"}},
			BuildinPatchMap:  map[string]map[string]string{},
		},
		gamedata.TableRange: raw.RangeTable{
			"1-1": {ID: "1-1", Direction: 1, Grids: []raw.Grid{{Row: 0, Col: 0}}},
		},
		gamedata.TableSkill: raw.SkillTable{
			"skchr_amiya_1": {
				SkillID: "skchr_amiya_1",
				Levels: []raw.SkillLevel{{
					Name:       fmt.Sprintf("Tactical Chant (%s)", locale),
					SPData:     raw.SPData{SPCost: 30, InitSP: 10},
					Blackboard: []raw.Blackboard{{Key: "atk", Value: 0.3}},
				}},
			},
		},
		gamedata.TableUniEquip: raw.UniEquipTable{
			EquipDict: map[string]raw.UniEquip{
				"uniequip_001_amiya": {UniEquipID: "uniequip_001_amiya", UniEquipName: "Original", CharID: "char_002_amiya"},
			},
			CharEquip: map[string][]string{"char_002_amiya": {"uniequip_001_amiya"}},
		},
		gamedata.TableBattleEquip: raw.BattleEquipTable{
			"uniequip_002_amiya": {Phases: []raw.BattleEquipPhase{{EquipLevel: 1}}},
		},
	}
}

// writeTables stores sampleTables for every locale under root and returns
// what was written.
func writeTables(t *testing.T, mfs *filesystem.MemoryFileSystem, locales []gamedata.GameLocale) map[gamedata.GameLocale]map[gamedata.TableKind]any {
	t.Helper()
	written := make(map[gamedata.GameLocale]map[gamedata.TableKind]any, len(locales))
	for _, locale := range locales {
		tables := sampleTables(locale)
		for kind, value := range tables {
			data, err := json.Marshal(value)
			require.NoError(t, err)
			mfs.AddFile(filepath.Join(testRoot, locale.DirName(), kind.Location()), string(data))
		}
		written[locale] = tables
	}
	return written
}

func writeTraits(mfs *filesystem.MemoryFileSystem, locale gamedata.TranslatedLocale, content string) {
	mfs.AddFile(filepath.Join(gamedata.DefaultLocalesDir, string(locale), gamedata.TraitFileName), content)
}

func newTestService(t *testing.T, mfs *filesystem.MemoryFileSystem, cfg TableConfig) *TableService {
	t.Helper()
	resolver, err := loader.NewResolver(testRoot)
	require.NoError(t, err)
	logger := logging.NewNullLogger()
	return NewTableService(resolver, loader.NewLoader(mfs, logger), logger, cfg)
}
