package gamedata

import (
	"fmt"
	"strings"

	"github.com/vvka-141/gamedata/pkg/gamedata/raw"
)

// TableKind names one of the fixed game data tables.
type TableKind string

const (
	TableOperator    TableKind = "Operator"
	TableOutfit      TableKind = "Outfit"
	TableRange       TableKind = "Range"
	TableSkill       TableKind = "Skill"
	TableUniEquip    TableKind = "UniEquip"
	TableBattleEquip TableKind = "BattleEquip"
)

var tableKinds = []TableKind{
	TableOperator,
	TableOutfit,
	TableRange,
	TableSkill,
	TableUniEquip,
	TableBattleEquip,
}

var tableLocations = map[TableKind]string{
	TableOperator:    "gamedata/excel/character_table.json",
	TableOutfit:      "gamedata/excel/skin_table.json",
	TableRange:       "gamedata/excel/range_table.json",
	TableSkill:       "gamedata/excel/skill_table.json",
	TableUniEquip:    "gamedata/excel/uniequip_table.json",
	TableBattleEquip: "gamedata/excel/battle_equip_table.json",
}

// TableKinds returns every table kind in load order.
func TableKinds() []TableKind {
	out := make([]TableKind, len(tableKinds))
	copy(out, tableKinds)
	return out
}

// ParseTableKind matches s against the table kinds, ignoring case.
func ParseTableKind(s string) (TableKind, error) {
	s = strings.TrimSpace(s)
	for _, k := range tableKinds {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown table kind %q", ErrConfiguration, s)
}

// Location is the table file path relative to a locale directory.
func (k TableKind) Location() string {
	return tableLocations[k]
}

// LocaleInvariant reports whether the table is read from the original
// locale only.
func (k TableKind) LocaleInvariant() bool {
	return k == TableRange
}

func (k TableKind) String() string { return string(k) }

// LocaleTableMap holds one table value per game locale.
type LocaleTableMap[T any] map[GameLocale]T

// Locales returns the map keys in enumeration order.
func (m LocaleTableMap[T]) Locales() []GameLocale {
	var out []GameLocale
	for _, l := range gameLocales {
		if _, ok := m[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// hasExactly reports whether the key set equals locales.
func (m LocaleTableMap[T]) hasExactly(locales []GameLocale) bool {
	if m == nil || len(m) != len(locales) {
		return false
	}
	for _, l := range locales {
		if _, ok := m[l]; !ok {
			return false
		}
	}
	return true
}

// GameTableMap is the full aggregate of game tables.
// Range is locale-invariant and holds a single value from the original locale.
type GameTableMap struct {
	Operator    LocaleTableMap[raw.CharacterTable]
	Outfit      LocaleTableMap[raw.SkinTable]
	Range       raw.RangeTable
	Skill       LocaleTableMap[raw.SkillTable]
	UniEquip    LocaleTableMap[raw.UniEquipTable]
	BattleEquip LocaleTableMap[raw.BattleEquipTable]
}

// Check reports ErrIncomplete unless every table kind is present and every
// per-locale table covers exactly locales.
func (m *GameTableMap) Check(locales []GameLocale) error {
	if m == nil {
		return fmt.Errorf("%w: no tables", ErrIncomplete)
	}
	if len(locales) == 0 {
		return fmt.Errorf("%w: no locales", ErrIncomplete)
	}

	var missing []string
	if !m.Operator.hasExactly(locales) {
		missing = append(missing, string(TableOperator))
	}
	if !m.Outfit.hasExactly(locales) {
		missing = append(missing, string(TableOutfit))
	}
	if m.Range == nil {
		missing = append(missing, string(TableRange))
	}
	if !m.Skill.hasExactly(locales) {
		missing = append(missing, string(TableSkill))
	}
	if !m.UniEquip.hasExactly(locales) {
		missing = append(missing, string(TableUniEquip))
	}
	if !m.BattleEquip.hasExactly(locales) {
		missing = append(missing, string(TableBattleEquip))
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s do not cover locales [%s]",
			ErrIncomplete, strings.Join(missing, ", "), joinLocales(locales))
	}
	return nil
}

// TraitLocalesMap holds trait translations (trait key to text) per
// translated locale. A locale whose file could not be loaded maps to an
// empty, non-nil map.
type TraitLocalesMap map[TranslatedLocale]map[string]string

// Check reports ErrIncomplete unless there is exactly one non-nil entry
// per locale in locales.
func (m TraitLocalesMap) Check(locales []TranslatedLocale) error {
	if len(m) != len(locales) {
		return fmt.Errorf("%w: %d trait locales, want %d", ErrIncomplete, len(m), len(locales))
	}
	for _, l := range locales {
		if v, ok := m[l]; !ok || v == nil {
			return fmt.Errorf("%w: trait locale %s missing", ErrIncomplete, l)
		}
	}
	return nil
}
