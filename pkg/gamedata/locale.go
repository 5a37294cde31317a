package gamedata

import (
	"fmt"
	"strings"
)

// GameLocale identifies a language/region build of the primary game data.
type GameLocale string

const (
	LocaleZhCN GameLocale = "zh-CN"
	LocaleEnUS GameLocale = "en-US"
	LocaleJaJP GameLocale = "ja-JP"
	LocaleKoKR GameLocale = "ko-KR"

	// OriginalLocale is the source locale every other build is derived from.
	// Locale-invariant tables are only read from here.
	OriginalLocale = LocaleZhCN
)

var gameLocales = []GameLocale{LocaleZhCN, LocaleEnUS, LocaleJaJP, LocaleKoKR}

// GameLocales returns every supported game locale in enumeration order.
// The returned slice is a copy and may be modified by the caller.
func GameLocales() []GameLocale {
	out := make([]GameLocale, len(gameLocales))
	copy(out, gameLocales)
	return out
}

// ParseGameLocale validates s against the supported game locales.
func ParseGameLocale(s string) (GameLocale, error) {
	s = strings.TrimSpace(s)
	for _, l := range gameLocales {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown game locale %q (supported: %s)", ErrConfiguration, s, joinLocales(gameLocales))
}

// DirName returns the on-disk directory name for the locale.
// Hyphens are replaced by underscores: "zh-CN" is stored under "zh_CN".
func (l GameLocale) DirName() string {
	return strings.ReplaceAll(string(l), "-", "_")
}

func (l GameLocale) String() string { return string(l) }

// TranslatedLocale identifies a human-translated variant of a game locale
// for which auxiliary trait text exists.
type TranslatedLocale string

const (
	LocaleEnTL TranslatedLocale = "en-TL"
	LocaleJaTL TranslatedLocale = "ja-TL"
	LocaleKoTL TranslatedLocale = "ko-TL"
)

var translatedLocales = []TranslatedLocale{LocaleEnTL, LocaleJaTL, LocaleKoTL}

var translatedBase = map[TranslatedLocale]GameLocale{
	LocaleEnTL: LocaleEnUS,
	LocaleJaTL: LocaleJaJP,
	LocaleKoTL: LocaleKoKR,
}

// TranslatedLocales returns every translated locale in enumeration order.
func TranslatedLocales() []TranslatedLocale {
	out := make([]TranslatedLocale, len(translatedLocales))
	copy(out, translatedLocales)
	return out
}

// Base returns the game locale this translation covers.
func (l TranslatedLocale) Base() GameLocale {
	return translatedBase[l]
}

func (l TranslatedLocale) String() string { return string(l) }

func joinLocales(locales []GameLocale) string {
	parts := make([]string, len(locales))
	for i, l := range locales {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
