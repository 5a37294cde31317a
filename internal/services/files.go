package services

import "github.com/vvka-141/gamedata/pkg/gamedata"

// TraitsKind labels trait translation files in a file listing.
const TraitsKind = "Traits"

// TableFile is one file a load reads.
type TableFile struct {
	Kind   string `json:"kind"`
	Locale string `json:"locale"`
	Path   string `json:"path"`
}

// Files lists every file LoadAllGameTables and LoadTraitLocales read, in
// read order: table kinds in kind order, then trait files.
func (s *TableService) Files() []TableFile {
	var files []TableFile
	for _, kind := range gamedata.TableKinds() {
		if kind.LocaleInvariant() {
			files = append(files, TableFile{
				Kind:   string(kind),
				Locale: string(gamedata.OriginalLocale),
				Path:   s.TablePath(gamedata.OriginalLocale, kind),
			})
			continue
		}
		for _, locale := range s.locales {
			files = append(files, TableFile{
				Kind:   string(kind),
				Locale: string(locale),
				Path:   s.TablePath(locale, kind),
			})
		}
	}
	for _, locale := range s.translated {
		files = append(files, TableFile{
			Kind:   TraitsKind,
			Locale: string(locale),
			Path:   s.TraitPath(locale),
		})
	}
	return files
}
