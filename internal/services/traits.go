package services

import (
	"context"
	"path/filepath"

	"github.com/vvka-141/gamedata/internal/files/loader"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

// TraitPath returns the trait translation file of a translated locale.
// It lives under the locales directory, not under the game data root.
func (s *TableService) TraitPath(locale gamedata.TranslatedLocale) string {
	return filepath.Join(s.localesDir, string(locale), gamedata.TraitFileName)
}

// LoadTraitLocales reads the trait translations of every translated locale
// in order. A locale whose file is missing or invalid gets an empty map;
// the failure is logged and never returned.
func (s *TableService) LoadTraitLocales() gamedata.TraitLocalesMap {
	m := make(gamedata.TraitLocalesMap, len(s.translated))
	for _, locale := range s.translated {
		traits, err := loader.LoadTable(s.loader, s.TraitPath(locale), s.traitSchema)
		m[locale] = s.traitsOrEmpty(locale, traits, err)
	}
	return m
}

// LoadTraitLocalesConcurrent reads every trait file at once and applies the
// same per-locale fallback as LoadTraitLocales. When ctx is done it returns
// ctx.Err() and no map.
func (s *TableService) LoadTraitLocalesConcurrent(ctx context.Context) (gamedata.TraitLocalesMap, error) {
	pending := make([]<-chan loader.Result[map[string]string], len(s.translated))
	for i, locale := range s.translated {
		pending[i] = loader.LoadTableAsync(ctx, s.loader, s.TraitPath(locale), s.traitSchema)
	}

	results := make([]loader.Result[map[string]string], len(s.translated))
	for i := range s.translated {
		results[i] = <-pending[i]
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := make(gamedata.TraitLocalesMap, len(s.translated))
	for i, locale := range s.translated {
		m[locale] = s.traitsOrEmpty(locale, results[i].Value, results[i].Err)
	}
	return m, nil
}

// LoadTraits dispatches on the configured concurrency like Load.
func (s *TableService) LoadTraits(ctx context.Context) (gamedata.TraitLocalesMap, error) {
	if s.concurrent {
		return s.LoadTraitLocalesConcurrent(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.LoadTraitLocales(), nil
}

func (s *TableService) traitsOrEmpty(locale gamedata.TranslatedLocale, traits map[string]string, err error) map[string]string {
	if err != nil {
		s.logger.Info("No trait translations for %s: %v", locale, err)
		return map[string]string{}
	}
	if traits == nil {
		return map[string]string{}
	}
	s.logger.Verbose("Loaded %d trait translations for %s", len(traits), locale)
	return traits
}
