package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/gamedata/internal/files/loader"
	"github.com/vvka-141/gamedata/internal/schema"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

// TableConfig selects what a TableService loads. Zero values pick defaults.
type TableConfig struct {
	// Locales is the set of game locales to load, in load order.
	// Defaults to gamedata.GameLocales().
	Locales []gamedata.GameLocale

	// TranslatedLocales is the set of trait translation locales.
	// Defaults to gamedata.TranslatedLocales().
	TranslatedLocales []gamedata.TranslatedLocale

	// LocalesDir holds one directory per translated locale.
	// Defaults to gamedata.DefaultLocalesDir.
	LocalesDir string

	// Concurrent makes Load and LoadTraits use the concurrent variants.
	Concurrent bool

	// Schemas overrides the table schemas. Defaults to schema.Tables().
	Schemas *schema.TableSchemas

	// TraitSchema overrides the trait file schema. Defaults to schema.Traits().
	TraitSchema gamedata.Schema[map[string]string]
}

// TableService loads the game tables for a configured set of locales.
//
// Loads are never cached here: every call reads every file again.
// Use gamedata.Cache to keep results.
//
// Thread-Safety: safe for concurrent use; the service holds no mutable state.
type TableService struct {
	resolver    *loader.Resolver
	loader      *loader.Loader
	logger      gamedata.Logger
	locales     []gamedata.GameLocale
	translated  []gamedata.TranslatedLocale
	localesDir  string
	concurrent  bool
	schemas     schema.TableSchemas
	traitSchema gamedata.Schema[map[string]string]
}

// NewTableService creates a TableService.
// Panics on nil dependencies; these are wiring mistakes, not runtime conditions.
func NewTableService(resolver *loader.Resolver, ldr *loader.Loader, logger gamedata.Logger, cfg TableConfig) *TableService {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if ldr == nil {
		panic("loader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &TableService{
		resolver:    resolver,
		loader:      ldr,
		logger:      logger,
		locales:     cfg.Locales,
		translated:  cfg.TranslatedLocales,
		localesDir:  cfg.LocalesDir,
		concurrent:  cfg.Concurrent,
		traitSchema: cfg.TraitSchema,
	}
	if len(s.locales) == 0 {
		s.locales = gamedata.GameLocales()
	}
	if len(s.translated) == 0 {
		s.translated = gamedata.TranslatedLocales()
	}
	if s.localesDir == "" {
		s.localesDir = gamedata.DefaultLocalesDir
	}
	if cfg.Schemas != nil {
		s.schemas = *cfg.Schemas
	} else {
		s.schemas = schema.Tables()
	}
	if s.traitSchema == nil {
		s.traitSchema = schema.Traits()
	}
	return s
}

// Locales returns the configured game locales.
func (s *TableService) Locales() []gamedata.GameLocale {
	out := make([]gamedata.GameLocale, len(s.locales))
	copy(out, s.locales)
	return out
}

// TranslatedLocales returns the configured translated locales.
func (s *TableService) TranslatedLocales() []gamedata.TranslatedLocale {
	out := make([]gamedata.TranslatedLocale, len(s.translated))
	copy(out, s.translated)
	return out
}

// TablePath returns the file a table kind is read from for locale.
// Locale-invariant kinds always resolve under the original locale.
func (s *TableService) TablePath(locale gamedata.GameLocale, kind gamedata.TableKind) string {
	if kind.LocaleInvariant() {
		locale = gamedata.OriginalLocale
	}
	return s.resolver.ResolvePath(locale, kind.Location())
}

// LoadAllLocales loads the table at location for every configured locale,
// one after another in locale order. The first failure is returned and no
// map is produced.
func LoadAllLocales[T any](s *TableService, location string, sch gamedata.Schema[T]) (gamedata.LocaleTableMap[T], error) {
	m := make(gamedata.LocaleTableMap[T], len(s.locales))
	for _, locale := range s.locales {
		value, err := loader.LoadTable(s.loader, s.resolver.ResolvePath(locale, location), sch)
		if err != nil {
			return nil, err
		}
		m[locale] = value
	}
	return m, nil
}

// LoadAllLocalesConcurrent is LoadAllLocales with one goroutine per locale.
// Siblings are not cancelled when one fails; the first error to be returned
// wins and no map is produced.
func LoadAllLocalesConcurrent[T any](ctx context.Context, s *TableService, location string, sch gamedata.Schema[T]) (gamedata.LocaleTableMap[T], error) {
	values := make([]T, len(s.locales))

	var g errgroup.Group
	for i, locale := range s.locales {
		i := i
		path := s.resolver.ResolvePath(locale, location)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := loader.LoadTable(s.loader, path, sch)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := make(gamedata.LocaleTableMap[T], len(s.locales))
	for i, locale := range s.locales {
		m[locale] = values[i]
	}
	return m, nil
}

// LoadAllGameTables loads every table kind, one after another.
// Range is read once from the original locale.
func (s *TableService) LoadAllGameTables() (*gamedata.GameTableMap, error) {
	start := time.Now()
	var (
		m   gamedata.GameTableMap
		err error
	)

	s.logKind(gamedata.TableOperator)
	if m.Operator, err = LoadAllLocales(s, gamedata.TableOperator.Location(), s.schemas.Operator); err != nil {
		return nil, kindError(gamedata.TableOperator, err)
	}
	s.logKind(gamedata.TableOutfit)
	if m.Outfit, err = LoadAllLocales(s, gamedata.TableOutfit.Location(), s.schemas.Outfit); err != nil {
		return nil, kindError(gamedata.TableOutfit, err)
	}
	s.logKind(gamedata.TableRange)
	if m.Range, err = loader.LoadTable(s.loader, s.TablePath(gamedata.OriginalLocale, gamedata.TableRange), s.schemas.Range); err != nil {
		return nil, kindError(gamedata.TableRange, err)
	}
	s.logKind(gamedata.TableSkill)
	if m.Skill, err = LoadAllLocales(s, gamedata.TableSkill.Location(), s.schemas.Skill); err != nil {
		return nil, kindError(gamedata.TableSkill, err)
	}
	s.logKind(gamedata.TableUniEquip)
	if m.UniEquip, err = LoadAllLocales(s, gamedata.TableUniEquip.Location(), s.schemas.UniEquip); err != nil {
		return nil, kindError(gamedata.TableUniEquip, err)
	}
	s.logKind(gamedata.TableBattleEquip)
	if m.BattleEquip, err = LoadAllLocales(s, gamedata.TableBattleEquip.Location(), s.schemas.BattleEquip); err != nil {
		return nil, kindError(gamedata.TableBattleEquip, err)
	}

	s.logger.Info("Loaded %d tables for %d locales in %v", len(gamedata.TableKinds()), len(s.locales), time.Since(start).Round(time.Millisecond))
	return &m, nil
}

// LoadAllGameTablesConcurrent loads every table kind at once.
// The aggregate is assembled only after all loads succeed.
func (s *TableService) LoadAllGameTablesConcurrent(ctx context.Context) (*gamedata.GameTableMap, error) {
	start := time.Now()
	var (
		m gamedata.GameTableMap
		g errgroup.Group
	)

	// each goroutine writes only its own field of m
	g.Go(func() (err error) {
		s.logKind(gamedata.TableOperator)
		m.Operator, err = LoadAllLocalesConcurrent(ctx, s, gamedata.TableOperator.Location(), s.schemas.Operator)
		return kindError(gamedata.TableOperator, err)
	})
	g.Go(func() (err error) {
		s.logKind(gamedata.TableOutfit)
		m.Outfit, err = LoadAllLocalesConcurrent(ctx, s, gamedata.TableOutfit.Location(), s.schemas.Outfit)
		return kindError(gamedata.TableOutfit, err)
	})
	g.Go(func() error {
		s.logKind(gamedata.TableRange)
		res := <-loader.LoadTableAsync(ctx, s.loader, s.TablePath(gamedata.OriginalLocale, gamedata.TableRange), s.schemas.Range)
		m.Range = res.Value
		return kindError(gamedata.TableRange, res.Err)
	})
	g.Go(func() (err error) {
		s.logKind(gamedata.TableSkill)
		m.Skill, err = LoadAllLocalesConcurrent(ctx, s, gamedata.TableSkill.Location(), s.schemas.Skill)
		return kindError(gamedata.TableSkill, err)
	})
	g.Go(func() (err error) {
		s.logKind(gamedata.TableUniEquip)
		m.UniEquip, err = LoadAllLocalesConcurrent(ctx, s, gamedata.TableUniEquip.Location(), s.schemas.UniEquip)
		return kindError(gamedata.TableUniEquip, err)
	})
	g.Go(func() (err error) {
		s.logKind(gamedata.TableBattleEquip)
		m.BattleEquip, err = LoadAllLocalesConcurrent(ctx, s, gamedata.TableBattleEquip.Location(), s.schemas.BattleEquip)
		return kindError(gamedata.TableBattleEquip, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Loaded %d tables for %d locales in %v", len(gamedata.TableKinds()), len(s.locales), time.Since(start).Round(time.Millisecond))
	return &m, nil
}

// Load runs LoadAllGameTablesConcurrent when the service is configured
// for concurrency and LoadAllGameTables otherwise.
func (s *TableService) Load(ctx context.Context) (*gamedata.GameTableMap, error) {
	if s.concurrent {
		return s.LoadAllGameTablesConcurrent(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.LoadAllGameTables()
}

func (s *TableService) logKind(kind gamedata.TableKind) {
	if kind.LocaleInvariant() {
		s.logger.Verbose("Loading %s table from %s", kind, gamedata.OriginalLocale)
		return
	}
	s.logger.Verbose("Loading %s table for %d locales", kind, len(s.locales))
}

func kindError(kind gamedata.TableKind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("loading %s table: %w", kind, err)
}
