package cli

import (
	"io"
	"strconv"

	"github.com/vvka-141/gamedata/internal/config"
	"github.com/vvka-141/gamedata/internal/files/filesystem"
	"github.com/vvka-141/gamedata/internal/files/loader"
	"github.com/vvka-141/gamedata/internal/logging"
	"github.com/vvka-141/gamedata/internal/services"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

// app is the wiring shared by the data commands.
type app struct {
	cfg     *config.Config
	logger  *logging.ConsoleLogger
	closer  io.Closer
	fs      filesystem.FileSystemProvider
	service *services.TableService
}

// newFileSystem is swapped in tests.
var newFileSystem = func() filesystem.FileSystemProvider {
	return filesystem.NewOSFileSystem()
}

// resolveConfig merges the config file, .env and environment with the
// root flags.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Resolve(rootFlags.configDir)
	if err != nil {
		return nil, err
	}
	if rootFlags.root != "" {
		cfg.RootPath = rootFlags.root
	}
	if rootFlags.localesDir != "" {
		cfg.LocalesDir = rootFlags.localesDir
	}
	if rootFlags.logFile != "" {
		cfg.LogFile = rootFlags.logFile
	}
	if len(rootFlags.locales) > 0 {
		cfg.Locales = rootFlags.locales
	}
	return cfg, nil
}

// appOptions adjust the resolved configuration for one command.
type appOptions struct {
	// concurrent forces the concurrent loaders on; false keeps the configured mode.
	concurrent bool
	// rootOptional lets commands that never read tables run without a root.
	rootOptional bool
}

// newApp resolves configuration and builds the table service.
// Callers must Close the returned app.
func newApp(opts appOptions) (*app, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	if opts.concurrent {
		cfg.Concurrent = true
	}
	if opts.rootOptional && cfg.RootPath == "" {
		cfg.RootPath = "."
	}

	locales, err := cfg.GameLocales()
	if err != nil {
		return nil, err
	}

	resolver, err := loader.NewResolver(cfg.RootPath)
	if err != nil {
		return nil, err
	}

	logger, closer := logging.New(rootFlags.verbose, cfg.LogFile)
	fsys := newFileSystem()

	svc := services.NewTableService(resolver, loader.NewLoader(fsys, logger), logger, services.TableConfig{
		Locales:    locales,
		LocalesDir: cfg.EffectiveLocalesDir(),
		Concurrent: cfg.Concurrent,
	})

	logger.Verbose("Root: %s", resolver.Root())
	logger.Verbose("Locales: %v (concurrent: %v)", locales, cfg.Concurrent)

	return &app{cfg: cfg, logger: logger, closer: closer, fs: fsys, service: svc}, nil
}

func (a *app) Close() {
	if err := a.closer.Close(); err != nil {
		a.logger.Error("Failed to close log file: %v", err)
	}
}

// tableEntries counts the top-level entries of each loaded table.
func tableEntries(m *gamedata.GameTableMap) map[gamedata.TableKind]map[gamedata.GameLocale]int {
	out := map[gamedata.TableKind]map[gamedata.GameLocale]int{
		gamedata.TableOperator:    {},
		gamedata.TableOutfit:      {},
		gamedata.TableRange:       {gamedata.OriginalLocale: len(m.Range)},
		gamedata.TableSkill:       {},
		gamedata.TableUniEquip:    {},
		gamedata.TableBattleEquip: {},
	}
	for l, t := range m.Operator {
		out[gamedata.TableOperator][l] = len(t)
	}
	for l, t := range m.Outfit {
		out[gamedata.TableOutfit][l] = len(t.CharSkins)
	}
	for l, t := range m.Skill {
		out[gamedata.TableSkill][l] = len(t)
	}
	for l, t := range m.UniEquip {
		out[gamedata.TableUniEquip][l] = len(t.EquipDict)
	}
	for l, t := range m.BattleEquip {
		out[gamedata.TableBattleEquip][l] = len(t)
	}
	return out
}

func localeHeaders(first string, locales []gamedata.GameLocale) []string {
	headers := []string{first}
	for _, l := range locales {
		headers = append(headers, string(l))
	}
	return headers
}

func countCell(counts map[gamedata.GameLocale]int, l gamedata.GameLocale) string {
	n, ok := counts[l]
	if !ok {
		return "-"
	}
	return strconv.Itoa(n)
}
