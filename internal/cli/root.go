package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gamedata",
	Short: "Locale-aware game table loader",
	Long: `gamedata loads the game's excel table exports for every configured locale,
validates each file against its table schema and reports what was loaded.

The game data root holds one directory per locale (zh_CN, en_US, ja_JP, ko_KR).
Trait translations are read from <locales-dir>/<locale>/traits.json.

Configuration is read from gamedata.yaml, .env and GAME_DATA_* environment
variables; flags override all of them.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (for example, no root path)
  11 - A table file could not be read
  12 - A table file is not well-formed JSON
  13 - A table file failed schema validation`,
	SilenceUsage: true,
}

// rootFlags are shared by every command that loads data.
var rootFlags struct {
	configDir  string
	root       string
	localesDir string
	logFile    string
	locales    []string
	verbose    bool
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.configDir, "config", ".", "Directory holding gamedata.yaml and .env")
	flags.StringVar(&rootFlags.root, "root", "", "Game data root directory (overrides $GAME_DATA_ROOT_PATH)")
	flags.StringVar(&rootFlags.localesDir, "locales-dir", "", "Directory of translated locales (default \"locales\")")
	flags.StringVar(&rootFlags.logFile, "log-file", "", "Also write logs to this file, rotated by size")
	flags.StringSliceVar(&rootFlags.locales, "locale", nil, "Game locales to load (repeatable or comma-separated; default all)")
	flags.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
}

func resetRootFlags() {
	rootFlags.configDir = "."
	rootFlags.root = ""
	rootFlags.localesDir = ""
	rootFlags.logFile = ""
	rootFlags.locales = nil
	rootFlags.verbose = false
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
