package cli

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/gamedata/internal/tui"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load and validate every game table",
	Long: `Load every game table for the configured locales, validate it against its
schema and print the number of entries per table and locale.

Range is locale-invariant and is read from the original locale (zh-CN) only.
Trait translations are loaded too unless --no-traits is given; a missing or
invalid trait file only yields an empty translation set for its locale.

Examples:
  # Load all locales from a checkout of the game data
  gamedata load --root ./ArknightsGameData

  # Load English and Chinese only, reading files concurrently
  gamedata load --locale en-US,zh-CN --concurrent

  # Machine-readable summary
  gamedata load --json`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

var loadFlags struct {
	concurrent bool
	json       bool
	noTraits   bool
}

func resetLoadFlags() {
	loadFlags.concurrent = false
	loadFlags.json = false
	loadFlags.noTraits = false
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolVar(&loadFlags.concurrent, "concurrent", false, "Read table files concurrently")
	loadCmd.Flags().BoolVar(&loadFlags.json, "json", false, "Print the summary as JSON")
	loadCmd.Flags().BoolVar(&loadFlags.noTraits, "no-traits", false, "Skip trait translations")
}

// loadSummary is the --json output of load.
type loadSummary struct {
	Locales []string                  `json:"locales"`
	Tables  map[string]map[string]int `json:"tables"`
	Traits  map[string]int            `json:"traits,omitempty"`
}

func runLoad(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{concurrent: loadFlags.concurrent})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := commandContext(cmd)
	svc := a.service
	cache := gamedata.NewCache()

	tables, err := cache.LoadTables(ctx, svc.Locales(), svc.Load)
	if err != nil {
		return err
	}

	var traits gamedata.TraitLocalesMap
	if !loadFlags.noTraits {
		traits, err = cache.LoadTraits(ctx, svc.TranslatedLocales(), svc.LoadTraits)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case loadFlags.json:
		return writeLoadJSON(out, svc.Locales(), tables, traits)
	case tui.Styled(out):
		writeLoadStyled(out, svc.Locales(), tables, traits)
	default:
		writeLoadPlain(out, svc.Locales(), tables, traits)
	}
	return nil
}

func writeLoadJSON(w io.Writer, locales []gamedata.GameLocale, tables *gamedata.GameTableMap, traits gamedata.TraitLocalesMap) error {
	summary := loadSummary{Tables: map[string]map[string]int{}}
	for _, l := range locales {
		summary.Locales = append(summary.Locales, string(l))
	}
	for kind, counts := range tableEntries(tables) {
		byLocale := make(map[string]int, len(counts))
		for l, n := range counts {
			byLocale[string(l)] = n
		}
		summary.Tables[string(kind)] = byLocale
	}
	if traits != nil {
		summary.Traits = make(map[string]int, len(traits))
		for l, m := range traits {
			summary.Traits[string(l)] = len(m)
		}
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func loadRows(locales []gamedata.GameLocale, tables *gamedata.GameTableMap) [][]string {
	entries := tableEntries(tables)
	rows := make([][]string, 0, len(entries))
	for _, kind := range gamedata.TableKinds() {
		row := []string{string(kind)}
		for _, l := range locales {
			row = append(row, countCell(entries[kind], l))
		}
		rows = append(rows, row)
	}
	return rows
}

func writeLoadStyled(w io.Writer, locales []gamedata.GameLocale, tables *gamedata.GameTableMap, traits gamedata.TraitLocalesMap) {
	fmt.Fprintln(w, tui.RenderTable("Game tables", localeHeaders("Table", locales), loadRows(locales, tables)))
	if traits != nil {
		fmt.Fprintln(w, tui.RenderTable("Trait translations", []string{"Locale", "Entries"}, traitRows(traits)))
	}
	fmt.Fprintln(w, tui.Success(fmt.Sprintf("Loaded %d tables for %d locales", len(gamedata.TableKinds()), len(locales))))
}

func writeLoadPlain(w io.Writer, locales []gamedata.GameLocale, tables *gamedata.GameTableMap, traits gamedata.TraitLocalesMap) {
	for _, row := range loadRows(locales, tables) {
		parts := make([]string, 0, len(locales))
		for i, l := range locales {
			parts = append(parts, fmt.Sprintf("%s=%s", l, row[i+1]))
		}
		fmt.Fprintf(w, "%-12s %s\n", row[0], strings.Join(parts, " "))
	}
	if traits != nil {
		writeTraitsPlain(w, traits)
	}
}
