package cli

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/gamedata/internal/tui"
	"github.com/vvka-141/gamedata/pkg/gamedata"
)

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "Load trait translations",
	Long: `Load <locales-dir>/<locale>/traits.json for every translated locale
(en-TL, ja-TL, ko-TL) and print the number of entries per locale.

Missing or invalid files are not errors: the locale gets no entries and the
reason is logged.

Examples:
  gamedata traits
  gamedata traits --locales-dir ./i18n --json`,
	Args: cobra.NoArgs,
	RunE: runTraits,
}

var traitsFlags struct {
	concurrent bool
	json       bool
}

func resetTraitsFlags() {
	traitsFlags.concurrent = false
	traitsFlags.json = false
}

func init() {
	rootCmd.AddCommand(traitsCmd)
	traitsCmd.Flags().BoolVar(&traitsFlags.concurrent, "concurrent", false, "Read trait files concurrently")
	traitsCmd.Flags().BoolVar(&traitsFlags.json, "json", false, "Print entry counts as JSON")
}

func runTraits(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{concurrent: traitsFlags.concurrent, rootOptional: true})
	if err != nil {
		return err
	}
	defer a.Close()

	traits, err := a.service.LoadTraits(commandContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case traitsFlags.json:
		counts := make(map[string]int, len(traits))
		for l, m := range traits {
			counts[string(l)] = len(m)
		}
		data, err := json.MarshalIndent(counts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode trait counts: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case tui.Styled(out):
		fmt.Fprintln(out, tui.RenderTable("Trait translations", []string{"Locale", "Entries"}, traitRows(traits)))
	default:
		writeTraitsPlain(out, traits)
	}
	return nil
}

func traitRows(traits gamedata.TraitLocalesMap) [][]string {
	var rows [][]string
	for _, l := range gamedata.TranslatedLocales() {
		m, ok := traits[l]
		if !ok {
			continue
		}
		rows = append(rows, []string{string(l), strconv.Itoa(len(m))})
	}
	return rows
}

func writeTraitsPlain(w io.Writer, traits gamedata.TraitLocalesMap) {
	for _, row := range traitRows(traits) {
		fmt.Fprintf(w, "%-12s %s=%s\n", "Traits", row[0], row[1])
	}
}
