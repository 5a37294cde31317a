package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/gamedata/pkg/gamedata"
)

var pathCmd = &cobra.Command{
	Use:   "path <locale> <kind>",
	Short: "Print the file a table is read from",
	Long: `Print the path of a table file for a locale. The kind is matched
case-insensitively. Range is locale-invariant, so its path always points
into the original locale directory.

Examples:
  gamedata path en-US Operator
  gamedata path ko-KR skill --root /srv/ArknightsGameData`,
	Args: RequireLocaleAndKind,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	locale, err := gamedata.ParseGameLocale(args[0])
	if err != nil {
		return err
	}
	kind, err := gamedata.ParseTableKind(args[1])
	if err != nil {
		return err
	}

	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	printf(cmd, "%s\n", a.service.TablePath(locale, kind))
	return nil
}
