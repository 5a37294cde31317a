package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireLocaleAndKind validates that exactly a locale and a table kind are provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireLocaleAndKind(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required argument: <locale> <kind>

Usage: %s

Example:
  %s en-US Operator

Locales: zh-CN, en-US, ja-JP, ko-KR
Kinds:   Operator, Outfit, Range, Skill, UniEquip, BattleEquip`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}
