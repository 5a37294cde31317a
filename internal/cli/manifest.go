package cli

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/gamedata/internal/checksum"
	"github.com/vvka-141/gamedata/internal/files/scanner"
	"github.com/vvka-141/gamedata/internal/services"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List every file a load reads, with size and checksum",
	Long: `List every table and trait file that 'gamedata load' reads for the
configured locales, with its size and SHA-256, or "missing" when the file
cannot be read.

The normalized checksum (--json only) ignores JSON formatting, so a
re-indented export keeps the same value.

Examples:
  gamedata manifest
  gamedata manifest --json > manifest.json`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

var manifestFlags struct {
	json bool
}

func resetManifestFlags() {
	manifestFlags.json = false
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().BoolVar(&manifestFlags.json, "json", false, "Print the manifest as JSON")
}

// manifestEntry describes one file of the manifest.
type manifestEntry struct {
	services.TableFile
	Missing    bool       `json:"missing,omitempty"`
	Size       int64      `json:"size,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	SHA256     string     `json:"sha256,omitempty"`
	Normalized string     `json:"normalized_sha256,omitempty"`
}

func runManifest(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	entries := buildManifest(scanner.NewScannerWithFS(checksum.New(), a.fs), a.service.Files())

	out := cmd.OutOrStdout()
	if manifestFlags.json {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	writeManifestPlain(out, entries)
	return nil
}

func buildManifest(s *scanner.Scanner, files []services.TableFile) []manifestEntry {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}

	entries := make([]manifestEntry, 0, len(files))
	for i, rec := range s.ScanFiles(paths) {
		entry := manifestEntry{TableFile: files[i], Missing: rec.Missing}
		if !rec.Missing {
			modTime := rec.ModifiedAt
			entry.Size = rec.SizeBytes
			entry.ModifiedAt = &modTime
			entry.SHA256 = rec.ChecksumRaw
			entry.Normalized = rec.Checksum
		}
		entries = append(entries, entry)
	}
	return entries
}

func writeManifestPlain(w io.Writer, entries []manifestEntry) {
	for _, e := range entries {
		if e.Missing {
			fmt.Fprintf(w, "%-12s %-6s %s missing\n", e.Kind, e.Locale, e.Path)
			continue
		}
		fmt.Fprintf(w, "%-12s %-6s %s %d %s\n", e.Kind, e.Locale, e.Path, e.Size, e.SHA256)
	}
}
