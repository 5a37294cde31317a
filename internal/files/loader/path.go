package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/gamedata/pkg/gamedata"
)

// Resolver computes table file paths under the game data root.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver for root.
// An empty root is a configuration error: there is no default location.
func NewResolver(root string) (*Resolver, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("%w: game data root path is not set (use --root or $%s)", gamedata.ErrConfiguration, gamedata.RootPathEnv)
	}
	return &Resolver{root: root}, nil
}

// Root returns the configured root directory.
func (r *Resolver) Root() string { return r.root }

// ResolvePath joins the root, the locale's directory name and location.
// For root "/data", locale "en-US" and "gamedata/excel/skill_table.json"
// the result is "/data/en_US/gamedata/excel/skill_table.json".
func (r *Resolver) ResolvePath(locale gamedata.GameLocale, location string) string {
	return filepath.Join(r.root, locale.DirName(), location)
}
