package loader

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/gamedata/pkg/gamedata"
)

func TestNewResolver_EmptyRoot(t *testing.T) {
	for _, root := range []string{"", "   "} {
		_, err := NewResolver(root)
		if !errors.Is(err, gamedata.ErrConfiguration) {
			t.Errorf("NewResolver(%q) error = %v, want ErrConfiguration", root, err)
		}
	}
}

func TestResolvePath(t *testing.T) {
	root := filepath.Join("srv", "ArknightsGameData")
	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	if r.Root() != root {
		t.Errorf("Root() = %q, want %q", r.Root(), root)
	}

	location := "gamedata/excel/skill_table.json"
	for _, locale := range gamedata.GameLocales() {
		t.Run(string(locale), func(t *testing.T) {
			got := r.ResolvePath(locale, location)

			want := filepath.Join(root, strings.ReplaceAll(string(locale), "-", "_"), location)
			if got != want {
				t.Errorf("ResolvePath = %q, want %q", got, want)
			}
			if !strings.HasPrefix(got, root) {
				t.Errorf("%q is not under root %q", got, root)
			}
			if !strings.HasSuffix(filepath.ToSlash(got), location) {
				t.Errorf("%q does not end in %q", got, location)
			}
			if strings.Contains(got, string(locale)) {
				t.Errorf("%q still contains the hyphenated locale", got)
			}
		})
	}
}

func TestResolvePath_Pure(t *testing.T) {
	r, _ := NewResolver("/data")
	a := r.ResolvePath(gamedata.LocaleKoKR, "x.json")
	b := r.ResolvePath(gamedata.LocaleKoKR, "x.json")
	if a != b {
		t.Errorf("ResolvePath not deterministic: %q vs %q", a, b)
	}
}
