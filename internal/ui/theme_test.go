package ui

import (
	"slices"
	"testing"

	"github.com/zhubert/aegis/internal/ui/modals"
)

func TestThemeNames_Stable(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Fatalf("expected %d themes, got %d", len(BuiltinThemes), len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("expected sorted theme names, got %v", names)
	}
	if !slices.Contains(names, DefaultTheme) {
		t.Error("expected the default theme to be listed")
	}
}

func TestBuiltinThemes_Complete(t *testing.T) {
	for name, theme := range BuiltinThemes {
		t.Run(string(name), func(t *testing.T) {
			fields := map[string]string{
				"Name":      theme.Name,
				"Primary":   theme.Primary,
				"Secondary": theme.Secondary,
				"Bg":        theme.Bg,
				"Text":      theme.Text,
				"TextMuted": theme.TextMuted,
				"Error":     theme.Error,
				"Star":      theme.Star,
				"CodeStyle": theme.CodeStyle,
			}
			for field, v := range fields {
				if v == "" {
					t.Errorf("%s is empty", field)
				}
			}
			// The header gradient parses these as #RRGGBB
			for _, hex := range []string{theme.Primary, theme.Bg} {
				if len(hex) != 7 || hex[0] != '#' {
					t.Errorf("expected #RRGGBB, got %q", hex)
				}
			}
		})
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if GetTheme("no-such-theme").Name != BuiltinThemes[DefaultTheme].Name {
		t.Error("expected unknown theme to fall back to the default")
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName(string(ThemeNord))
	if CurrentThemeName() != ThemeNord {
		t.Errorf("expected nord, got %s", CurrentThemeName())
	}
	if CurrentTheme().Name != "Nord" {
		t.Errorf("expected Nord palette, got %q", CurrentTheme().Name)
	}
	// Modal colors follow the theme
	if modals.ColorPrimary != ColorPrimary {
		t.Error("expected modal palette refreshed with the theme")
	}
}
