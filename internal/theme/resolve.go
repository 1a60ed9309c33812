package theme

import (
	"github.com/scriptkit/launcher/internal/config"
	"github.com/scriptkit/launcher/internal/styles"
)

// ResolvedTheme represents a fully-determined theme configuration.
type ResolvedTheme struct {
	BaseName  string
	Overrides map[string]interface{}
}

// ResolveTheme determines the effective theme from config.
func ResolveTheme(cfg *config.Config) ResolvedTheme {
	resolved := ResolvedTheme{
		BaseName:  cfg.UI.Theme.Name,
		Overrides: cfg.UI.Theme.Overrides,
	}

	if resolved.BaseName == "" {
		resolved.BaseName = "default"
	}

	return resolved
}

// ApplyResolved applies a resolved theme to the styles system.
func ApplyResolved(r ResolvedTheme) {
	if len(r.Overrides) > 0 {
		styles.ApplyThemeWithGenericOverrides(r.BaseName, r.Overrides)
	} else {
		styles.ApplyTheme(r.BaseName)
	}
}
