package model

// Theme selects the color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds user preferences. Logically exactly one settings record
// exists; a missing record means defaults, never an error.
type Settings struct {
	Theme       Theme  `json:"theme"`
	AccentColor string `json:"accentColor"`
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, AccentColor: "default"}
}
