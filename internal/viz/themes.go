package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used to draw slots.
type Theme struct {
	Name   string
	Live   lipgloss.Color
	Empty  lipgloss.Color
	Border lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:   "default",
		Live:   lipgloss.Color("#00ffff"),
		Empty:  lipgloss.Color("#444466"),
		Border: lipgloss.Color("#666688"),
		Accent: lipgloss.Color("#ff00ff"),
		Muted:  lipgloss.Color("#888899"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Live:   lipgloss.Color("#00ff00"), // green phosphor
		Empty:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#00cc00"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Live:   lipgloss.Color("#ffffff"),
		Empty:  lipgloss.Color("#444444"),
		Border: lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Live:   lipgloss.Color("#00a8cc"),
		Empty:  lipgloss.Color("#001a33"),
		Border: lipgloss.Color("#0077be"),
		Accent: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#4488aa"),
		Error:  lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
