package views

import "sync"

// ThemeMode selects a palette.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Palette is a static set of colors for one mode.
type Palette struct {
	Mode       ThemeMode `json:"mode"`
	Primary    string    `json:"primary"`
	Success    string    `json:"success"`
	Warning    string    `json:"warning"`
	Error      string    `json:"error"`
	Background string    `json:"background"`
	Paper      string    `json:"paper"`
	Text       string    `json:"text"`
}

var palettes = map[ThemeMode]Palette{
	ThemeLight: {
		Mode:       ThemeLight,
		Primary:    "#1976d2",
		Success:    "#2e7d32",
		Warning:    "#ed6c02",
		Error:      "#d32f2f",
		Background: "#f5f5f5",
		Paper:      "#ffffff",
		Text:       "#1a1a1a",
	},
	ThemeDark: {
		Mode:       ThemeDark,
		Primary:    "#90caf9",
		Success:    "#66bb6a",
		Warning:    "#ffa726",
		Error:      "#f44336",
		Background: "#121212",
		Paper:      "#1d1d1d",
		Text:       "#ffffff",
	},
}

// PaletteFor returns the palette of mode, defaulting to light.
func PaletteFor(mode ThemeMode) Palette {
	if p, ok := palettes[mode]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// Theme holds the current mode.
type Theme struct {
	mu   sync.RWMutex
	mode ThemeMode
}

// NewTheme starts in mode; anything but "dark" means light.
func NewTheme(mode string) *Theme {
	t := &Theme{mode: ThemeLight}
	if ThemeMode(mode) == ThemeDark {
		t.mode = ThemeDark
	}
	return t
}

// Mode returns the current mode.
func (t *Theme) Mode() ThemeMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// Palette returns the current palette.
func (t *Theme) Palette() Palette {
	return PaletteFor(t.Mode())
}

// Toggle flips between light and dark and returns the new palette.
func (t *Theme) Toggle() Palette {
	t.mu.Lock()
	if t.mode == ThemeDark {
		t.mode = ThemeLight
	} else {
		t.mode = ThemeDark
	}
	mode := t.mode
	t.mu.Unlock()
	return PaletteFor(mode)
}
