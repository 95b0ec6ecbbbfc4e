// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

// Package theme holds the design tokens shared by layout code and styles.
// Sizes are terminal cells.
package theme

// Swatch is one palette entry
type Swatch struct {
	Main     string
	Light    string
	Dark     string
	Contrast string
}

// Palette holds the theme colours
type Palette struct {
	Primary       Swatch
	Error         Swatch
	Warning       Swatch
	Info          Swatch
	Success       Swatch
	Divider       string
	Text          string
	TextSecondary string
	TextDisabled  string
	Background    string
	Surface       string
}

// Breakpoints are viewport widths in columns. Widths below Small use the
// mobile presentation, widths below Medium the medium one.
type Breakpoints struct {
	Small  int
	Medium int
}

// Variables are the custom layout constants
type Variables struct {
	DrawerWidth  int
	AppBarHeight int
	PopupWidth   int
	PopupHeight  int
}

// Tokens is the full token set
type Tokens struct {
	Name        string
	Palette     Palette
	Spacing     int
	Breakpoints Breakpoints
	Variables   Variables
}

// Light returns the default light tokens.
func Light() Tokens {
	return Tokens{
		Name: "light",
		Palette: Palette{
			Primary:       Swatch{Main: "#C40109", Light: "#E7999D", Dark: "#A20107", Contrast: "#FFFFFF"},
			Error:         Swatch{Main: "#C40109", Light: "#E7999D", Dark: "#A20107", Contrast: "#FFFFFF"},
			Warning:       Swatch{Main: "#F7A700", Light: "#FCDC99", Dark: "#D59000", Contrast: "#FFFFFF"},
			Info:          Swatch{Main: "#00A9AE", Light: "#99DDDF", Dark: "#00888C", Contrast: "#FFFFFF"},
			Success:       Swatch{Main: "#88A926", Light: "#CFDDA8", Dark: "#728D20", Contrast: "#FFFFFF"},
			Divider:       "#E5E5E5",
			Text:          "#000000",
			TextSecondary: "#666666",
			TextDisabled:  "#999999",
			Background:    "#FFFFFF",
			Surface:       "#F5F5F5",
		},
		Spacing:     1,
		Breakpoints: Breakpoints{Small: 80, Medium: 120},
		Variables: Variables{
			DrawerWidth:  28,
			AppBarHeight: 1,
			PopupWidth:   60,
			PopupHeight:  18,
		},
	}
}

// Dark returns the dark variant. Only colours differ.
func Dark() Tokens {
	t := Light()
	t.Name = "dark"
	t.Palette.Primary = Swatch{Main: "#E5484D", Light: "#F2A1A4", Dark: "#C40109", Contrast: "#FFFFFF"}
	t.Palette.Error = t.Palette.Primary
	t.Palette.Divider = "#4B5563"
	t.Palette.Text = "#F9FAFB"
	t.Palette.TextSecondary = "#9CA3AF"
	t.Palette.TextDisabled = "#6B7280"
	t.Palette.Background = "#1F2937"
	t.Palette.Surface = "#374151"
	return t
}

// ByName resolves a theme name. Unknown names fall back to light.
func ByName(name string) Tokens {
	if name == "dark" {
		return Dark()
	}
	return Light()
}
