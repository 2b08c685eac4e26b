package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	MatchFg     tcell.Color
	InfoBg      tcell.Color
	InfoFg      tcell.Color
	ErrorBg     tcell.Color
	ErrorFg     tcell.Color
	PromptFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.ColorDarkCyan,
		SymlinkFg:   tcell.ColorGreen,
		FileFg:      tcell.ColorDefault,
		MatchFg:     tcell.ColorYellow,
		InfoBg:      tcell.ColorDefault,
		InfoFg:      tcell.ColorDefault,
		ErrorBg:     tcell.ColorDarkRed,
		ErrorFg:     tcell.ColorWhite,
		PromptFg:    tcell.Color33,
	}
}
