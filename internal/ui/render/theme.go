package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	PromptFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	MatchFg     tcell.Color
	DetailFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	WarningFg   tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		PromptFg:    tcell.Color33,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		MatchFg:     tcell.Color214, // amber for the matched substring
		DetailFg:    tcell.ColorLightSlateGray,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		WarningFg:   tcell.Color208,
	}
}
