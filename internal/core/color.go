package core

// Color is the foreground colour of a screen cell.
// The platform maps each value to an ANSI 256 colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Roles of the Brickwords screen. Renderers use these instead of raw
// colours so the board keeps one look across modes.
const (
	ColorTile   = ColorWhite        // placed consonant
	ColorVowel  = ColorGreen        // placed vowel
	ColorPiece  = ColorBrightYellow // falling piece and preview
	ColorBanner = ColorBrightCyan   // fresh cleared-word banner
	ColorFade   = ColorCyan         // banner about to disappear
	ColorFrame  = ColorGray         // board border, empty cells, hints
	ColorAlert  = ColorRed          // game over, errors
)
