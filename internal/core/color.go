package core

// Color is the foreground color of a screen cell.
// Hosts translate it to whatever their output supports (ANSI codes, RGBA).
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlock         // falling obstacles
	ColorPlayer        // the player token
	ColorBorder        // playfield frame
	ColorHUD           // score and level line
	ColorAlert         // game-over overlay
	ColorDim           // help text
)
