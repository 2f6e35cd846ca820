package layout

// Spacing constants for consistent padding and margins
const (
	SpacingXS = 1
	SpacingSM = 2
	SpacingMD = 3
)

// Card grid dimensions
const (
	CardMinWidth   = 36
	CardHeight     = 7
	GridGutter     = 2
	MaxGridColumns = 3
)

// Standard UI element heights
const (
	HeaderHeight = 4
	FooterHeight = 2
	FilterHeight = 3
)

// ContentHeight returns the rows left for the card grid after chrome.
func ContentHeight(windowHeight int) int {
	h := windowHeight - HeaderHeight - FilterHeight - FooterHeight
	if h < CardHeight {
		return CardHeight
	}
	return h
}

// GridColumns returns how many card columns fit in the window.
func GridColumns(windowWidth int) int {
	cols := windowWidth / (CardMinWidth + GridGutter)
	if cols < 1 {
		return 1
	}
	if cols > MaxGridColumns {
		return MaxGridColumns
	}
	return cols
}
