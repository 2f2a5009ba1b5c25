package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

// Base colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorGray
)

// Palette for maze elements.
const (
	ColorWall  = ColorBlue
	ColorPoint = ColorWhite
	ColorHero  = ColorBrightYellow
	ColorHUD   = ColorCyan
)

// enemyColors gives every enemy its own color, in enemy order.
var enemyColors = [...]Color{ColorGreen, ColorRed, ColorYellow}

// EnemyColor returns the color of the i-th enemy.
func EnemyColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return enemyColors[i%len(enemyColors)]
}
