package chase

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/maze"
	"github.com/vovakirdan/mazechase/internal/sim"
)

// Glyphs.
const (
	glyphWall  = '█'
	glyphPoint = '·'
	glyphEnemy = 'M'
)

// heroGlyph returns the hero glyph for a facing, mouth toward travel.
func heroGlyph(d sim.Direction) rune {
	switch d {
	case sim.DirLeft:
		return '>'
	case sim.DirUp:
		return 'v'
	case sim.DirDown:
		return '^'
	default:
		return '<'
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.renderHUD(dst)
		msg := "Level failed to load"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, msg, "Press Enter to skip")
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		lvl := g.world.Level()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d to play", lvl.Width(), lvl.Height()+hudHeight+1))
		return
	}

	g.renderMaze(dst)
	g.renderActors(dst)

	switch {
	case g.world.Status() == sim.StatusWon:
		g.renderOverlay(dst, "Level cleared!", "Enter: next level  R: replay")
	case g.world.Status() == sim.StatusLost:
		g.renderOverlay(dst, "Caught!", fmt.Sprintf("Score: %d  R: restart", g.Score()))
	case g.world.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	title := g.level.Title()
	if g.mode == ModeCampaign {
		title = fmt.Sprintf("%s (%d/%d)", title, indexOf(g.defs, g.level.ID)+1, len(g.defs))
	}

	hud := fmt.Sprintf(" Maze Chase  Level: %s  Score: %d", title, g.Score())
	if g.world != nil {
		hud += fmt.Sprintf("  Left: %d", g.world.Level().RemainingPoints())
		if d, ok := g.nearestEnemy(); ok {
			hud += fmt.Sprintf("  Nearest: %d", d)
		}
	}
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderMaze draws walls and remaining points.
func (g *Game) renderMaze(dst *core.Screen) {
	lvl := g.world.Level()
	for _, w := range lvl.Walls() {
		dst.SetColor(g.mapOffsetX+w.X, g.mapOffsetY+w.Y, glyphWall, core.ColorWall)
	}
	for _, p := range lvl.Points() {
		dst.SetColor(g.mapOffsetX+p.X, g.mapOffsetY+p.Y, glyphPoint, core.ColorPoint)
	}
}

// renderActors draws the hero, then the enemies on top.
func (g *Game) renderActors(dst *core.Screen) {
	hero := g.world.Hero()
	g.setCell(dst, hero.Pos, heroGlyph(hero.Facing), core.ColorHero)

	for _, e := range g.world.Enemies() {
		g.setCell(dst, e.Pos, glyphEnemy, core.EnemyColor(e.ID))
	}
}

func (g *Game) setCell(dst *core.Screen, c maze.Coord, r rune, color core.Color) {
	dst.SetColor(g.mapOffsetX+c.X, g.mapOffsetY+c.Y, r, color)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func indexOf(defs []levels.Def, id string) int {
	for i, d := range defs {
		if d.ID == id {
			return i
		}
	}
	return -1
}
