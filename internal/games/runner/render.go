package runner

import (
	"fmt"
	"math"

	"github.com/contribrun/contribrun/internal/core"
	"github.com/contribrun/contribrun/internal/sim"
)

// Visual characters for rendering
const (
	TileChar       = '█'
	PlayerChar     = '█'
	PlayerSpinChar = '◆'
)

// Render draws the current game state to the screen. The simulation runs
// in a fixed logical viewport; rendering projects world pixels onto
// whatever cell grid the terminal provides.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	view := g.session.Config().View
	sx := float64(dst.Width()) / view.Width
	sy := float64(dst.Height()) / view.Height

	g.drawTiles(dst, sx, sy)
	g.drawPlayer(dst, sx, sy)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.session.State() == sim.StateGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawTiles renders the contribution grid. Tiles are shaded by row so
// columns read as the familiar activity-graph gradient: darker near the
// ground, lighter at the top.
func (g *Game) drawTiles(dst *core.Screen, sx, sy float64) {
	grid := g.session.Config().Grid
	half := grid.TileEdge / 2

	for _, t := range g.session.Tiles() {
		x0 := int(math.Round((t.X - half) * sx))
		x1 := int(math.Round((t.X + half) * sx))
		y0 := int(math.Round((t.Y - half) * sy))
		y1 := int(math.Round((t.Y + half) * sy))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}

		c := tileColor(t.Row, grid.Rows)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y, TileChar, c)
			}
		}
	}
}

// tileColor picks a grass shade by the tile's row within the column.
func tileColor(row, rows int) core.Color {
	if rows <= 0 {
		return core.ColorGrassMedium
	}
	switch {
	case row < rows/3:
		return core.ColorGrassDark
	case row < 2*rows/3:
		return core.ColorGrassMedium
	default:
		return core.ColorGrassLight
	}
}

// drawPlayer renders the player block. Squash shrinks the drawn height
// from the bottom up while charging; the collision box is unaffected.
func (g *Game) drawPlayer(dst *core.Screen, sx, sy float64) {
	p := g.session.Player()
	edge := g.session.Config().Grid.TileEdge
	half := edge / 2

	drawH := edge * p.Squash
	if drawH < 1 {
		drawH = 1
	}
	bottom := p.Y + half
	top := bottom - drawH

	x0 := int(math.Round((p.X - half) * sx))
	x1 := int(math.Round((p.X + half) * sx))
	y0 := int(math.Round(top * sy))
	y1 := int(math.Round(bottom * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	r := playerRune(p)
	c := core.ColorBrightWhite
	if p.Charging {
		c = core.ColorBrightYellow
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// playerRune shows the airborne spin: the square reads as a diamond in
// the middle of each quarter turn.
func playerRune(p sim.Player) rune {
	if p.Grounded {
		return PlayerChar
	}
	rem := math.Mod(math.Abs(p.Angle), 90)
	if rem > 22.5 && rem < 67.5 {
		return PlayerSpinChar
	}
	return PlayerChar
}

// drawHUD renders score, best score, charge resource and difficulty.
func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.session.Score())
	dst.DrawText(2, 0, scoreText)

	if highScore > 0 {
		bestText := fmt.Sprintf(" Best: %d ", highScore)
		dst.DrawText(2+len(scoreText)+1, 0, bestText)
	}

	right := formatCharge(g.session.Charge(), g.session.Config().Jump.ChargeMax)
	if g.cfg.Difficulty.Enabled {
		right += fmt.Sprintf(" Lvl: %d ", g.session.DifficultyLevel())
	}
	if right != "" {
		dst.DrawText(dst.Width()-len(right)-2, 0, right)
	}
}
