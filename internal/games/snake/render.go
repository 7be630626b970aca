package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal layout. Each board cell is drawn two columns wide so it looks
// roughly square. The HUD is one line; the board's top border separates it.
const (
	hudHeight  = 1
	cellWidth  = 2
	cellHeight = 1
)

// Render draws the HUD, the board and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	board := g.boardRect(dst)
	if board.W > dst.Width() || board.Bottom() > dst.Height() {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", board.W, board.H+hudHeight))
		return
	}

	dst.DrawBox(board, core.ColorGray)
	ox, oy := board.X+1, board.Y+1

	g.store.Each(KindFood, func(e Entity) bool {
		r := g.grid.CellRect(e.Pos, ox, oy, cellWidth, cellHeight)
		dst.SetColored(r.X, r.Y, '●', core.ColorBrightRed)
		return true
	})
	g.store.Each(KindSegment, func(e Entity) bool {
		color := core.ColorGreen
		if e.Index == 0 {
			color = core.ColorBrightGreen
		}
		dst.FillRect(g.grid.CellRect(e.Pos, ox, oy, cellWidth, cellHeight), '█', color)
		return true
	})

	switch {
	case g.state.Status == StatusGameOver:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Length %d - press R to restart", g.store.SegmentCount()))
	case g.state.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect returns the bordered board area, centred below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.grid.Width*cellWidth + 2
	h := g.grid.Height*cellHeight + 2
	x := core.Clamp((dst.Width()-w)/2, 0, dst.Width())
	return core.NewRect(x, hudHeight, w, h)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Length: %d  Heading: %s", g.store.SegmentCount(), g.state.Heading)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
}

// renderOverlay draws a centred two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(width, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
