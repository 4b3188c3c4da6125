package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // HUD line plus separator
	cellCols  = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Title(), g.Snapshot())
}

// RenderSnapshot draws a snapshot: HUD, bordered board, snake, food and the
// game-over popup. It only reads the snapshot.
func RenderSnapshot(dst *core.Screen, title string, snap core.Snapshot) {
	dst.Clear()
	renderHUD(dst, title, snap)

	b := snap.Bounds
	boardW := b.WidthCells*cellCols + 2
	boardH := b.HeightCells + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	originX := (dst.Width() - boardW) / 2
	originY := hudHeight
	dst.DrawBox(originX, originY, boardW, boardH, core.ColorGray)

	plot := func(c core.Cell, r rune, color core.Color) {
		col, row := b.ColRow(c)
		if col < 0 || col >= b.WidthCells || row < 0 || row >= b.HeightCells {
			return
		}
		x := originX + 1 + col*cellCols
		y := originY + 1 + row
		for i := range cellCols {
			dst.SetColor(x+i, y, r, color)
		}
	}

	if snap.HasFood {
		plot(snap.Food, '●', core.ColorRed)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			plot(snap.Body[i], '█', core.ColorBrightGreen)
		} else {
			plot(snap.Body[i], '▓', core.ColorGreen)
		}
	}

	if snap.GameOver {
		line1 := "Game Over"
		switch snap.Reason {
		case core.ReasonWall:
			line1 = "Game Over: hit the wall"
		case core.ReasonSelf:
			line1 = "Game Over: bit yourself"
		case core.ReasonGridExhausted:
			line1 = "Board full!"
		}
		renderOverlay(dst, line1, fmt.Sprintf("Score %d  -  R restart  Q quit", snap.Score))
	}
}

func renderHUD(dst *core.Screen, title string, snap core.Snapshot) {
	player := snap.Player
	if player == "" {
		player = "player"
	}
	hud := fmt.Sprintf(" %s - %s  Score: %d", title, player, snap.Score)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line popup.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawBox(x, y, w, h, core.ColorYellow)
	dst.DrawTextCentered(y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(y+3, line2, core.ColorDefault)
}
