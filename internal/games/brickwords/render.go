package brickwords

import (
	"fmt"

	platformcore "github.com/vovakirdan/brickwords/internal/core"
	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

const (
	cellWidth = 2  // Each board cell is a letter plus a space
	hudWidth  = 18 // Side panel with score and preview
	hudGap    = 2
	emptyCell = '·'
)

// layoutSize returns the minimum screen size for the current board.
func (g *Game) layoutSize() (int, int) {
	rows, cols := 12, 8
	if g.session != nil {
		cfg := g.session.Config()
		rows, cols = cfg.Rows, cfg.Cols
	}
	boardW := cols*cellWidth + 1 + 2
	boardH := rows + 2
	return boardW + hudGap + hudWidth, boardH + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cfg := g.session.Config()
	boardW := cfg.Cols*cellWidth + 1 + 2
	boardH := cfg.Rows + 2
	totalW, _ := g.layoutSize()

	boardX := (g.screenW - totalW) / 2
	boardY := 2
	hudX := boardX + boardW + hudGap

	dst.DrawTextCentered(0, g.Title(), platformcore.ColorBrightYellow)
	dst.DrawBox(platformcore.NewRect(boardX, boardY, boardW, boardH), platformcore.ColorFrame)

	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderHUD(dst, hudX, boardY)

	if g.banner.visible() {
		color := platformcore.ColorBanner
		if g.banner.fading() {
			color = platformcore.ColorFade
		}
		x := boardX + (boardW-len(g.banner.text))/2
		dst.DrawTextWithColor(max(x, 0), boardY+boardH, g.banner.text, color)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// cellX returns the screen column of a board column.
func cellX(originX, col int) int {
	return originX + 1 + col*cellWidth
}

// renderBoard draws placed tiles and the falling piece.
func (g *Game) renderBoard(dst *platformcore.Screen, originX, originY int) {
	view := g.session.Board()
	for row := range view.Rows() {
		for col := range view.Cols() {
			x, y := cellX(originX, col), originY+row
			c := view.Cell(row, col)
			if !c.Occupied {
				dst.SetWithColor(x, y, emptyCell, platformcore.ColorFrame)
				continue
			}
			dst.SetWithColor(x, y, c.Letter, letterColor(c.Letter))
		}
	}

	if p, ok := g.session.Piece(); ok {
		for _, part := range p.Parts {
			dst.SetWithColor(cellX(originX, part.Col), originY+part.Row, part.Letter, platformcore.ColorPiece)
		}
	}
}

// letterColor highlights vowels so playable pieces stand out.
func letterColor(r rune) platformcore.Color {
	if core.IsVowel(r) {
		return platformcore.ColorVowel
	}
	return platformcore.ColorTile
}

// renderHUD draws score, words, pause tokens and the next piece.
func (g *Game) renderHUD(dst *platformcore.Screen, x, y int) {
	prog := g.session.Progression()

	dst.DrawText(x, y, fmt.Sprintf("Score:  %d", prog.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Words:  %d", prog.WordsCleared))
	dst.DrawText(x, y+2, fmt.Sprintf("Pauses: %d", prog.PauseTokens))

	if prog.Policy() == core.PolicyEscalating {
		dst.DrawTextWithColor(x, y+3, fmt.Sprintf("Next pause at %d", prog.NextThreshold), platformcore.ColorFrame)
	}

	dst.DrawText(x, y+5, "Next:")
	for i, r := range g.session.NextPiece() {
		dst.SetWithColor(x+7+i*cellWidth, y+5, r, platformcore.ColorPiece)
	}

	help := []string{
		"←/→  move",
		"↑    rotate",
		"↓    drop",
		"spc  pause",
	}
	for i, line := range help {
		dst.DrawTextWithColor(x, y+7+i, line, platformcore.ColorFrame)
	}
}

// renderOverlays draws pause and game over messages over the board.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerY := boardY + boardH/2
	centered := func(y int, text string, c platformcore.Color) {
		x := boardX + (boardW-len([]rune(text)))/2
		dst.DrawTextWithColor(max(x, 0), y, text, c)
	}

	switch {
	case g.session.GameOver():
		centered(centerY-1, " GAME OVER ", platformcore.ColorAlert)
		centered(centerY, fmt.Sprintf(" Score: %d ", g.session.Progression().Score), platformcore.ColorBrightWhite)
		centered(centerY+1, " R restart ", platformcore.ColorFrame)
	case g.session.Paused():
		centered(centerY, " PAUSED ", platformcore.ColorPiece)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorAlert)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h), platformcore.ColorDefault)
}

// renderError shows why the game could not start.
func (g *Game) renderError(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Cannot start Brickwords", platformcore.ColorAlert)
	if g.loadErr != nil {
		dst.DrawTextCentered(y+1, g.loadErr.Error(), platformcore.ColorDefault)
	}
}
