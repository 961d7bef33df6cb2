package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board glyphs. Every grid cell is two terminal columns wide so cells come
// out roughly square.
const (
	cellWidth = 2
	blockRune = '█'
)

// BoardSize returns the screen size needed for a grid, border included.
func BoardSize(gridSize int) (w, h int) {
	return gridSize*cellWidth + 2, gridSize + 2
}

// DrawBoard repaints the whole board: border, every snake segment and the
// food, each at its grid-scaled position. Cells outside the grid (a head
// that just left it) are not drawn.
func DrawBoard(dst *core.Screen, st snake.State, gridSize int) {
	dst.Clear()
	w, h := BoardSize(gridSize)
	dst.DrawBox(core.NewRect(0, 0, w, h), core.ColorGray)

	for i, seg := range st.Snake {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		paintCell(dst, seg, gridSize, color)
	}

	// Food is drawn last and stays visible when it overlaps the body.
	paintCell(dst, st.Food, gridSize, core.ColorRed)
}

func paintCell(dst *core.Screen, c snake.Cell, gridSize int, color core.Color) {
	if !c.InBounds(gridSize) {
		return
	}
	x := 1 + c.X*cellWidth
	y := 1 + c.Y
	for i := range cellWidth {
		dst.SetColored(x+i, y, blockRune, color)
	}
}

// DrawBanner draws a boxed two-line message centered on the board.
func DrawBanner(dst *core.Screen, line1, line2 string, color core.Color) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width, 4)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, line1, color)
	dst.DrawTextCentered(box.Y+2, line2, core.ColorBrightWhite)
}
