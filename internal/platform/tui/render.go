package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Board layout. Cells are one column wide with a space between them.
const (
	boardW = snake.Size*2 + 3 // border, pad, cells, pad, border
	boardH = snake.Size + 2
	hudH   = 2 // turn line and status line under the box
	titleH = 1
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawGame draws the boxed board with a title above and the HUD below,
// centered on the screen. It returns false when the screen is too small.
func DrawGame(s *core.Screen, snap snake.Snapshot, cfg config.Config) bool {
	s.Clear()

	area := s.Bounds()
	totalH := titleH + boardH + hudH
	if !area.Fits(boardW, totalH) {
		s.DrawTextCentered(area.H/2, "Window too small")
		return false
	}

	frame := area.Centered(boardW, totalH)
	box := core.NewRect(frame.X, frame.Y+titleH, boardW, boardH)

	s.DrawTextCentered(frame.Y, "SNAKE")
	s.DrawBox(box, core.ColorCyan)
	drawCells(s, box, snap, cfg.Symbols)

	hud := fmt.Sprintf("Turn %d  Length %d", snap.Turn, snap.SnakeLen)
	s.DrawTextCentered(box.Bottom(), hud)

	switch snap.Status {
	case snake.StateLost:
		s.DrawTextCenteredColored(box.Bottom()+1, cfg.Messages.Lose, core.ColorRed)
	case snake.StateWon:
		s.DrawTextCenteredColored(box.Bottom()+1, cfg.Messages.Win, core.ColorYellow)
	}
	return true
}

func drawCells(s *core.Screen, box core.Rect, snap snake.Snapshot, sym config.Symbols) {
	floor, body, food := config.Rune(sym.Floor), config.Rune(sym.Snake), config.Rune(sym.Food)

	for y := 0; y < snake.Size; y++ {
		for x := 0; x < snake.Size; x++ {
			sx, sy := box.X+2+x*2, box.Y+1+y
			switch snap.Grid[y][x] {
			case snake.SnakeOccupied:
				c := core.ColorGreen
				if snake.C(x, y) == snap.Head {
					c = core.ColorBrightGreen
				}
				s.SetColored(sx, sy, body, c)
			case snake.Food:
				s.SetColored(sx, sy, food, core.ColorRed)
			default:
				s.SetColored(sx, sy, floor, core.ColorGray)
			}
		}
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := lipgloss.Width(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
