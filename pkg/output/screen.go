package output

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// DrawBraille draws buf as braille cells into area of scr. Each terminal
// cell covers 2×4 pixels; unlit cells are cleared to blanks.
func DrawBraille(scr uv.Screen, area uv.Rectangle, buf Buffer) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X; col++ {
			glyph, level, ok := brailleCell(buf, col-area.Min.X, row-area.Min.Y)
			cell := &uv.Cell{Content: " ", Width: 1}
			if ok {
				g := gray(level)
				cell.Content = string(glyph)
				cell.Style = uv.Style{Fg: color.RGBA{g, g, g, 255}}
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// DrawText writes a single line of text at the top-left of area, dropping
// any escape sequences and truncating to the area's width.
func DrawText(scr uv.Screen, area uv.Rectangle, text string, fg color.Color) {
	text = ansi.Truncate(ansi.Strip(text), area.Dx(), "")
	col := area.Min.X
	for _, r := range text {
		scr.SetCell(col, area.Min.Y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg},
		})
		col++
	}
}
