package output

import (
	"strconv"
	"strings"
)

// Braille cells cover 2×4 pixels.
const (
	CellWidth  = 2
	CellHeight = 4
)

const brailleBase = 0x2800

// brailleDots maps dot bit i to its (dx, dy) offset within a cell.
var brailleDots = [8][2]int{
	{0, 0}, {0, 1}, {0, 2}, {1, 0},
	{1, 1}, {1, 2}, {0, 3}, {1, 3},
}

// FrameSize returns the pixel resolution that fills cols×rows braille cells.
func FrameSize(cols, rows int) (width, height int) {
	return cols * CellWidth, rows * CellHeight
}

// CellCount returns how many braille cells cover a width×height frame.
func CellCount(width, height int) (cols, rows int) {
	return (width + CellWidth - 1) / CellWidth, (height + CellHeight - 1) / CellHeight
}

// brailleCell encodes the cell at column cx, row cy. A dot is raised for
// every lit pixel; level is the mean intensity of the lit pixels.
// ok is false when no pixel in the cell is lit.
func brailleCell(buf Buffer, cx, cy int) (glyph rune, level float32, ok bool) {
	var bits int
	var total float32
	lit := 0
	for i, d := range brailleDots {
		x, y := cx*CellWidth+d[0], cy*CellHeight+d[1]
		if x >= buf.Width() || y >= buf.Height() {
			continue
		}
		if v := buf.Get(x, y); v > 0 {
			bits |= 1 << i
			total += v
			lit++
		}
	}
	if lit == 0 {
		return ' ', 0, false
	}
	return rune(brailleBase + bits), total / float32(lit), true
}

// gray converts an intensity to an 8-bit channel value.
func gray(level float32) uint8 {
	return uint8(max(0, min(level, 1)) * 255)
}

// BrailleFormatter packs 2×4 pixel blocks into braille glyphs, colored
// with a truecolor gray proportional to the block's brightness.
type BrailleFormatter struct{}

// Format returns the frame with rows terminated by "\r\n" so it prints
// correctly in raw mode.
func (BrailleFormatter) Format(buf Buffer) string {
	cols, rows := CellCount(buf.Width(), buf.Height())
	var sb strings.Builder
	for cy := range rows {
		for cx := range cols {
			glyph, level, ok := brailleCell(buf, cx, cy)
			if !ok {
				sb.WriteByte(' ')
				continue
			}
			g := strconv.Itoa(int(gray(level)))
			sb.WriteString("\x1b[38;2;" + g + ";" + g + ";" + g + "m")
			sb.WriteRune(glyph)
			sb.WriteString("\x1b[0m")
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
