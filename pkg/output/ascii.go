package output

import "strings"

// DefaultGradient runs from darkest to brightest.
const DefaultGradient = " .:-=+*#%@"

// ASCIIFormatter draws one glyph per pixel, picked from a brightness
// gradient.
type ASCIIFormatter struct {
	gradient []rune
}

// NewASCIIFormatter creates a formatter for gradient, ordered dark to
// bright. An empty gradient falls back to DefaultGradient.
func NewASCIIFormatter(gradient string) *ASCIIFormatter {
	if gradient == "" {
		gradient = DefaultGradient
	}
	return &ASCIIFormatter{gradient: []rune(gradient)}
}

// Format returns the frame with one line per pixel row.
func (f *ASCIIFormatter) Format(buf Buffer) string {
	var sb strings.Builder
	sb.Grow((buf.Width() + 1) * buf.Height())
	last := len(f.gradient) - 1
	for y := range buf.Height() {
		for x := range buf.Width() {
			idx := int(float32(last) * buf.Get(x, y))
			sb.WriteRune(f.gradient[max(0, min(idx, last))])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
