package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
)

const fpsSamples = 10

// FPSCounter averages the frame rate over the last few frames.
type FPSCounter struct {
	samples [fpsSamples]time.Duration
	next    int
	filled  int
}

// Add records the duration of one frame.
func (c *FPSCounter) Add(frame time.Duration) {
	c.samples[c.next] = frame
	c.next = (c.next + 1) % fpsSamples
	c.filled = min(c.filled+1, fpsSamples)
}

// FPS returns the average frames per second, or 0 before any frame.
func (c *FPSCounter) FPS() float64 {
	var total time.Duration
	for _, s := range c.samples[:c.filled] {
		total += s
	}
	if total <= 0 {
		return 0
	}
	return float64(c.filled) / total.Seconds()
}

// HUD formats a one-line status bar, truncated to width columns.
func HUD(fps float64, triangles, drawn, width int) string {
	line := fmt.Sprintf("\x1b[92m %.0f FPS \x1b[0m\x1b[96m %d/%d tris \x1b[0m", fps, drawn, triangles)
	return ansi.Truncate(line, width, "…")
}
