package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Styles maps each Kind to a tcell style.
type Styles map[Kind]tcell.Style

// DefaultStyles colours cells the way the desktop visualiser did: white
// floor, black walls, green start, red goal, light grey visited, yellow
// current, blue path and an orange robot.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Empty:    base.Foreground(tcell.ColorGray).Background(tcell.ColorWhite),
		Obstacle: base.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Start:    base.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true),
		Goal:     base.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
		Visited:  base.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray),
		Current:  base.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
		Path:     base.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue),
		Robot:    base.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange).Bold(true),
	}
}

// Draw paints s with its top-left corner at (x, y), one screen column per
// grid column. It does not call Show.
func Draw(screen tcell.Screen, s *Scene, x, y int, styles Styles) {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			k := s.kinds[r*s.cols+c]
			screen.SetContent(x+c, y+r, k.Symbol(), nil, styles[k])
		}
	}
}

// DrawText writes text on row y starting at column x.
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// StatusLine is the one-line summary shown under an animated grid.
func StatusLine(res search.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s: no path  visited %d", res.Algorithm, res.Metrics.NodesVisited)
	}
	return fmt.Sprintf("%s: path %d  visited %d  explored %d",
		res.Algorithm, res.Metrics.PathLength, res.Metrics.NodesVisited, res.Metrics.NodesExplored)
}

// Animate replays res on screen, waiting step between frames, and leaves
// the final frame plus StatusLine on screen. A non-positive step draws
// every frame without waiting. Returns ctx.Err() if ctx ends first.
func Animate(ctx context.Context, screen tcell.Screen, g *grid.Grid, res search.Result, step time.Duration) error {
	styles := DefaultStyles()
	last := NewScene(g)
	for s := range Frames(g, res) {
		last = s
		Draw(screen, s, 0, 0, styles)
		screen.Show()
		if step <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step):
		}
	}

	Draw(screen, last, 0, 0, styles)
	DrawText(screen, 0, g.Rows()+1, tcell.StyleDefault, StatusLine(res))
	screen.Show()
	return nil
}
