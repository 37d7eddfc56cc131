package tappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tappy-block/internal/core"
)

// Visual characters and texts for rendering
const (
	AgentChar    = '█'
	ObstacleChar = '█'

	Title         = "Tappy Block"
	StartPrompt   = "Press Space or Tap to Start"
	GameOverTitle = "Game Over!"
	RestartPrompt = "Press Space or Tap to Restart"
)

// Draw paints a snapshot onto dst, scaling world units to screen cells.
// It only reads the snapshot.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.World.Width <= 0 || snap.World.Height <= 0 {
		return
	}

	if snap.Phase == PhaseNotStarted {
		drawStartScreen(dst, snap)
		return
	}

	sx := float64(dst.Width()) / snap.World.Width
	sy := float64(dst.Height()) / snap.World.Height

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, sx, sy)
	}
	drawAgent(dst, snap.Agent, sx, sy)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawText(1, 1, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorBrightWhite)

	if snap.Phase == PhaseGameOver {
		drawCenteredMessage(dst, GameOverTitle, RestartPrompt)
	}
}

func drawStartScreen(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, Title, core.ColorYellow)
	dst.DrawTextCentered(mid+1, StartPrompt, core.ColorDefault)
	if snap.HighScore > 0 {
		dst.DrawTextCentered(mid+3, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorGray)
	}
}

// cellSpan maps the world interval [start, start+length) to at least one cell.
func cellSpan(start, length, factor float64) (from, to int) {
	from = core.Scale(start, factor)
	to = int(math.Ceil((start + length) * factor))
	if to <= from {
		to = from + 1
	}
	return from, to
}

func drawObstacle(dst *core.Screen, o Obstacle, sx, sy float64) {
	x0, x1 := cellSpan(o.X, o.Width, sx)

	// Top bar ends where the gap starts; bottom bar starts after the gap.
	gapTop := core.Scale(o.GapY, sy)
	gapBottom := int(math.Ceil((o.GapY + o.GapHeight) * sy))

	dst.DrawRect(core.NewRect(x0, 0, x1-x0, gapTop), ObstacleChar, core.ColorGreen)
	dst.DrawRect(core.NewRect(x0, gapBottom, x1-x0, dst.Height()-gapBottom), ObstacleChar, core.ColorGreen)
}

func drawAgent(dst *core.Screen, a Agent, sx, sy float64) {
	x0, x1 := cellSpan(a.X, a.Size, sx)
	y0, y1 := cellSpan(a.Y, a.Size, sy)
	y0 = core.Clamp(y0, 0, dst.Height()-1)
	y1 = core.Clamp(y1, y0+1, dst.Height())
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), AgentChar, core.ColorRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
