package tappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tappy-block/internal/core"
)

func testSnapshot(phase Phase) Snapshot {
	return Snapshot{
		Phase: phase,
		World: World{Width: 1600, Height: 900},
		Agent: Agent{X: 100, Y: 400, Size: 30},
		Obstacles: []Obstacle{
			{X: 800, Width: 40, GapY: 300, GapHeight: 300},
		},
		Score:     3,
		HighScore: 7,
	}
}

func TestDrawStartScreen(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Draw(screen, testSnapshot(PhaseNotStarted))

	out := screen.String()
	if !strings.Contains(out, Title) || !strings.Contains(out, StartPrompt) {
		t.Errorf("start screen should show title and prompt:\n%s", out)
	}
	if strings.ContainsRune(out, AgentChar) {
		t.Error("start screen should not draw the playfield")
	}
	if !strings.Contains(out, "High Score: 7") {
		t.Error("start screen should show the carried high score")
	}
}

func TestDrawPlaying(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Draw(screen, testSnapshot(PhasePlaying))

	// Agent at world (100, 400) -> cell (5, 10) on an 80x24 screen
	if c := screen.GetCell(5, 10); c.Rune != AgentChar || c.Color != core.ColorRed {
		t.Errorf("agent cell = %+v, expected red block", c)
	}

	// Obstacle at x=800 -> column 40; bars at the top and bottom, gap in the middle
	if c := screen.GetCell(40, 0); c.Color != core.ColorGreen {
		t.Errorf("top bar cell = %+v, expected green", c)
	}
	if c := screen.GetCell(40, 23); c.Color != core.ColorGreen {
		t.Errorf("bottom bar cell = %+v, expected green", c)
	}
	if c := screen.GetCell(40, 12); c.Rune != ' ' {
		t.Errorf("gap cell = %+v, expected empty", c)
	}

	if !strings.Contains(screen.Row(0), "Score: 3") {
		t.Errorf("HUD row 0 = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "High Score: 7") {
		t.Errorf("HUD row 1 = %q, expected high score", screen.Row(1))
	}
	if strings.Contains(screen.String(), GameOverTitle) {
		t.Error("playing screen should not show the game over box")
	}
}

func TestDrawGameOver(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Draw(screen, testSnapshot(PhaseGameOver))

	out := screen.String()
	if !strings.Contains(out, GameOverTitle) || !strings.Contains(out, RestartPrompt) {
		t.Errorf("game over screen should show title and restart prompt:\n%s", out)
	}
	// The frozen playfield stays visible behind the box
	if screen.GetCell(5, 10).Color != core.ColorRed {
		t.Error("agent should still be drawn on the game over screen")
	}
}

func TestDrawDoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot(PhasePlaying)
	before := snap.Obstacles[0]

	Draw(core.NewScreen(80, 24), snap)

	if snap.Obstacles[0] != before {
		t.Error("Draw must not modify the snapshot")
	}
}

func TestDrawTinyScreen(t *testing.T) {
	// Must not panic on degenerate sizes
	Draw(core.NewScreen(0, 0), testSnapshot(PhasePlaying))
	Draw(core.NewScreen(1, 1), testSnapshot(PhaseGameOver))

	snap := testSnapshot(PhasePlaying)
	snap.Agent.X = 400  // column 20, clear of the HUD
	snap.Agent.Y = -200 // above the ceiling after a jump
	screen := core.NewScreen(80, 24)
	Draw(screen, snap)
	if screen.GetCell(20, 0).Color != core.ColorRed {
		t.Error("agent above the ceiling should be clamped to the top row")
	}
}
