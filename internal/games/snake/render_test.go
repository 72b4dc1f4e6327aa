package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderMainMenu(t *testing.T) {
	h := newHarness(Enhanced)
	screen := core.NewScreen(80, 24)
	h.m.Render(screen)

	out := screen.String()
	for _, want := range []string{"S N A K E", "> New Game <", "High Scores", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("main menu missing %q", want)
		}
	}
}

func TestRenderDifficultyDetails(t *testing.T) {
	h := newHarness(Enhanced)
	h.press(core.ActionConfirm)

	screen := core.NewScreen(80, 24)
	h.m.Render(screen)

	if !strings.Contains(screen.String(), "Speed 8  Grid 20x10  Score x1") {
		t.Errorf("difficulty details missing:\n%s", screen.String())
	}
}

func TestRenderBoard(t *testing.T) {
	h := newHarness(Enhanced)
	h.press(core.ActionConfirm)
	h.press(core.ActionConfirm)

	screen := core.NewScreen(80, 24)
	h.m.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Best: 100") {
		t.Errorf("HUD = %q", screen.Row(0))
	}

	out := screen.String()
	if strings.Count(out, "██") != 2 {
		t.Errorf("expected two snake cells, got %d", strings.Count(out, "██"))
	}
	if strings.Count(out, "()") != 1 {
		t.Error("expected exactly one food")
	}
}

func TestRenderPauseOverlay(t *testing.T) {
	h := newHarness(Enhanced)
	h.press(core.ActionConfirm)
	h.press(core.ActionConfirm)
	h.press(core.ActionPause)

	screen := core.NewScreen(80, 24)
	h.m.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Paused") || !strings.Contains(out, "> Resume <") {
		t.Errorf("pause overlay missing:\n%s", out)
	}
}

func TestRenderGameOverReason(t *testing.T) {
	h := newHarness(Minimal)
	for range 30 {
		if h.tick().State.GameOver {
			break
		}
	}

	screen := core.NewScreen(80, 24)
	h.m.Render(screen)

	out := screen.String()
	for _, want := range []string{"Game Over", "You hit the wall", "R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over overlay missing %q", want)
		}
	}
}

func TestRenderHighScores(t *testing.T) {
	h := newHarness(Enhanced)
	h.press(core.ActionDown, core.ActionConfirm)

	screen := core.NewScreen(80, 24)
	h.m.Render(screen)

	out := screen.String()
	for _, want := range []string{"High Scores", "< Easy >", "Player", "100", "2023-01-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("high scores missing %q", want)
		}
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	h := newHarness(Standard)

	screen := core.NewScreen(30, 10)
	h.m.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small message")
	}
}
