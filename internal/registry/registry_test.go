package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct {
	env Env
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func init() {
	Register("stub", "Stub", func(env Env) Game {
		return &stubGame{env: env}
	})
}

func TestCreateFillsDefaults(t *testing.T) {
	g, err := Create("stub", Env{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	env := g.(*stubGame).env
	if env.Logger == nil || env.Scores == nil || env.Sound == nil || env.Clock == nil {
		t.Errorf("expected every collaborator to be set, got %+v", env)
	}
	if env.Config.Arena.Width == 0 {
		t.Error("expected default config")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", Env{}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("registered game missing from List() or has wrong title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub", "Again", func(Env) Game { return &stubGame{} })
}

func TestExists(t *testing.T) {
	if !Exists("stub") {
		t.Error("Exists(stub) = false")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}
}
