package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                  { return g.id }
func (g *stubGame) Title() string                               { return strings.ToUpper(g.id) }
func (g *stubGame) Init(core.RuntimeConfig)                     {}
func (g *stubGame) Resize(int, int)                             {}
func (g *stubGame) Step(float64, *core.Tracker) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                         {}
func (g *stubGame) State() core.GameState                       { return core.GameState{} }
func (g *stubGame) Pacing() config.FrameConfig                  { return config.FrameConfig{} }

func register(id string) {
	Register(id, func() Game { return &stubGame{id: id} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("zeta")
	register("alpha")

	if !Exists("alpha") || Exists("missing") {
		t.Error("Exists() disagrees with registrations")
	}

	games := List()
	if len(games) < 2 {
		t.Fatalf("List() = %v", games)
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted by ID: %v", games)
		}
	}

	g, err := Create("alpha")
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if g.ID() != "alpha" || g.Title() != "ALPHA" {
		t.Errorf("created %s %q", g.ID(), g.Title())
	}

	// Every Create returns a fresh instance.
	g2, _ := Create("alpha")
	if g == g2 {
		t.Error("Create() should not share instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(unknown) = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("dup")
	defer func() {
		if recover() == nil {
			t.Error("registering an ID twice should panic")
		}
	}()
	register("dup")
}
