package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id    string
	score int
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return strings.ToUpper(s.id) }
func (s *stubGame) Reset(core.RuntimeConfig) { s.score = 0 }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{Score: s.score} }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	s.score++
	return core.StepResult{State: s.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Fatal("Exists mismatch")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Step(core.NewInputFrame())
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}

	// Each Create returns a fresh instance.
	other, _ := Create("stub_a")
	if other.State().Score != 0 {
		t.Error("Create returned a shared instance")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title of %s = %q", info.ID, info.Title)
			}
		}
	}
	if strings.Join(ids, ",") != "stub_a,stub_b" {
		t.Errorf("List order = %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(nope) err = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
