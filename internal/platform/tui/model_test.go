package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rover-playground/internal/core"
	_ "github.com/vovakirdan/rover-playground/internal/missions"
	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

// labDescriptor is a flat world with no objectives: reaching target completes it.
func labDescriptor(target core.Vec3) core.Descriptor {
	return core.Descriptor{
		ID:         "lab",
		Name:       "Test Lab",
		Mission:    "Drive to the marker.",
		Difficulty: core.DifficultyBeginner,
		Target:     target,
	}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 100
	cfg.ScreenH = 30
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPlaygroundHeldKeyDrives(t *testing.T) {
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -80}), nil, testConfig())
	t0 := time.Unix(1000, 0)

	next, _ := m.handleKey(runeKey('w'), t0)
	m = next.(PlaygroundModel)
	for i := range 10 {
		next, _ = m.handleTick(t0.Add(time.Duration(i) * 16 * time.Millisecond))
		m = next.(PlaygroundModel)
	}

	tel := m.Session().Telemetry()
	if tel.Tick != 10 {
		t.Errorf("ticks = %d, want 10", tel.Tick)
	}
	if tel.Speed <= 0 {
		t.Errorf("speed = %v, want forward motion", tel.Speed)
	}
	if tel.Position.Z >= 0 {
		t.Errorf("z = %v, want movement north", tel.Position.Z)
	}
}

func TestPlaygroundReleasedKeyCoasts(t *testing.T) {
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -80}), nil, testConfig())
	t0 := time.Unix(1000, 0)

	next, _ := m.handleKey(runeKey('w'), t0)
	m = next.(PlaygroundModel)
	next, _ = m.handleTick(t0)
	m = next.(PlaygroundModel)

	// Past the hold window the throttle is off.
	next, _ = m.handleTick(t0.Add(time.Second))
	m = next.(PlaygroundModel)
	if in := m.Session().ReadInput(); in.Forward {
		t.Error("forward should be released after the hold window")
	}
}

func TestPlaygroundPauseStopsTime(t *testing.T) {
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -80}), nil, testConfig())
	t0 := time.Unix(1000, 0)

	next, _ := m.handleKey(runeKey('p'), t0)
	m = next.(PlaygroundModel)
	next, _ = m.handleTick(t0.Add(time.Second))
	m = next.(PlaygroundModel)

	if tick := m.Session().Telemetry().Tick; tick != 0 {
		t.Errorf("paused session advanced to tick %d", tick)
	}
}

func TestPlaygroundRestart(t *testing.T) {
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -80}), nil, testConfig())
	t0 := time.Unix(1000, 0)

	next, _ := m.handleTick(t0)
	m = next.(PlaygroundModel)
	old := m.Session()

	next, _ = m.handleKey(runeKey('r'), t0)
	m = next.(PlaygroundModel)

	if m.Session() == old {
		t.Fatal("restart should open a new session")
	}
	if !old.Closed() {
		t.Error("restart should close the old session")
	}
	if tick := m.Session().Telemetry().Tick; tick != 0 {
		t.Errorf("new session tick = %d, want 0", tick)
	}
}

func TestPlaygroundSavesCompletedRun(t *testing.T) {
	store := openStore(t)
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -2}), store, testConfig(), WithDriver("ann"))
	t0 := time.Unix(1000, 0)

	for i := range 3 {
		next, _ := m.handleTick(t0.Add(time.Duration(i) * 16 * time.Millisecond))
		m = next.(PlaygroundModel)
	}

	if !m.Session().Complete() {
		t.Fatal("starting inside the target radius should complete the mission")
	}
	runs, err := store.BestRuns("lab", 10)
	if err != nil {
		t.Fatalf("BestRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want exactly 1", len(runs))
	}
	if runs[0].Driver != "ann" {
		t.Errorf("driver = %q, want ann", runs[0].Driver)
	}
	if !m.hasBest {
		t.Error("best time should be set after the first run")
	}
}

func TestPlaygroundViewFitsTinyScreen(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 8, 1
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -80}), nil, cfg)

	// Must not panic with no room for the map.
	_ = m.View()
}

func TestPlaygroundBackQuitsStandalone(t *testing.T) {
	m := NewPlaygroundModel(labDescriptor(core.Vec3{Z: -80}), nil, testConfig())

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, time.Now())
	m = next.(PlaygroundModel)
	if !m.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if cmd == nil {
		t.Error("standalone drive should quit its program on esc")
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "ann")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.screen != screenDrive || m.drive == nil {
		t.Fatal("enter should start a drive")
	}
	if m.View() == "" {
		t.Fatal("drive view should render")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
	if m.quitting {
		t.Error("leaving a drive should not end the SSH session")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.screen != screenRuns {
		t.Error("tab should open the runs board")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.screen != screenMenu {
		t.Error("esc on the runs board should return to the menu")
	}
}

func TestRunsBoard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{Planet: "earth", Driver: "ann", Duration: 90 * time.Second, Distance: 300}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	m := NewRunsModel(store, 100, 30)
	if len(m.planets) != len(registry.List()) {
		t.Fatalf("board lists %d worlds, want %d", len(m.planets), len(registry.List()))
	}
	if m.planets[0].ID != "earth" {
		t.Fatalf("first world = %q, want earth", m.planets[0].ID)
	}
	if len(m.runs) != 1 {
		t.Fatalf("earth runs = %d, want 1", len(m.runs))
	}
	if !strings.Contains(m.View(), "BEST RUNS - Earth: Valley Proving Ground") {
		t.Error("title should name the selected world")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.cursor != 1 || len(m.runs) != 0 {
		t.Errorf("after tab: cursor %d, runs %d; want 1, 0", m.cursor, len(m.runs))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(RunsModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(RunsModel)
	if m.cursor != len(m.planets)-1 {
		t.Errorf("shift+tab should wrap to the last world, got %d", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(RunsModel)
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
}
