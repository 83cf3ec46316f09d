package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/sim"
	"github.com/vovakirdan/dn2sim/internal/storage"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyF5}, core.ActionQuickSave},
		{tea.KeyMsg{Type: tea.KeyF9}, core.ActionQuickLoad},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHeldInputExpires(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionRight)
	h.Press(core.ActionQuickSave) // viewer actions are never held

	for i := 0; i < holdTicks; i++ {
		f := h.Frame()
		if !f.Has(core.ActionRight) {
			t.Fatalf("frame %d: Right not held", i)
		}
		if f.Has(core.ActionQuickSave) {
			t.Errorf("frame %d: QuickSave held", i)
		}
	}
	if f := h.Frame(); f != core.NewInputFrame() {
		t.Errorf("Frame() after expiry = %016b, expected empty", f.Bits())
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionJump)
	h.Frame()
	h.Frame()
	h.Press(core.ActionJump)
	for i := 0; i < holdTicks; i++ {
		if !h.Frame().Has(core.ActionJump) {
			t.Fatalf("frame %d after repeat: Jump not held", i)
		}
	}

	h.Press(core.ActionFire)
	h.Clear()
	if h.Frame().Has(core.ActionFire) {
		t.Error("Clear() kept Fire held")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorYellow)
	s.Set(0, 1, '#', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "#"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestScoreRows(t *testing.T) {
	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{LevelID: "l1", Score: 500, Frames: 120, CreatedAt: when},
		{LevelID: "l2", Score: 100, Frames: 60, CreatedAt: when},
	})
	if len(rows) != 2 {
		t.Fatalf("ScoreRows() = %d rows, expected 2", len(rows))
	}
	expected := []string{"#1", "l1", "500", "120", "Mar 05 14:30"}
	for i, v := range expected {
		if rows[0][i] != v {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], v)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("rows[1][0] = %q, expected #2", rows[1][0])
	}
}

func newViewer(t *testing.T) Model {
	t.Helper()
	all, err := levels.Builtin()
	if err != nil || len(all) == 0 {
		t.Fatalf("Builtin() = %d levels, err %v", len(all), err)
	}
	ctx, err := sim.New()
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	if err := ctx.LoadLevel(&all[0]); err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	return NewModel(ctx, nil, core.DefaultConfig())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm
}

func TestModelTicksSimulation(t *testing.T) {
	m := newViewer(t)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if got := m.ctx.FrameNumber(); got != 5 {
		t.Errorf("FrameNumber() = %d, expected 5", got)
	}

	view := m.View()
	if !strings.Contains(view, "SCORE") {
		t.Error("View() missing side panel")
	}
}

func TestModelPauseStopsFrames(t *testing.T) {
	m := newViewer(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(time.Now()))
	if got := m.ctx.FrameNumber(); got != 0 {
		t.Errorf("FrameNumber() while paused = %d, expected 0", got)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(time.Now()))
	if got := m.ctx.FrameNumber(); got != 1 {
		t.Errorf("FrameNumber() after unpause = %d, expected 1", got)
	}
}

func TestModelQuickSaveLoad(t *testing.T) {
	m := newViewer(t)
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyF5})
	saved := m.ctx.Hash()

	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyF9})
	if got := m.ctx.Hash(); got != saved {
		t.Errorf("Hash() after quick-load = %x, expected %x", got, saved)
	}
	if got := m.ctx.FrameNumber(); got != 1 {
		t.Errorf("FrameNumber() after quick-load = %d, expected 1", got)
	}
}

func TestModelQuickSavePersists(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/viewer.db")
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	m := newViewer(t)
	m.store = store
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyF5})

	entry, err := store.LoadSlot(QuickSlot)
	if err != nil {
		t.Fatalf("LoadSlot() error = %v", err)
	}
	if entry.LevelID != m.ctx.LevelID() || entry.Frame != 1 {
		t.Errorf("slot = %s@%d, expected %s@1", entry.LevelID, entry.Frame, m.ctx.LevelID())
	}
}
