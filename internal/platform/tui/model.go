package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/render"
	"github.com/vovakirdan/dn2sim/internal/sim"
	"github.com/vovakirdan/dn2sim/internal/storage"
)

// QuickSlot is the save slot F5 and F9 use when a store is attached.
const QuickSlot = "quick"

// hudX is the first column of the side panel.
const hudX = render.ViewWidth + 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fatalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Model is the Bubble Tea model that plays one level of a simulation.
type Model struct {
	ctx    *sim.Context
	store  *storage.Store
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	held   *HeldInput
	frame  *render.Frame

	quick       *sim.Snapshot
	status      string
	statusTicks int
	paused      bool
	quitting    bool
	scoreSaved  bool
	err         error
}

// NewModel creates a viewer for a context that already has a level loaded.
// store may be nil.
func NewModel(ctx *sim.Context, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.ScreenW < hudX+18 {
		cfg.ScreenW = hudX + 18
	}
	if cfg.ScreenH < render.ViewHeight+2 {
		cfg.ScreenH = render.ViewHeight + 2
	}
	return Model{
		ctx:    ctx,
		store:  store,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   &HeldInput{},
		err:    ctx.Err(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if msg.Width >= hudX+18 && msg.Height >= render.ViewHeight+2 {
			m.config.ScreenW = msg.Width
			m.config.ScreenH = msg.Height
			m.screen.Resize(msg.Width, msg.Height-1)
		}
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.held.Clear()
	case core.ActionQuickSave:
		m.quickSave()
	case core.ActionQuickLoad:
		m.quickLoad()
	default:
		m.held.Press(a)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused || m.err != nil || m.ctx.Player().Exited() {
		return m, tickCmd(m.config.TickRate)
	}
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	f, err := m.ctx.UpdateFrame(m.held.Frame())
	m.frame = f
	if err != nil {
		m.err = err
		m.ctx.Logger().Error("simulation stopped", "level", m.ctx.LevelID(), "err", err)
	}
	if m.ctx.Player().Exited() {
		m.saveScore()
		m.setStatus("level complete")
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) quickSave() {
	m.quick = m.ctx.Snapshot()
	m.setStatus(fmt.Sprintf("saved frame %d", m.quick.Frame))
	if m.store == nil {
		return
	}
	blob, err := sim.EncodeSnapshot(m.quick)
	if err == nil {
		err = m.store.SaveSlot(QuickSlot, m.quick.LevelID, m.quick.Frame, blob)
	}
	if err != nil {
		m.ctx.Logger().Warn("quick-save not persisted", "err", err)
	}
}

func (m *Model) quickLoad() {
	snap := m.quick
	if snap == nil && m.store != nil {
		snap = m.loadStoredSlot()
	}
	if snap == nil {
		m.setStatus("no quick-save")
		return
	}
	if err := m.ctx.Restore(snap); err != nil {
		m.setStatus("load failed")
		m.ctx.Logger().Warn("quick-load failed", "err", err)
		return
	}
	m.held.Clear()
	m.err = m.ctx.Err()
	m.scoreSaved = false
	m.setStatus(fmt.Sprintf("loaded frame %d", snap.Frame))
}

func (m *Model) loadStoredSlot() *sim.Snapshot {
	entry, err := m.store.LoadSlot(QuickSlot)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotNotFound) {
			m.ctx.Logger().Warn("reading quick-save", "err", err)
		}
		return nil
	}
	if entry.LevelID != m.ctx.LevelID() {
		return nil
	}
	snap, err := sim.DecodeSnapshot(entry.Blob)
	if err != nil {
		m.ctx.Logger().Warn("decoding quick-save", "err", err)
		return nil
	}
	return snap
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusTicks = 2 * m.config.TickRate
}

// saveScore records the run once. Runs without points are not recorded.
func (m *Model) saveScore() {
	p := m.ctx.Player()
	if m.scoreSaved || m.store == nil || p.Score == 0 {
		return
	}
	runID, err := m.store.SaveScore(m.ctx.LevelID(), p.Score, m.ctx.FrameNumber())
	if err != nil {
		m.ctx.Logger().Warn("score not saved", "err", err)
		return
	}
	m.scoreSaved = true
	m.ctx.Logger().Info("score saved", "run", runID, "level", m.ctx.LevelID(), "score", p.Score)
}

// View renders the viewport, the side panel, and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.frame != nil {
		render.Rasterize(m.screen, m.frame, m.ctx.Tiles())
	}
	m.drawPanel()

	out := RenderScreen(m.screen)
	switch {
	case m.err != nil:
		out += "\n" + fatalStyle.Render("FATAL: "+m.err.Error())
	case m.status != "":
		out += "\n" + statusStyle.Render(m.status)
	default:
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

func (m Model) drawPanel() {
	p := m.ctx.Player()
	hud := m.ctx.HUD()
	s := m.screen

	lines := []struct {
		text  string
		color core.Color
	}{
		{"LEVEL " + m.ctx.LevelID(), core.ColorWhite},
		{fmt.Sprintf("FRAME  %d", m.ctx.FrameNumber()), core.ColorDarkGray},
		{fmt.Sprintf("SCORE  %d", p.Score), core.ColorYellow},
		{fmt.Sprintf("HEALTH %s", healthBar(p.Health)), core.ColorLightRed},
		{fmt.Sprintf("WEAPON %s", p.Weapon), core.ColorLightCyan},
		{fmt.Sprintf("AMMO   %d", p.Ammo), core.ColorLightCyan},
		{fmt.Sprintf("ITEMS  %d", p.Inventory.Count()), core.ColorLightGreen},
		{fmt.Sprintf("RADARS %d/%d", hud.RadarDishesTotal-hud.RadarDishes, hud.RadarDishesTotal), core.ColorGreen},
		{fmt.Sprintf("KILLS  %d", hud.Kills), core.ColorLightGray},
		{fmt.Sprintf("STATE  %s", p.State), core.ColorLightGray},
	}
	for i, l := range lines {
		s.DrawText(hudX, i+1, l.text, l.color)
	}

	y := len(lines) + 2
	if hud.MessageTimer > 0 {
		s.DrawText(hudX, y, hud.Message.Text(), core.ColorWhite)
		y++
	}
	if m.frame != nil {
		for _, t := range m.frame.Tutorials {
			s.DrawText(hudX, y, t.Text(), core.ColorLightMagenta)
			y++
		}
	}
	if m.paused {
		s.DrawText(render.ViewWidth/2-3, render.ViewHeight/2, " PAUSED ", core.ColorYellow)
	}
	if p.Exited() {
		s.DrawText(render.ViewWidth/2-7, render.ViewHeight/2, " LEVEL COMPLETE ", core.ColorLightGreen)
	}
	if m.err != nil {
		box := core.Rect{X: 2, Y: render.ViewHeight/2 - 1, W: render.ViewWidth - 4, H: 3}
		s.DrawRect(box, ' ', core.ColorRed)
		s.DrawText(box.X+2, box.Y+1, "SIMULATION HALTED", core.ColorLightRed)
	}
}

func healthBar(hp int) string {
	if hp < 0 {
		hp = 0
	}
	bar := make([]rune, 0, 9)
	for i := 0; i < 9; i++ {
		if i < hp {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '·')
		}
	}
	return string(bar)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the viewer on the local terminal and blocks until it exits.
func Run(ctx *sim.Context, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(ctx, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
