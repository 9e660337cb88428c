package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/discs/internal/batch"
	"github.com/vovakirdan/discs/internal/core"
	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/plot"
	"github.com/vovakirdan/discs/internal/scenario"
	"github.com/vovakirdan/discs/internal/storage"
)

// Viewer layout constants
const (
	panelWidth          = 36 // Side panel width including border
	minWidthForPanel    = 70 // Narrower terminals show only the plot
	bottomBarHeight     = 2  // Status line + help line
	defaultViewerWidth  = 80
	defaultViewerHeight = 24
)

// ViewerOptions configures a ViewerModel.
type ViewerOptions struct {
	Epsilon   float64
	Margin    float64
	Recorder  batch.Recorder // Optional, enables saving runs
	ExportDir string         // Where edited scenarios are written
	Width     int
	Height    int
}

// ViewerModel is the Bubble Tea model that plots a disk set and lets the
// user move and resize disks while the common-point search reruns.
type ViewerModel struct {
	scenario scenario.Scenario
	original []geom.Disk
	disks    []geom.Disk
	finder   geom.Finder
	report   geom.Report
	evalErr  error
	selected int
	nudge    float64
	opts     ViewerOptions

	screen *core.Screen
	keys   ViewerKeyMap
	help   help.Model
	theme  Theme
	width  int
	height int

	status    string
	statusSeq int

	standalone bool // esc quits instead of returning to the picker
	quitting   bool
	back       bool
}

// NewViewerModel creates a viewer for the given scenario.
func NewViewerModel(sc scenario.Scenario, opts ViewerOptions) ViewerModel {
	if opts.Width <= 0 {
		opts.Width = defaultViewerWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultViewerHeight
	}
	if opts.Epsilon < 0 {
		opts.Epsilon = geom.DefaultEpsilon
	}

	original := append([]geom.Disk(nil), sc.Disks...)
	m := ViewerModel{
		scenario: sc,
		original: original,
		disks:    append([]geom.Disk(nil), original...),
		finder:   geom.NewFinder(opts.Epsilon),
		nudge:    nudgeFor(original),
		opts:     opts,
		screen:   core.NewScreen(0, 0),
		keys:     DefaultViewerKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		width:    opts.Width,
		height:   opts.Height,
	}
	m.help.Width = opts.Width
	m.evaluate()
	return m
}

// nudgeFor picks the move and resize step: a tenth of the largest radius.
func nudgeFor(disks []geom.Disk) float64 {
	largest := 0.0
	for _, d := range disks {
		largest = math.Max(largest, d.Radius)
	}
	if largest == 0 {
		return 0.1
	}
	return largest / 10
}

// evaluate reruns the search over the current disks.
func (m *ViewerModel) evaluate() {
	m.report, m.evalErr = m.finder.Explain(m.disks)
}

// Init initializes the viewer.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.back = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if len(m.disks) > 0 {
			m.selected = (m.selected + 1) % len(m.disks)
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if len(m.disks) > 0 {
			m.selected = (m.selected - 1 + len(m.disks)) % len(m.disks)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.move(-m.nudge, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(m.nudge, 0)
	case key.Matches(msg, m.keys.Up):
		m.move(0, m.nudge)
	case key.Matches(msg, m.keys.Down):
		m.move(0, -m.nudge)
	case key.Matches(msg, m.keys.Grow):
		m.resize(m.nudge)
	case key.Matches(msg, m.keys.Shrink):
		m.resize(-m.nudge)

	case key.Matches(msg, m.keys.Reset):
		m.disks = append(m.disks[:0], m.original...)
		m.evaluate()
		return m.setStatus("disks reset")

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Export):
		return m.export()
	}

	return m, nil
}

func (m *ViewerModel) move(dx, dy float64) {
	if m.selected >= len(m.disks) {
		return
	}
	c := m.disks[m.selected].Center
	m.disks[m.selected].Center = geom.NewPoint(c.X+dx, c.Y+dy)
	m.evaluate()
}

func (m *ViewerModel) resize(dr float64) {
	if m.selected >= len(m.disks) {
		return
	}
	m.disks[m.selected].Radius = math.Max(0, m.disks[m.selected].Radius+dr)
	m.evaluate()
}

// setStatus shows a message and schedules its removal.
func (m ViewerModel) setStatus(format string, args ...any) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = fmt.Sprintf(format, args...)
	return m, expireStatusCmd(m.statusSeq)
}

// save records the current search in the run history.
func (m ViewerModel) save() (tea.Model, tea.Cmd) {
	if m.opts.Recorder == nil {
		return m.setStatus("no history database")
	}
	if m.evalErr != nil {
		return m.setStatus("cannot save: %v", m.evalErr)
	}

	id, err := m.opts.Recorder.SaveRun(storage.Run{
		ScenarioID: m.scenario.ID,
		DiskCount:  len(m.disks),
		Found:      m.report.Found,
		X:          m.report.Witness.X,
		Y:          m.report.Witness.Y,
		Epsilon:    m.finder.Epsilon,
	})
	if err != nil {
		return m.setStatus("save failed: %v", err)
	}
	return m.setStatus("saved run %s", shortID(id))
}

// export writes the current disks as a scenario file.
func (m ViewerModel) export() (tea.Model, tea.Cmd) {
	dir := m.opts.ExportDir
	if dir == "" {
		dir = "."
	}

	edited := m.scenario
	edited.ID = m.scenario.ID + "-edited"
	edited.Disks = append([]geom.Disk(nil), m.disks...)
	edited.Expect = scenario.Expectation{}

	data, err := scenario.MarshalYAML(edited)
	if err != nil {
		return m.setStatus("export failed: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return m.setStatus("export failed: %v", err)
	}
	path := filepath.Join(dir, edited.ID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return m.setStatus("export failed: %v", err)
	}
	return m.setStatus("wrote %s", path)
}

// View renders the plot, the side panel and the bottom bar.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	plotW := m.width
	showPanel := m.width >= minWidthForPanel
	if showPanel {
		plotW -= panelWidth
	}
	plotH := core.Max(m.height-bottomBarHeight, 3)

	m.screen.Resize(core.Max(plotW, 3), plotH)
	m.screen.Clear()
	opts := plot.DefaultOptions()
	opts.Selected = m.selected
	if m.opts.Margin > 0 {
		opts.Margin = m.opts.Margin
	}
	if m.evalErr == nil {
		opts.Report = &m.report
	}
	plot.Draw(m.screen, m.disks, opts)

	body := RenderScreen(m.screen)
	if showPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderPanel(plotH))
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// renderPanel renders the disk list, pair classifications and the outcome.
func (m ViewerModel) renderPanel(height int) string {
	t := m.theme
	inner := panelWidth - 4 // Border and padding
	var lines []string

	lines = append(lines, t.PanelTitle.Render(truncate(m.scenario.Title(), inner)))
	lines = append(lines, t.Label.Render("eps ")+t.Value.Render(fmt.Sprintf("%g", m.finder.Epsilon)))
	lines = append(lines, "")

	switch {
	case m.evalErr != nil:
		lines = append(lines, t.Error.Render(truncate(m.evalErr.Error(), inner)))
	case m.report.Found:
		lines = append(lines, t.Found.Render("common point "+m.report.Witness.String()))
	default:
		lines = append(lines, t.NotFound.Render("no common point"))
		if len(m.report.Rejected) > 0 {
			lines = append(lines, t.Dim.Render(truncate("rejected by "+joinInts(m.report.Rejected), inner)))
		}
	}
	lines = append(lines, "")

	lines = append(lines, t.Label.Render("disks"))
	for i, d := range m.disks {
		marker := "  "
		if i == m.selected {
			marker = t.Selected.Render("> ")
		}
		label := ColorStyle(core.DiskColor(i)).Render(fmt.Sprintf("%d", i))
		lines = append(lines, marker+label+" "+t.Value.Render(truncate(formatDisk(d), inner-4)))
	}
	lines = append(lines, "")

	lines = append(lines, t.Label.Render("pairs"))
	for _, p := range m.report.Pairs {
		lines = append(lines, fmt.Sprintf("%d-%d %s", p.I, p.J, t.Value.Render(p.Type.String())))
	}

	// Border takes two rows
	maxLines := core.Max(height-2, 1)
	if len(lines) > maxLines {
		hidden := len(lines) - maxLines + 1
		lines = append(lines[:maxLines-1], t.Dim.Render(fmt.Sprintf("… %d more", hidden)))
	}

	return t.PanelBorder.
		Width(panelWidth - 2).
		Height(maxLines).
		Render(strings.Join(lines, "\n"))
}

// Disks returns the current, possibly edited, disks.
func (m ViewerModel) Disks() []geom.Disk {
	return m.disks
}

// Report returns the search report for the current disks.
func (m ViewerModel) Report() (geom.Report, error) {
	return m.report, m.evalErr
}

// Selected returns the index of the selected disk.
func (m ViewerModel) Selected() int {
	return m.selected
}

// Status returns the current status line.
func (m ViewerModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// BackToPicker returns true if user requested to go back to the picker.
func (m ViewerModel) BackToPicker() bool {
	return m.back
}

func formatDisk(d geom.Disk) string {
	return fmt.Sprintf("(%.3g, %.3g) r=%.3g", d.Center.X, d.Center.Y, d.Radius)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// RunViewer starts the viewer for a single scenario.
func RunViewer(sc scenario.Scenario, opts ViewerOptions) error {
	model := NewViewerModel(sc, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
