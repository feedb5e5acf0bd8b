// Package ui is the bubbletea presentation layer for the interactive table.
// All core decisions (grouping, ordering, layout) live in internal/view; this
// package only forwards events and renders the published snapshots.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cloctop/internal/cloc"
	"github.com/yildizm/cloctop/internal/stats"
	"github.com/yildizm/cloctop/internal/view"
)

// Options are the startup parameters for the interactive viewer.
type Options struct {
	Runner      *cloc.Runner
	Path        string
	InitialKey  view.GroupKey
	DisplayMode view.DisplayMode
}

// Model is the bubbletea model wrapping the view controller.
type Model struct {
	opts Options

	width  int
	height int
	ready  bool

	scanning bool
	scanErr  error

	store      *stats.Store
	controller *view.Controller
	header     cloc.Header

	body viewport.Model

	// quit state: quitKeep leaves the final table in the terminal,
	// quitClear wipes it.
	quitKeep  bool
	quitClear bool

	spinnerFrame int
	tick         int

	styles styles
}

type styles struct {
	title    lipgloss.Style
	dim      lipgloss.Style
	header   lipgloss.Style
	active   lipgloss.Style
	summary  lipgloss.Style
	errText  lipgloss.Style
	controls lipgloss.Style
}

func defaultStyles() styles {
	primary := lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	secondary := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	warning := lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	errColor := lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}

	return styles{
		title:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(secondary),
		header:   lipgloss.NewStyle().Foreground(secondary).Bold(true).Underline(true),
		active:   lipgloss.NewStyle().Foreground(warning).Bold(true).Underline(true),
		summary:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		errText:  lipgloss.NewStyle().Foreground(errColor),
		controls: lipgloss.NewStyle().Foreground(secondary),
	}
}

// NewModel creates a model that scans on startup.
func NewModel(opts Options) *Model {
	return &Model{
		opts:     opts,
		scanning: true,
		styles:   defaultStyles(),
	}
}

// Init starts the cloc subprocess and the spinner.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{createScanCommand(m.opts.Runner), tick()}
	if m.opts.DisplayMode == view.Fullscreen {
		cmds = append(cmds, tea.EnterAltScreen)
	}
	return tea.Batch(cmds...)
}

// Update handles events. Events arrive strictly one at a time, so every
// controller transition is fully published before the next is accepted.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.tick++
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerChars)
		if m.scanning {
			return m, tick()
		}
		return m, nil
	case scanCompleteMsg:
		return m.handleScanComplete(msg)
	case scanErrorMsg:
		m.scanning = false
		m.scanErr = msg.err
		return m, nil
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	if m.controller != nil {
		m.controller.Resize(msg.Width, msg.Height)
		m.syncViewport()
	}
	return m, nil
}

func (m *Model) handleScanComplete(msg scanCompleteMsg) (tea.Model, tea.Cmd) {
	m.scanning = false
	m.header = msg.output.Header

	store := stats.NewStore()
	if err := store.Ingest(msg.output.Records); err != nil {
		m.scanErr = err
		return m, nil
	}

	width, height := m.width, m.height
	if width == 0 {
		width, height = 80, 24
	}

	controller, err := view.NewController(store, m.opts.InitialKey, m.opts.DisplayMode, width, height)
	if err != nil {
		m.scanErr = err
		return m, nil
	}

	m.store = store
	m.controller = controller
	m.body = viewport.New(width, 1)
	m.syncViewport()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitKeep = true
		return m, tea.Quit
	case "Q", "ctrl+c":
		m.quitClear = true
		return m, tea.Quit
	}

	if m.controller == nil {
		return m, nil
	}

	switch msg.String() {
	case "f":
		return m.switchMode(view.GroupByFile)
	case "l":
		return m.switchMode(view.GroupByLanguage)
	case "d":
		return m.switchMode(view.GroupByDirectory)
	case "1", "2", "3", "4", "5", "6":
		return m.sortByIndex(int(msg.String()[0] - '1'))
	case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) switchMode(key view.GroupKey) (tea.Model, tea.Cmd) {
	// A rejected transition leaves the previous snapshot untouched, so the
	// error can simply be ignored here; SwitchMode only fails on keys this
	// function never passes.
	if err := m.controller.SwitchMode(key); err == nil {
		m.syncViewport()
	}
	return m, nil
}

func (m *Model) sortByIndex(i int) (tea.Model, tea.Cmd) {
	v, _ := m.controller.Current()
	if i < 0 || i >= len(v.Columns) {
		return m, nil
	}
	if err := m.controller.ToggleSort(v.Columns[i].ID); err == nil {
		m.syncViewport()
	}
	return m, nil
}

// syncViewport refits the scroll window to the freshly published snapshot.
func (m *Model) syncViewport() {
	v, plan := m.controller.Current()

	rows := plan.TableHeight - 1 // minus the header line
	if rows < 1 {
		rows = 1
	}
	m.body.Width = plan.Width()
	m.body.Height = rows
	m.body.SetContent(renderRows(v, plan, m.styles))
	m.body.GotoTop()
}

// Run starts the interactive viewer and blocks until quit. When the user
// chose the keep-output quit in fullscreen mode, the final table is printed
// after the alternate screen is restored.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	if m, ok := final.(*Model); ok && m.quitKeep && opts.DisplayMode == view.Fullscreen && m.controller != nil {
		fmt.Println(m.renderTableScreen())
	}
	return nil
}
