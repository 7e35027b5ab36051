// Package tui provides the Bubble Tea wheel interface.
package tui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuispin/internal/locale"
	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/names"
	"github.com/verte-zerg/tuispin/internal/spin"
	"github.com/verte-zerg/tuispin/internal/wheel"
)

const (
	// DefaultFrameInterval paces animation frames.
	DefaultFrameInterval = 16 * time.Millisecond
	// DefaultDebounce is the quiet period before live edits are applied.
	DefaultDebounce = 400 * time.Millisecond

	chromeRows      = 3
	minPreviewWidth = 20
	maxPreviewWidth = 40
)

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modePrompt
)

type frameMsg struct{ at time.Time }

type debounceMsg struct{ seq int }

type fileLoadedMsg struct {
	path  string
	names []string
	err   error
}

type clipboardMsg struct {
	text string
	err  error
}

// History records completed spins.
type History interface {
	InsertSpin(ctx context.Context, res model.SpinResult) (int64, error)
	Summary(ctx context.Context) (model.HistorySummary, error)
}

// Options configure a Model. Catalog is required; the rest are optional.
type Options struct {
	Config      model.Config
	Catalog     *locale.Catalog
	History     History
	Random      spin.Random
	InitialPath string
	// ReadClipboard defaults to the system clipboard.
	ReadClipboard func() (string, error)
}

// Model implements the Bubble Tea wheel UI.
type Model struct {
	config        model.Config
	cat           *locale.Catalog
	history       History
	readClipboard func() (string, error)
	initialPath   string

	ctrl  *spin.Controller
	sched *teaScheduler

	editor  textarea.Model
	prompt  textinput.Model
	mode    mode
	editSeq int

	status  string
	winner  int
	summary model.HistorySummary

	width     int
	height    int
	canvas    *wheel.Canvas
	wheelView string
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#BCCCDC"))
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB703")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	panelStyle  = lipgloss.NewStyle().PaddingLeft(1)
)

// NewModel constructs the wheel TUI model.
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	m := &Model{
		config:        cfg,
		cat:           opts.Catalog,
		history:       opts.History,
		readClipboard: opts.ReadClipboard,
		initialPath:   opts.InitialPath,
		sched:         &teaScheduler{interval: cfg.FrameInterval},
		winner:        -1,
	}
	if m.readClipboard == nil {
		m.readClipboard = clipboard.ReadAll
	}
	m.ctrl = spin.NewController(m.sched, spin.Options{
		Duration: cfg.Duration,
		Random:   opts.Random,
		Hooks: spin.Hooks{
			Frame: m.redraw,
			Done:  m.finishSpin,
		},
	})

	m.editor = textarea.New()
	m.editor.ShowLineNumbers = false
	m.editor.CharLimit = 0
	m.editor.Prompt = ""
	m.editor.Blur()

	m.prompt = textinput.New()
	m.prompt.Prompt = m.cat.T(locale.KeyFilePrompt)

	m.status = m.cat.T(locale.KeyWelcome)
	m.loadSummary()
	return m
}

// Controller exposes the wheel state for callers that drive the model.
func (m *Model) Controller() *spin.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialPath == "" {
		return nil
	}
	return loadFile(m.initialPath)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		m.sched.fire(msg.at)
		return m, m.sched.next()
	case debounceMsg:
		return m, m.handleDebounce(msg)
	case fileLoadedMsg:
		m.applyFile(msg)
		return m, nil
	case clipboardMsg:
		m.applyClipboard(msg)
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m, m.handleEditKey(msg)
		case modePrompt:
			return m, m.handlePromptKey(msg)
		default:
			return m, m.handleKey(msg)
		}
	default:
		return m, m.forward(msg)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	statusLine := statusStyle.Render(m.status)
	if m.mode == modePrompt {
		statusLine = m.prompt.View()
	}
	if m.width == 0 || m.height == 0 {
		return statusLine
	}
	wheelCols, previewCols, bodyRows := layoutFor(m.width, m.height)
	left := lipgloss.Place(wheelCols, bodyRows, lipgloss.Center, lipgloss.Center, m.wheelView)
	var right string
	if m.mode == modeEdit {
		right = m.editor.View()
	} else {
		right = strings.Join(renderPreview(m.ctrl.Names(), m.winner, previewCols-1, bodyRows), "\n")
	}
	right = panelStyle.Width(previewCols).Height(bodyRows).MaxHeight(bodyRows).Render(right)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, statusLine),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footerStyle.Render(m.helpLine())),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter()),
	)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case " ", "enter":
		if !m.ctrl.RequestSpin() {
			return nil
		}
		m.winner = -1
		m.status = m.cat.T(locale.KeySpinning)
		return m.sched.next()
	case "o":
		m.mode = modePrompt
		m.prompt.Reset()
		return m.prompt.Focus()
	case "f":
		m.keepPortion(names.KindFirstToken)
	case "l":
		m.keepPortion(names.KindLastToken)
	case "p":
		return readClipboard(m.readClipboard)
	case "e":
		m.mode = modeEdit
		return m.editor.Focus()
	}
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.editor.Blur()
		m.mode = modeNormal
		return nil
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() == before {
		return cmd
	}
	m.editSeq++
	return tea.Batch(cmd, m.debounce(m.editSeq))
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.prompt.Blur()
		m.mode = modeNormal
		return nil
	case "enter":
		path := strings.TrimSpace(m.prompt.Value())
		m.prompt.Blur()
		m.mode = modeNormal
		if path == "" {
			return nil
		}
		return loadFile(path)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case modePrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return cmd
}

func (m *Model) debounce(seq int) tea.Cmd {
	return tea.Tick(m.config.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// handleDebounce applies the editor once its content has been quiet for a
// full period. Stale ticks are dropped; a tick landing mid-spin re-arms.
func (m *Model) handleDebounce(msg debounceMsg) tea.Cmd {
	if msg.seq != m.editSeq {
		return nil
	}
	if m.ctrl.Spinning() {
		return m.debounce(msg.seq)
	}
	m.applyEditor()
	return nil
}

func (m *Model) applyEditor() {
	text := m.editor.Value()
	parsed := names.ParseLines(text)
	if len(parsed) == 0 {
		m.status = m.cat.T(locale.KeyEmptyEdit)
		return
	}
	if err := m.ctrl.SetList(parsed, true); err != nil {
		m.status = m.errorStatus(err)
		return
	}
	m.winner = -1
	m.status = m.cat.T(locale.KeyEdited)
}

func (m *Model) applyFile(msg fileLoadedMsg) {
	if msg.err != nil {
		log.Printf("failed to load %s: %v", msg.path, msg.err)
		m.status = m.cat.T(locale.KeyFileReadFailed)
		return
	}
	if !m.setNames(msg.names, true) {
		return
	}
	m.status = m.cat.T(locale.KeyLoaded, len(msg.names))
}

func (m *Model) applyClipboard(msg clipboardMsg) {
	if msg.err != nil {
		log.Printf("failed to read clipboard: %v", msg.err)
		m.status = m.cat.T(locale.KeyClipboardFailed)
		return
	}
	if strings.TrimSpace(msg.text) == "" {
		m.status = m.cat.T(locale.KeyEmptyPaste)
		return
	}
	parsed := names.ParseLines(msg.text)
	if !m.setNames(parsed, true) {
		return
	}
	m.status = m.cat.T(locale.KeyPasted, len(parsed))
}

func (m *Model) keepPortion(kind names.Kind) {
	derived, err := m.ctrl.KeepPortion(kind)
	if err != nil {
		m.status = m.errorStatus(err)
		return
	}
	m.syncEditor(derived)
	if kind == names.KindLastToken {
		m.status = m.cat.T(locale.KeyShowingLast)
		return
	}
	m.status = m.cat.T(locale.KeyShowingFirst)
}

// setNames puts list on the wheel and mirrors it into the editor. It reports
// false and sets the status when the list is refused.
func (m *Model) setNames(list []string, storeOriginal bool) bool {
	if err := m.ctrl.SetList(list, storeOriginal); err != nil {
		m.status = m.errorStatus(err)
		return false
	}
	m.syncEditor(list)
	return true
}

// syncEditor mirrors a list set by the program into the editor. Pending
// debounce ticks belong to the replaced text and are invalidated.
func (m *Model) syncEditor(list []string) {
	m.winner = -1
	m.editSeq++
	m.editor.SetValue(strings.Join(list, "\n"))
}

func (m *Model) errorStatus(err error) string {
	switch {
	case errors.Is(err, names.ErrEmptyInput):
		return m.cat.T(locale.KeyEmptyInput)
	case errors.Is(err, names.ErrNoOriginal):
		return m.cat.T(locale.KeyNoOriginal)
	case errors.Is(err, spin.ErrSpinning):
		return m.cat.T(locale.KeyBusy)
	default:
		log.Printf("unexpected list error: %v", err)
		return m.cat.T(locale.KeyEmptyInput)
	}
}

func (m *Model) finishSpin(res model.SpinResult) {
	m.winner = res.Index
	m.status = m.cat.T(locale.KeySelected, res.Winner)
	if m.history == nil {
		return
	}
	if _, err := m.history.InsertSpin(context.Background(), res); err != nil {
		log.Printf("failed to save spin: %v", err)
		return
	}
	m.summary.Spins++
	m.summary.LastWinner = res.Winner
	m.summary.HasLast = true
}

func (m *Model) loadSummary() {
	if m.history == nil {
		return
	}
	summary, err := m.history.Summary(context.Background())
	if err != nil {
		log.Printf("failed to load spin history: %v", err)
		return
	}
	m.summary = summary
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	wheelCols, previewCols, bodyRows := layoutFor(width, height)
	side := wheel.SurfaceSize(wheelCols, bodyRows, m.config.MaxSize)
	if m.canvas == nil || m.canvas.Cols() != side {
		m.canvas = wheel.NewWheelCanvas(side)
	}
	m.editor.SetWidth(max(previewCols-1, 1))
	m.editor.SetHeight(bodyRows)
	m.prompt.Width = max(width-len(m.prompt.Prompt)-1, 1)
	m.redraw(m.ctrl.Rotation())
}

func (m *Model) redraw(rotation float64) {
	if m.canvas == nil {
		return
	}
	wheel.Render(m.canvas, m.ctrl.Names(), rotation)
	m.wheelView = m.canvas.Render()
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeEdit:
		return m.cat.T(locale.KeyHelpEdit)
	case modePrompt:
		return m.cat.T(locale.KeyHelpPrompt)
	default:
		return m.cat.T(locale.KeyHelp)
	}
}

func (m *Model) renderFooter() string {
	segments := []string{m.cat.T(locale.KeyFooterEntrants, len(m.ctrl.Names()))}
	if m.history != nil {
		segments = append(segments, m.cat.T(locale.KeyFooterSpins, m.summary.Spins))
		if m.summary.HasLast {
			segments = append(segments, m.cat.T(locale.KeyFooterLast, m.summary.LastWinner))
		}
	}
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

// layoutFor splits the terminal into the wheel area, the preview column and
// the body height left after the status, help and footer lines.
func layoutFor(width, height int) (wheelCols, previewCols, bodyRows int) {
	previewCols = min(max(width/3, minPreviewWidth), maxPreviewWidth)
	if floor := wheel.MinSize + wheel.ContainerMargin; width-previewCols < floor {
		previewCols = max(width-floor, 0)
	}
	wheelCols = width - previewCols
	bodyRows = max(height-chromeRows, 1)
	return wheelCols, previewCols, bodyRows
}

func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		list, err := names.ReadFile(path)
		return fileLoadedMsg{path: path, names: list, err: err}
	}
}

func readClipboard(read func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		text, err := read()
		return clipboardMsg{text: text, err: err}
	}
}
