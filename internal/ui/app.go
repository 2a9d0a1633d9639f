package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/infblueocean/cybernews/internal/config"
	"github.com/infblueocean/cybernews/internal/loader"
	"github.com/infblueocean/cybernews/internal/logging"
	"github.com/infblueocean/cybernews/internal/state"
)

const (
	masthead      = "CYBER NEWS NETWORK"
	gridGap       = 2
	glitchEvery   = 150 * time.Millisecond
	defaultClock  = time.Second
	loadingBanner = "Loading neural interface..."
)

// Config holds the dependencies and settings of the App.
type Config struct {
	Now             func() time.Time
	Loader          *loader.Loader // nil leaves the screen loading
	Theme           config.Theme
	GlitchIntensity float64
	ClockInterval   time.Duration
}

// App is the root Bubble Tea model for the news screen.
// All news state lives in one state.State value that is replaced, never mutated.
type App struct {
	cfg     Config
	loader  *loader.Loader
	state   state.State
	styles  Styles
	glitch  GlitchEngine
	spinner spinner.Model
	form    submitForm
	vp      viewport.Model

	now    time.Time
	tick   uint32 // clock ticks, drives the live pulse
	frame  uint32 // glitch frames
	width  int
	height int
	ready  bool
}

// NewApp creates the news screen.
func NewApp(cfg Config) App {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Theme == (config.Theme{}) {
		cfg.Theme = config.DefaultTheme()
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = defaultClock
	}

	st := NewStyles(cfg.Theme)
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(st.Pink)),
	)

	return App{
		cfg:     cfg,
		loader:  cfg.Loader,
		state:   state.Initial(),
		styles:  st,
		glitch:  GlitchEngine{Styles: st},
		spinner: sp,
		form:    newSubmitForm(),
		vp:      viewport.New(0, 0),
		now:     cfg.Now(),
	}
}

// Init starts the load, the spinner, the clock and the masthead animation.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.clockTick()}
	if cmd := a.loadItems(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if a.cfg.GlitchIntensity > 0 {
		cmds = append(cmds, glitchTick())
	}
	return tea.Batch(cmds...)
}

func (a App) loadItems() tea.Cmd {
	if a.loader == nil {
		return nil
	}
	l := a.loader
	return func() tea.Msg {
		items, err := l.Await()
		return ItemsLoaded{Items: items, Err: err}
	}
}

func (a App) clockTick() tea.Cmd {
	return tea.Tick(a.cfg.ClockInterval, func(t time.Time) tea.Msg {
		return ClockTick{Time: t}
	})
}

func glitchTick() tea.Cmd {
	return tea.Tick(glitchEvery, func(time.Time) tea.Msg {
		return GlitchTick{}
	})
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.update(msg)
	next.syncViewport()
	return next, cmd
}

func (a App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.form.SetWidth(msg.Width)
		return a, nil

	case ItemsLoaded:
		return a.handleLoaded(msg), nil

	case ClockTick:
		a.now = msg.Time
		a.tick++
		return a, a.clockTick()

	case GlitchTick:
		a.frame++
		return a, glitchTick()

	case spinner.TickMsg:
		if !a.state.Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blink and other widget messages.
	if a.state.ShowSubmitForm {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleLoaded(msg ItemsLoaded) App {
	if msg.Err != nil {
		if !errors.Is(msg.Err, loader.ErrCancelled) {
			logging.Warn("load failed", "error", msg.Err)
		}
		return a
	}
	// A batch racing teardown must not land.
	if a.loader != nil && a.loader.Cancelled() {
		logging.Debug("dropping batch delivered after teardown")
		return a
	}
	a.state = a.state.LoadCompleted(msg.Items)
	return a
}

// handleKey processes keyboard input.
func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	if a.state.ShowSubmitForm {
		return a.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return a.quit()

	case "tab", "right", "l":
		a.selectTab(a.state.ActiveTab.Next())

	case "shift+tab", "left", "h":
		a.selectTab(a.state.ActiveTab.Prev())

	case "1", "2", "3":
		opt := state.Option(msg.String()[0] - '1')
		a.state = a.state.VoteCast(opt)
		logging.Debug("vote cast", "option", opt.Key(), "total", a.state.Votes.Total())

	case "n":
		return a.toggleForm()

	case "up", "k", "down", "j", "pgup", "pgdown":
		var cmd tea.Cmd
		a.vp, cmd = a.vp.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) handleFormKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a.toggleForm()

	case "tab":
		return a, a.form.Cycle(1)

	case "shift+tab":
		return a, a.form.Cycle(-1)

	case "ctrl+s":
		a.submitPlaceholder()
		return a, nil

	case "enter":
		if a.form.SubmitFocused() {
			a.submitPlaceholder()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a *App) selectTab(t state.Tab) {
	a.state = a.state.TabSelected(t)
	logging.Debug("tab selected", "tab", t.String())
}

func (a App) toggleForm() (App, tea.Cmd) {
	a.state = a.state.FormToggled()
	logging.Debug("submit form toggled", "visible", a.state.ShowSubmitForm)
	if a.state.ShowSubmitForm {
		return a, a.form.Focus()
	}
	a.form.Blur()
	return a, nil
}

// submitPlaceholder is where a real submission would go. It only logs.
func (a App) submitPlaceholder() {
	title, content := a.form.Values()
	logging.Debug("submit for review pressed", "title_len", len(title), "content_len", len(content))
}

func (a App) quit() (App, tea.Cmd) {
	a.Teardown()
	return a, tea.Quit
}

// Teardown cancels any pending load. Safe to call more than once.
func (a App) Teardown() {
	if a.loader != nil {
		a.loader.Cancel()
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.vp.View(),
		a.renderFooter(),
		a.renderStatusBar(),
	)
}

// syncViewport re-renders the main area into the scrollable viewport.
func (a *App) syncViewport() {
	if !a.ready {
		return
	}
	chrome := lipgloss.Height(a.renderHeader()) +
		lipgloss.Height(a.renderFooter()) +
		lipgloss.Height(a.renderStatusBar())
	h := a.height - chrome
	if h < 1 {
		h = 1
	}
	a.vp.Width = a.width
	a.vp.Height = h
	a.vp.SetContent(a.renderMain())
}

func (a App) renderHeader() string {
	center := lipgloss.NewStyle().Width(a.width).Align(lipgloss.Center)

	title := a.styles.Title.Render(a.glitch.Glitchify(masthead, a.cfg.GlitchIntensity, a.frame))
	meta := a.styles.HeaderMeta.Render(fmt.Sprintf("◉ LIVE    ◷ %s", a.now.Format("15:04:05")))

	tabs := make([]string, 0, len(state.Tabs))
	for _, t := range state.Tabs {
		style := a.styles.Tab
		if t == a.state.ActiveTab {
			style = a.styles.TabActive
		}
		tabs = append(tabs, style.Render(t.Label()))
	}

	return a.styles.HeaderBox.Width(a.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		center.Render(title),
		center.Render(meta),
		"",
		center.Render(strings.Join(tabs, "  ")),
	))
}

func (a App) renderMain() string {
	sections := []string{
		spread(
			a.styles.Heading.Render("Latest Updates"),
			a.styles.SubmitButton.Render("[n] Submit Article"),
			a.width,
		),
		"",
	}

	if a.state.ShowSubmitForm {
		sections = append(sections, a.form.View(a.styles, a.width))
	}

	if a.state.Loading {
		loading := a.styles.Loading.Width(a.width).Align(lipgloss.Center).
			Render(a.spinner.View() + " " + loadingBanner)
		sections = append(sections, loading)
	} else {
		sections = append(sections, a.renderGrid())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// columns mirrors a responsive grid: one, two or three cards per row.
func columns(width int) int {
	switch {
	case width < 80:
		return 1
	case width < 120:
		return 2
	default:
		return 3
	}
}

func (a App) renderGrid() string {
	cols := columns(a.width)
	cardWidth := (a.width - (cols-1)*gridGap) / cols

	opts := CardOptions{
		Width: cardWidth,
		Votes: a.state.Votes,
		Pulse: a.tick%2 == 0,
	}

	var cards []string
	for i, item := range a.state.Items {
		card, err := RenderCard(item, opts, a.styles)
		if err != nil {
			logging.Error("render card", "index", i, "error", err)
			continue
		}
		cards = append(cards, card)
	}

	var rows []string
	gap := strings.Repeat(" ", gridGap)
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		var row []string
		for j, c := range cards[i:end] {
			if j > 0 {
				row = append(row, gap)
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a App) renderFooter() string {
	text := fmt.Sprintf("© %d %s • NEURAL LINK ESTABLISHED", a.now.Year(), masthead)
	return a.styles.Footer.Width(a.width).Align(lipgloss.Center).Render(text)
}

func (a App) renderStatusBar() string {
	hints := "[tab] section  [1-3] vote  [n] submit  [↑↓] scroll  [q] quit"
	if a.state.ShowSubmitForm {
		hints = "[tab] next field  [enter] submit  [esc] close form  [ctrl+c] quit"
	}
	return a.styles.StatusBar.Width(a.width).Render(hints)
}

// State returns the current news state (for testing).
func (a App) State() state.State {
	return a.state
}
