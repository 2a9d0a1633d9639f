package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/infblueocean/cybernews/internal/loader"
	"github.com/infblueocean/cybernews/internal/news"
	"github.com/infblueocean/cybernews/internal/state"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 5, 0, time.UTC)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(App)
}

func newTestApp(t *testing.T, l *loader.Loader, width int) App {
	t.Helper()
	app := NewApp(Config{
		Now:    func() time.Time { return fixedNow },
		Loader: l,
	})
	return send(t, app, tea.WindowSizeMsg{Width: width, Height: 300})
}

func loadedApp(t *testing.T, width int) App {
	t.Helper()
	return send(t, newTestApp(t, nil, width), ItemsLoaded{Items: news.Seed(fixedNow)})
}

func view(a App) string {
	return ansi.Strip(a.View())
}

func TestAppNotReadyBeforeSize(t *testing.T) {
	app := NewApp(Config{})
	if got := app.View(); got != "Initialising..." {
		t.Errorf("View() before size = %q", got)
	}
}

func TestAppInitialRenderShowsLoading(t *testing.T) {
	app := newTestApp(t, nil, 100)
	out := view(app)

	if !app.State().Loading {
		t.Error("app should start loading")
	}
	if !strings.Contains(out, "Loading neural interface...") {
		t.Errorf("loading banner missing:\n%s", out)
	}
	if strings.Contains(out, "╭") {
		t.Errorf("no cards should render while loading:\n%s", out)
	}
	for _, want := range []string{"CYBER NEWS NETWORK", "◉ LIVE", "09:30:05", "Featured", "Interactive", "Latest Updates", "© 2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("shell missing %q", want)
		}
	}
}

func TestAppInitReturnsCommands(t *testing.T) {
	app := NewApp(Config{Loader: loader.New(time.Hour)})
	defer app.Teardown()
	if app.Init() == nil {
		t.Fatal("Init should return a command")
	}
}

func TestAppLoadRendersFourCardsInOrder(t *testing.T) {
	app := loadedApp(t, 60)
	out := view(app)

	if app.State().Loading {
		t.Error("Loading should be false after load")
	}
	if strings.Contains(out, "Loading neural interface") {
		t.Error("loading banner should be gone")
	}
	if n := strings.Count(out, "╭"); n != 4 {
		t.Errorf("rendered %d cards, want 4:\n%s", n, out)
	}

	order := []string{"Quantum Computing Breakthrough", "LIVE: AI Summit 2024", "Weekly Poll", "Community Spotlight"}
	last := -1
	for _, title := range order {
		idx := strings.Index(out, title)
		if idx < 0 {
			t.Fatalf("missing card %q", title)
		}
		if idx <= last {
			t.Errorf("card %q out of order", title)
		}
		last = idx
	}
}

func TestAppLoadThroughLoader(t *testing.T) {
	l := loader.New(0, loader.WithClock(func() time.Time { return fixedNow }))
	app := newTestApp(t, l, 100)

	msg := app.loadItems()()
	app = send(t, app, msg)

	if app.State().Loading {
		t.Fatal("app still loading after loader fired")
	}
	if len(app.State().Items) != 4 {
		t.Errorf("got %d items, want 4", len(app.State().Items))
	}
}

func TestAppTeardownBeforeDelay(t *testing.T) {
	never := make(chan time.Time)
	l := loader.New(time.Second, loader.WithTimer(func(time.Duration) <-chan time.Time { return never }))
	app := newTestApp(t, l, 100)

	done := make(chan tea.Msg, 1)
	cmd := app.loadItems()
	go func() { done <- cmd() }()

	app.Teardown()
	app = send(t, app, <-done)

	if !app.State().Loading {
		t.Error("teardown before the delay must leave the state untouched")
	}
	if len(app.State().Items) != 0 {
		t.Errorf("got %d items after teardown", len(app.State().Items))
	}
}

func TestAppDropsBatchAfterTeardown(t *testing.T) {
	l := loader.New(time.Hour)
	app := newTestApp(t, l, 100)
	app.Teardown()

	app = send(t, app, ItemsLoaded{Items: news.Seed(fixedNow)})
	if !app.State().Loading {
		t.Error("batch delivered after teardown should be dropped")
	}
}

func TestAppQuitCancelsLoader(t *testing.T) {
	l := loader.New(time.Hour)
	app := newTestApp(t, l, 100)

	_, cmd := app.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if !l.Cancelled() {
		t.Error("quitting should cancel the pending load")
	}
}

func TestAppVoting(t *testing.T) {
	app := loadedApp(t, 60)

	out := view(app)
	for _, row := range [][2]string{{"Yes", "0 votes"}, {"No", "0 votes"}, {"Uncertain", "0 votes"}} {
		if _, ok := lineWith(out, row[0], row[1]); !ok {
			t.Errorf("missing row %q %q", row[0], row[1])
		}
	}
	if !strings.Contains(out, "Total votes: 0") {
		t.Error("missing zero total")
	}

	app = send(t, app, key("1"), key("1"), key("2"))

	votes := app.State().Votes
	if votes.Count(state.Option1) != 2 || votes.Count(state.Option2) != 1 || votes.Count(state.Option3) != 0 {
		t.Errorf("votes = %v, want [2 1 0]", votes)
	}

	out = view(app)
	for _, row := range [][2]string{{"Yes", "2 votes"}, {"No", "1 votes"}, {"Uncertain", "0 votes"}} {
		if _, ok := lineWith(out, row[0], row[1]); !ok {
			t.Errorf("missing row %q %q:\n%s", row[0], row[1], out)
		}
	}
	if !strings.Contains(out, "Total votes: 3") {
		t.Errorf("missing total 3:\n%s", out)
	}
}

func TestAppTabsAreCosmetic(t *testing.T) {
	app := loadedApp(t, 100)
	before := strings.Count(view(app), "╭")

	want := []state.Tab{state.TabLive, state.TabCommunity, state.TabInteractive, state.TabFeatured}
	for _, tab := range want {
		app = send(t, app, key("tab"))
		if app.State().ActiveTab != tab {
			t.Fatalf("ActiveTab = %v, want %v", app.State().ActiveTab, tab)
		}
		if got := strings.Count(view(app), "╭"); got != before {
			t.Errorf("tab %v rendered %d cards, want %d", tab, got, before)
		}
		if len(app.State().Items) != 4 {
			t.Errorf("tab %v changed the item list", tab)
		}
	}

	app = send(t, app, key("shift+tab"))
	if app.State().ActiveTab != state.TabInteractive {
		t.Errorf("shift+tab should go back to interactive, got %v", app.State().ActiveTab)
	}
}

func TestAppFormToggle(t *testing.T) {
	app := loadedApp(t, 100)

	if strings.Contains(view(app), "Submit for Review") {
		t.Fatal("form should start hidden")
	}

	app = send(t, app, key("n"))
	if !app.State().ShowSubmitForm {
		t.Fatal("n should show the form")
	}
	out := view(app)
	for _, want := range []string{"Submit Your Article", "Title", "Content", "Submit for Review"} {
		if !strings.Contains(out, want) {
			t.Errorf("form missing %q", want)
		}
	}

	app = send(t, app, key("esc"))
	if app.State().ShowSubmitForm {
		t.Fatal("esc should close the form")
	}
	if strings.Contains(view(app), "Submit for Review") {
		t.Error("closed form should not render")
	}
}

func TestAppFormCapturesTyping(t *testing.T) {
	app := loadedApp(t, 100)
	app = send(t, app, key("n"), key("1"), key("q"))

	if app.State().Votes.Total() != 0 {
		t.Error("digits typed into the form should not vote")
	}
	title, _ := app.form.Values()
	if title != "1q" {
		t.Errorf("title = %q, want %q", title, "1q")
	}

	// Move to content, then to submit, and press enter: nothing happens.
	app = send(t, app, key("tab"), key("x"), key("tab"), key("enter"))
	_, content := app.form.Values()
	if content != "x" {
		t.Errorf("content = %q, want %q", content, "x")
	}
	if len(app.State().Items) != 4 {
		t.Error("submitting must not add items")
	}
	if !app.State().ShowSubmitForm {
		t.Error("submitting should leave the form open")
	}
}

func TestAppClockTick(t *testing.T) {
	app := newTestApp(t, nil, 100)
	later := fixedNow.Add(3 * time.Second)

	next, cmd := app.Update(ClockTick{Time: later})
	if cmd == nil {
		t.Error("clock tick should schedule the next tick")
	}
	if !strings.Contains(view(next.(App)), "09:30:08") {
		t.Error("header clock should advance")
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 1},
		{79, 1},
		{80, 2},
		{119, 2},
		{120, 3},
		{200, 3},
	}
	for _, tt := range tests {
		if got := columns(tt.width); got != tt.want {
			t.Errorf("columns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
