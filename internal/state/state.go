// Package state holds the UI state record and its transitions.
//
// State is a value: every transition returns a new record and leaves the
// receiver untouched, so the Bubble Tea model can swap it atomically.
package state

import (
	"strings"

	"github.com/infblueocean/cybernews/internal/news"
)

// Tab is a navigation tab. Selecting one is cosmetic; it does not filter items.
type Tab int

const (
	TabFeatured Tab = iota
	TabLive
	TabCommunity
	TabInteractive
)

// Tabs lists the navigation tabs in display order.
var Tabs = []Tab{TabFeatured, TabLive, TabCommunity, TabInteractive}

var tabNames = [...]string{"featured", "live", "community", "interactive"}

// Valid reports whether t is one of the four tabs.
func (t Tab) Valid() bool { return t >= TabFeatured && t <= TabInteractive }

func (t Tab) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tabNames[t]
}

// Label is the name shown in the tab bar ("Featured").
func (t Tab) Label() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab { return Tab((int(t) + 1) % len(Tabs)) }

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab { return Tab((int(t) + len(Tabs) - 1) % len(Tabs)) }

// Option is one of the three fixed poll choices.
type Option int

const (
	Option1 Option = iota
	Option2
	Option3
)

// Options lists the poll choices in display order.
var Options = []Option{Option1, Option2, Option3}

var optionLabels = [...]string{"Yes", "No", "Uncertain"}

// Valid reports whether o is one of the three options.
func (o Option) Valid() bool { return o >= Option1 && o <= Option3 }

// Key is the option identifier ("option1").
func (o Option) Key() string {
	if !o.Valid() {
		return "unknown"
	}
	return "option" + string(rune('1'+int(o)))
}

// Label is the option text shown on the poll card.
func (o Option) Label() string {
	if !o.Valid() {
		return ""
	}
	return optionLabels[o]
}

// PollVotes counts votes per option for the whole session.
// It is shared by every poll card and never decremented.
type PollVotes [3]int

// Count returns the votes for o.
func (v PollVotes) Count(o Option) int {
	if !o.Valid() {
		return 0
	}
	return v[o]
}

// Total is option1 + option2 + option3.
func (v PollVotes) Total() int {
	return v[Option1] + v[Option2] + v[Option3]
}

// Share returns o's fraction of the total, 0 when nobody has voted.
func (v PollVotes) Share(o Option) float64 {
	total := v.Total()
	if total == 0 {
		return 0
	}
	return float64(v.Count(o)) / float64(total)
}

// State is the complete UI state of the news screen.
type State struct {
	Items          []news.Item
	Loading        bool
	ActiveTab      Tab
	ShowSubmitForm bool
	Votes          PollVotes
}

// Initial is the state at mount: loading, featured tab, form hidden, no votes.
func Initial() State {
	return State{
		Loading:   true,
		ActiveTab: TabFeatured,
	}
}

// LoadCompleted installs the loaded items and clears the loading flag.
// Loading happens once; on an already loaded state this is a no-op.
func (s State) LoadCompleted(items []news.Item) State {
	if !s.Loading {
		return s
	}
	s.Items = append([]news.Item(nil), items...)
	s.Loading = false
	return s
}

// VoteCast adds one vote for o. Repeat votes all count.
func (s State) VoteCast(o Option) State {
	if !o.Valid() {
		return s
	}
	s.Votes[o]++
	return s
}

// TabSelected highlights t. The item list is not touched.
func (s State) TabSelected(t Tab) State {
	if !t.Valid() {
		return s
	}
	s.ActiveTab = t
	return s
}

// FormToggled shows or hides the submission form.
func (s State) FormToggled() State {
	s.ShowSubmitForm = !s.ShowSubmitForm
	return s
}
