package ui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/infblueocean/cybernews/internal/news"
	"github.com/infblueocean/cybernews/internal/state"
	"github.com/mattn/go-runewidth"
)

// ErrUnknownItem is returned for items outside the known variants.
var ErrUnknownItem = errors.New("unknown news item")

const minCardWidth = 24

// CardOptions carries the per-frame inputs of a card besides the item itself.
type CardOptions struct {
	Width int             // outer width including the border
	Votes state.PollVotes // session-wide poll tally
	Pulse bool            // live indicator phase
}

// RenderCard renders one news item as a bordered card.
func RenderCard(item news.Item, opts CardOptions, st Styles) (string, error) {
	if opts.Width < minCardWidth {
		opts.Width = minCardWidth
	}
	switch v := item.(type) {
	case news.Live:
		return renderLive(v, opts, st), nil
	case news.Poll:
		return renderPoll(v, opts, st), nil
	case news.Expert:
		return renderArticle(v, v.Engagement, "📈", opts, st), nil
	case news.UserGenerated:
		return renderArticle(v, nil, "✎", opts, st), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownItem, item)
	}
}

// innerWidth is the text width inside a card's border and padding.
func innerWidth(outer int) int {
	return outer - 4
}

func renderLive(v news.Live, opts CardOptions, st Styles) string {
	w := innerWidth(opts.Width)

	pulse := "●"
	if !opts.Pulse {
		pulse = "○"
	}

	lines := []string{
		st.LivePulse.Render(pulse) + " " + st.LiveBadge.Render(v.Status),
		"",
		st.LiveTitle.Width(w).Render(v.Title),
		"",
		st.Description.Width(w).Render(v.Description),
		"",
		spread(
			st.LiveMeta.Render(fmt.Sprintf("◍ %d watching", v.Viewers)),
			st.LiveButton.Render("[ Join Stream ]"),
			w,
		),
	}
	return st.LiveCard.Width(opts.Width - 2).Render(strings.Join(lines, "\n"))
}

func renderPoll(v news.Poll, opts CardOptions, st Styles) string {
	w := innerWidth(opts.Width)

	bar := progress.New(
		progress.WithSolidFill(string(st.Blue)),
		progress.WithoutPercentage(),
	)
	bar.Width = w

	lines := []string{
		st.PollLabel.Render("▤ Interactive Poll"),
		"",
		st.PollTitle.Width(w).Render(v.Title),
		"",
	}

	for i, o := range state.Options {
		count := fmt.Sprintf("%d votes", opts.Votes.Count(o))
		label := runewidth.Truncate(o.Label(), w-runewidth.StringWidth(count)-5, "…")
		left := st.PollKey.Render(fmt.Sprintf("[%d]", i+1)) + " " + st.PollOption.Render(label)
		lines = append(lines,
			spread(left, st.PollOption.Render(count), w),
			bar.ViewAs(opts.Votes.Share(o)),
		)
	}

	lines = append(lines, "", st.PollTotal.Render(fmt.Sprintf("Total votes: %d", opts.Votes.Total())))
	return st.PollCard.Width(opts.Width - 2).Render(strings.Join(lines, "\n"))
}

// renderArticle draws the generic card shared by expert and community articles.
func renderArticle(item news.Item, engagement *news.Engagement, icon string, opts CardOptions, st Styles) string {
	w := innerWidth(opts.Width)
	meta := item.Info()

	lines := []string{
		st.Category.Render(icon + " " + meta.Category),
		"",
		st.CardTitle.Width(w).Render(meta.Title),
		"",
		st.Description.Width(w).Render(meta.Description),
		"",
	}

	if by, ok := news.BylineOf(item); ok {
		name := by.Author
		if by.Verified {
			name += " ✓"
		}
		avatar := st.Avatar.Render(initial(by.Author))
		block := lipgloss.JoinVertical(lipgloss.Left,
			st.Author.Render(runewidth.Truncate(name, w-4, "…")),
			st.AuthorSub.Render(runewidth.Truncate(by.Subtitle, w-4, "…")),
		)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", block), "")
	}

	right := st.Button.Render("[ Read More ]")
	if engagement != nil {
		counts := st.CardMeta.Render(fmt.Sprintf("💬 %d  ⚡ %d", engagement.Comments, engagement.Shares))
		right = counts + "  " + right
	}
	lines = append(lines, spread(st.CardMeta.Render(meta.PublishedAt.Format("15:04")), right, w))

	return st.Card.Width(opts.Width - 2).Render(strings.Join(lines, "\n"))
}

// initial returns the first rune of name, upper-cased.
func initial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

// spread places left and right on one line of the given width, separated by
// at least one space.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
