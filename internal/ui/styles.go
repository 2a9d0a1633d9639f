package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/infblueocean/cybernews/internal/config"
)

// Fixed palette. The two accent colours come from the theme.
var (
	colorCyan      = lipgloss.Color("#22d3ee")
	colorCyanLight = lipgloss.Color("#cffafe")
	colorCyanDeep  = lipgloss.Color("#06b6d4")
	colorCyanDark  = lipgloss.Color("#164e63")
	colorGray      = lipgloss.Color("#d1d5db")
	colorMuted     = lipgloss.Color("240")
	colorBlack     = lipgloss.Color("0")
	colorWhite     = lipgloss.Color("255")
	colorYellow    = lipgloss.Color("227")
	colorBar       = lipgloss.Color("236")
)

// Styles holds every Lip Gloss style used by the news screen.
// Built once from a theme so tests can render without a terminal.
type Styles struct {
	Blue lipgloss.Color
	Pink lipgloss.Color

	// Header
	Title      lipgloss.Style
	HeaderMeta lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	HeaderBox  lipgloss.Style

	// Main
	Heading      lipgloss.Style
	SubmitButton lipgloss.Style
	Loading      lipgloss.Style

	// Generic card
	Card        lipgloss.Style
	Category    lipgloss.Style
	CardTitle   lipgloss.Style
	Description lipgloss.Style
	Avatar      lipgloss.Style
	Author      lipgloss.Style
	AuthorSub   lipgloss.Style
	CardMeta    lipgloss.Style
	Button      lipgloss.Style

	// Live card
	LiveCard   lipgloss.Style
	LivePulse  lipgloss.Style
	LiveBadge  lipgloss.Style
	LiveTitle  lipgloss.Style
	LiveMeta   lipgloss.Style
	LiveButton lipgloss.Style

	// Poll card
	PollCard   lipgloss.Style
	PollLabel  lipgloss.Style
	PollTitle  lipgloss.Style
	PollOption lipgloss.Style
	PollKey    lipgloss.Style
	PollTotal  lipgloss.Style

	// Submit form
	FormBox           lipgloss.Style
	FormTitle         lipgloss.Style
	FormLabel         lipgloss.Style
	FormButton        lipgloss.Style
	FormButtonFocused lipgloss.Style

	// Chrome
	Footer    lipgloss.Style
	StatusBar lipgloss.Style

	// Glitch colours
	GlitchBlue   lipgloss.Style
	GlitchPink   lipgloss.Style
	GlitchYellow lipgloss.Style
}

// NewStyles builds the cyber look around the theme's accent colours.
func NewStyles(theme config.Theme) Styles {
	blue := lipgloss.Color(theme.CyberBlue)
	pink := lipgloss.Color(theme.CyberPink)

	s := Styles{Blue: blue, Pink: pink}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(blue)
	s.HeaderMeta = lipgloss.NewStyle().Foreground(colorCyan)
	s.Tab = lipgloss.NewStyle().Foreground(colorCyanDeep).Padding(0, 1)
	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorBlack).
		Background(colorCyanDeep).
		Padding(0, 1)
	s.HeaderBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorCyanDeep)

	s.Heading = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	s.SubmitButton = lipgloss.NewStyle().Foreground(colorWhite).Background(pink).Padding(0, 1)
	s.Loading = lipgloss.NewStyle().Foreground(colorCyanDeep).Padding(2, 0)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyanDeep).
		Padding(0, 1)
	s.Category = lipgloss.NewStyle().Foreground(colorCyan)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyanLight)
	s.Description = lipgloss.NewStyle().Foreground(colorGray)
	s.Avatar = lipgloss.NewStyle().Foreground(colorCyanLight).Background(colorCyanDark).Padding(0, 1)
	s.Author = lipgloss.NewStyle().Foreground(colorCyanLight)
	s.AuthorSub = lipgloss.NewStyle().Foreground(colorCyan)
	s.CardMeta = lipgloss.NewStyle().Foreground(colorCyanDeep)
	s.Button = lipgloss.NewStyle().Foreground(colorCyanLight).Background(colorCyanDark)

	s.LiveCard = s.Card.BorderForeground(pink)
	s.LivePulse = lipgloss.NewStyle().Foreground(pink)
	s.LiveBadge = lipgloss.NewStyle().Foreground(colorBlack).Background(pink).Padding(0, 1)
	s.LiveTitle = lipgloss.NewStyle().Bold(true).Foreground(pink)
	s.LiveMeta = lipgloss.NewStyle().Foreground(pink)
	s.LiveButton = lipgloss.NewStyle().Foreground(pink).Background(colorBar)

	s.PollCard = s.Card.BorderForeground(blue)
	s.PollLabel = lipgloss.NewStyle().Foreground(blue)
	s.PollTitle = lipgloss.NewStyle().Bold(true).Foreground(blue)
	s.PollOption = lipgloss.NewStyle().Foreground(colorWhite)
	s.PollKey = lipgloss.NewStyle().Foreground(blue).Bold(true)
	s.PollTotal = lipgloss.NewStyle().Foreground(blue)

	s.FormBox = s.Card.MarginBottom(1)
	s.FormTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).MarginBottom(1)
	s.FormLabel = lipgloss.NewStyle().Foreground(colorCyan)
	s.FormButton = lipgloss.NewStyle().Foreground(colorBlack).Background(colorCyanDeep)
	s.FormButtonFocused = s.FormButton.Bold(true).Background(colorCyan).Underline(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(colorCyan).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(colorCyanDeep)
	s.StatusBar = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBar).Padding(0, 1)

	s.GlitchBlue = lipgloss.NewStyle().Foreground(blue)
	s.GlitchPink = lipgloss.NewStyle().Foreground(pink)
	s.GlitchYellow = lipgloss.NewStyle().Foreground(colorYellow)

	return s
}

// DefaultStyles returns styles for the stock theme.
func DefaultStyles() Styles {
	return NewStyles(config.DefaultTheme())
}
