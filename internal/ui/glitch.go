package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// GlitchEngine distorts the masthead on each animation tick.
type GlitchEngine struct {
	Styles Styles
}

var glitchGlyphs = []rune(`#/\█▓░⟟⟊⟡?!`)

// fnv32aTriplet mixes tick, position and a per-string seed so a given frame
// always glitches the same way.
func fnv32aTriplet(tick uint32, pos uint32, seed uint32) uint32 {
	hash := uint32(2166136261)
	inputs := [3]uint32{tick, pos, seed}
	for _, val := range inputs {
		hash ^= val
		hash *= 16777619
	}
	return hash
}

// Glitchify returns text with a fraction of its runes swapped for glyphs or
// recoloured. intensity is in [0, 1]; at or below 0.01 the text is unchanged.
func (g GlitchEngine) Glitchify(text string, intensity float64, tick uint32) string {
	if intensity <= 0.01 {
		return text
	}
	if intensity > 1 {
		intensity = 1
	}

	threshold := uint32(intensity * 0xFFFFFFFF)
	seed := uint32(len(text))

	var b strings.Builder
	for i, r := range []rune(text) {
		hash := fnv32aTriplet(tick, uint32(i), seed)
		if unicode.IsSpace(r) || hash >= threshold {
			b.WriteRune(r)
			continue
		}
		// Keep roughly a third of letters readable, only recoloured.
		if (unicode.IsLetter(r) || unicode.IsDigit(r)) && hash%100 < 30 {
			b.WriteString(g.flickerStyle(hash).Render(string(r)))
			continue
		}
		glyph := glitchGlyphs[hash%uint32(len(glitchGlyphs))]
		b.WriteString(g.flickerStyle(hash).Render(string(glyph)))
	}
	return b.String()
}

func (g GlitchEngine) flickerStyle(hash uint32) lipgloss.Style {
	choice := hash % 100
	switch {
	case choice < 55:
		return g.Styles.GlitchBlue
	case choice < 80:
		return g.Styles.GlitchPink
	default:
		return g.Styles.GlitchYellow
	}
}
