package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/constants"
)

// Palette maps glyphs to terminal styles, unknown glyphs use the base style
type Palette struct {
	base   tcell.Style
	glyphs map[rune]tcell.Style
}

// NewPalette creates an empty palette over a base style
func NewPalette(base tcell.Style) *Palette {
	return &Palette{
		base:   base,
		glyphs: make(map[rune]tcell.Style),
	}
}

// DefaultPalette colours the game glyphs
func DefaultPalette() *Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	p := NewPalette(base)
	p.Set(constants.GlyphPlayer, base.Foreground(tcell.ColorGreen).Bold(true))
	p.Set(constants.GlyphShot, base.Foreground(tcell.ColorYellow))
	p.Set(constants.GlyphExplosion, base.Foreground(tcell.ColorOrange).Bold(true))
	p.Set(constants.GlyphInvader, base.Foreground(tcell.ColorRed))
	p.Set(constants.GlyphInvaderAlt, base.Foreground(tcell.ColorRed))
	return p
}

// Set assigns a style to a glyph
func (p *Palette) Set(r rune, style tcell.Style) {
	p.glyphs[r] = style
}

// Style returns the style for a glyph
func (p *Palette) Style(r rune) tcell.Style {
	if p == nil {
		return tcell.StyleDefault
	}
	if s, ok := p.glyphs[r]; ok {
		return s
	}
	return p.base
}
