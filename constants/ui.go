package constants

// Glyphs painted into frame buffers
const (
	GlyphEmpty      = ' '
	GlyphPlayer     = 'A'
	GlyphShot       = '|'
	GlyphExplosion  = '*'
	GlyphInvader    = 'x'
	GlyphInvaderAlt = '+'
)
