package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentFire,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'a': IntentLeft,
			'h': IntentLeft,
			'd': IntentRight,
			'l': IntentRight,
			' ': IntentFire,
		},
	}
}

// Lookup resolves a key and rune pair, anything unbound maps to IntentNone
func (kt *KeyTable) Lookup(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		if intent, ok := kt.Runes[r]; ok {
			return intent
		}
		return IntentNone
	}
	if intent, ok := kt.SpecialKeys[key]; ok {
		return intent
	}
	return IntentNone
}

// Translate resolves a terminal event to an intent
func (kt *KeyTable) Translate(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return IntentResize
	default:
		return IntentNone
	}
}
