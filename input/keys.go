package input

import "github.com/gdamore/tcell/v2"

// Key identifies a logical game control, decoupled from physical bindings
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyLaunch
	KeyPause
	KeyMute
	KeyQuit
	keyCount
)

// Translate maps a terminal key event to a logical control.
// Bindings: arrows or vi h/l for movement, space to launch,
// p to pause, m to mute, q or Esc to quit.
func Translate(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return KeyLeft, true
		case 'l':
			return KeyRight, true
		case ' ':
			return KeyLaunch, true
		case 'p':
			return KeyPause, true
		case 'm':
			return KeyMute, true
		case 'q':
			return KeyQuit, true
		}
	}
	return 0, false
}
