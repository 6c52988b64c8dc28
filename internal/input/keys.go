package input

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Key identifies a keyboard key independent of the host backend
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBackspace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

// ErrUnknownKey is returned by ParseKey for names that map to no key
var ErrUnknownKey = errors.New("unknown key")

var keyNames = [keyCount]string{
	KeyUnknown:   "unknown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
}

var keyAliases = map[string]Key{
	"arrowup":    KeyUp,
	"arrowdown":  KeyDown,
	"arrowleft":  KeyLeft,
	"arrowright": KeyRight,
	"return":     KeyEnter,
	"esc":        KeyEscape,
}

var keysByName map[string]Key

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = "f" + strconv.Itoa(int(k-KeyF1)+1)
	}

	keysByName = make(map[string]Key, len(keyNames)+len(keyAliases))
	for k := KeyA; k < keyCount; k++ {
		keysByName[keyNames[k]] = k
	}
	for name, k := range keyAliases {
		keysByName[name] = k
	}
}

// String returns the canonical lowercase key name
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Valid reports whether k names a real key
func (k Key) Valid() bool {
	return k > KeyUnknown && k < keyCount
}

// ParseKey resolves a key name, case-insensitively
func ParseKey(name string) (Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyUnknown, errors.Wrapf(ErrUnknownKey, "%q", name)
	}
	return k, nil
}

// LetterKey maps an ASCII letter or digit to its key
func LetterKey(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	case r == ' ':
		return KeySpace, true
	}
	return KeyUnknown, false
}
