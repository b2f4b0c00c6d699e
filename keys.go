package headless

// Key is a host-neutral keyboard key. Hosts translate their own key events
// into Keys before calling a context's HandleKey.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyHome:    "home",
	KeyEnd:     "end",
	KeyEnter:   "enter",
	KeySpace:   "space",
	KeyEscape:  "escape",
	KeyTab:     "tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name as produced by String back to a Key.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// Orientation is the axis along which arrow keys move focus.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// direction maps an arrow key to -1, +1 or 0 for the given orientation.
func (o Orientation) direction(k Key) int {
	if o == Horizontal {
		switch k {
		case KeyLeft:
			return -1
		case KeyRight:
			return 1
		}
		return 0
	}
	switch k {
	case KeyUp:
		return -1
	case KeyDown:
		return 1
	}
	return 0
}
