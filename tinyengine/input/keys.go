// Package input maps backend key names to engine actions so that every
// display backend shares the same bindings.
package input

// Action is something a key press asks the engine or a backend to do.
type Action int

const (
	Quit Action = iota
	Snapshot
	LogLevelIncrease
	LogLevelDecrease
)

// DefaultKeyMap binds key names to actions. Printable keys use the character
// itself, other keys use their common name.
var DefaultKeyMap = map[string]Action{
	"Escape": Quit,
	"Ctrl+C": Quit,
	"q":      Quit,
	"F12":    Snapshot,

	"+": LogLevelIncrease,
	"=": LogLevelIncrease, // Alternative without shift
	"-": LogLevelDecrease,
	"_": LogLevelDecrease, // Alternative with shift
}

// Lookup returns the default action for a key, if one exists.
func Lookup(key string) (Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}

func (a Action) String() string {
	switch a {
	case Quit:
		return "quit"
	case Snapshot:
		return "snapshot"
	case LogLevelIncrease:
		return "log-level-increase"
	case LogLevelDecrease:
		return "log-level-decrease"
	}
	return "unknown"
}
