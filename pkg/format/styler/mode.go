package styler

import (
	"fmt"
	"strings"
)

// ReplaceMode selects how restyled text is written back into a message
type ReplaceMode int

const (
	// ReplaceFirst replaces the first textual occurrence of each command's marker in the partially rewritten
	// message, rather than the span the command was found at. The two differ when the same marker text also
	// appears earlier without being a command of its own, for example straddling the closing quote of an
	// unrecognised command:
	//    /nope "a /sup "b" /sup "b"
	// rewrites the /sup "b" that starts inside the /nope payload, and leaves the real one alone. This is the default.
	ReplaceFirst ReplaceMode = iota
	// Splice replaces each command at the position it was found
	Splice
)

func (r ReplaceMode) String() string {
	switch r {
	case ReplaceFirst:
		return "first"
	case Splice:
		return "splice"
	default:
		return fmt.Sprintf("ReplaceMode(%d)", int(r))
	}
}

// ParseReplaceMode converts "first" or "splice" (case insensitive) to a ReplaceMode
func ParseReplaceMode(s string) (ReplaceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "":
		return ReplaceFirst, nil
	case "splice":
		return Splice, nil
	default:
		return ReplaceFirst, fmt.Errorf("unknown replace mode %q", s)
	}
}
