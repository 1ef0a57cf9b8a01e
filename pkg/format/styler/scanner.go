package styler

import "regexp"

var commandRe = regexp.MustCompile(`/(\w+)\s+"([^"]+)"`)

// Command is a single style command found in a message
type Command struct {
	Style   string // The raw token, which may not name a real style
	Payload string
	Start   int // Byte offset of the leading slash
	End     int // Byte offset one past the closing quote

	marker string
}

// Marker returns the exact text the Command was parsed from, slash and quotes included
func (c Command) Marker() string {
	return c.marker
}

// Scan finds all commands in text, left to right, without overlaps
func Scan(text string) []Command {
	matches := commandRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]Command, 0, len(matches))
	for _, m := range matches {
		out = append(out, Command{
			Style:   text[m[2]:m[3]],
			Payload: text[m[4]:m[5]],
			Start:   m[0],
			End:     m[1],
			marker:  text[m[0]:m[1]],
		})
	}

	return out
}
