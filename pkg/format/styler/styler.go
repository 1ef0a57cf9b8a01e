package styler

import (
	"io"
	"strings"

	"awesome-dragon.science/go/goGoStyleBot/pkg/glyph"
	"awesome-dragon.science/go/goGoStyleBot/pkg/log"
)

// Styler rewrites style commands in messages. A Styler is safe for use from multiple goroutines, so long as SetMode
// is not called concurrently with Transform
type Styler struct {
	mapper   *glyph.Mapper
	mode     ReplaceMode
	disabled map[glyph.Style]bool
	log      *log.Logger
	stats    counters
}

// New creates a Styler. mapper and logger may be nil, in which case a default Mapper and a discarding Logger are used.
// Any styles passed in disabled are treated as unknown tokens
func New(mapper *glyph.Mapper, mode ReplaceMode, logger *log.Logger, disabled ...glyph.Style) *Styler {
	if mapper == nil {
		mapper = glyph.NewMapper(nil)
	}

	if logger == nil {
		logger = log.New(0, io.Discard, "STYLER", log.PANIC)
	}

	d := make(map[glyph.Style]bool, len(disabled))
	for _, s := range disabled {
		d[s] = true
	}

	return &Styler{mapper: mapper, mode: mode, disabled: d, log: logger}
}

// Mode returns the current ReplaceMode
func (s *Styler) Mode() ReplaceMode { return s.mode }

// SetMode changes the ReplaceMode used for future calls to Transform
func (s *Styler) SetMode(mode ReplaceMode) { s.mode = mode }

// Enabled returns the styles this Styler will act on, in declaration order
func (s *Styler) Enabled() []glyph.Style {
	var out []glyph.Style
	for _, st := range glyph.Styles() {
		if !s.disabled[st] {
			out = append(out, st)
		}
	}

	return out
}

// Lookup resolves a command token to an enabled Style
func (s *Styler) Lookup(token string) (glyph.Style, bool) {
	st, ok := glyph.ParseStyle(token)
	if !ok || s.disabled[st] {
		return -1, false
	}

	return st, true
}

// Preview applies a single style directly to text, without looking for commands
func (s *Styler) Preview(style glyph.Style, text string) string {
	return s.mapper.Apply(style, text)
}

// Transform finds every command in text and replaces those with known tokens with their styled payloads. If there are
// no commands, text is returned as is
func (s *Styler) Transform(text string) string {
	s.stats.messages.Add(1)
	s.stats.bytesIn.Add(uint64(len(text)))

	out := s.transform(text)

	s.stats.bytesOut.Add(uint64(len(out)))

	return out
}

func (s *Styler) transform(text string) string {
	commands := Scan(text)
	if len(commands) == 0 {
		return text
	}

	s.stats.matched.Add(uint64(len(commands)))

	if s.mode == Splice {
		return s.splice(text, commands)
	}

	out := text

	for _, cmd := range commands {
		styled, ok := s.render(cmd)
		if !ok {
			continue
		}

		out = strings.Replace(out, cmd.Marker(), styled, 1)
	}

	return out
}

func (s *Styler) splice(text string, commands []Command) string {
	out := strings.Builder{}
	out.Grow(len(text))

	last := 0

	for _, cmd := range commands {
		styled, ok := s.render(cmd)
		if !ok {
			continue
		}

		out.WriteString(text[last:cmd.Start])
		out.WriteString(styled)
		last = cmd.End
	}

	out.WriteString(text[last:])

	return out.String()
}

func (s *Styler) render(cmd Command) (string, bool) {
	st, ok := s.Lookup(cmd.Style)
	if !ok {
		s.log.Tracef("ignoring unknown style %q", cmd.Style)
		return "", false
	}

	s.stats.replaced.Add(1)
	styled := s.mapper.Apply(st, cmd.Payload)
	s.log.Tracef("%s %q -> %q", st, cmd.Payload, styled)

	return styled, true
}

// Message is a container for outgoing message content. A nil Content means the message has no text at all
type Message struct {
	Content *string
}

// TransformMessage rewrites msg.Content in place. It returns false, and does nothing, if there was no content to
// transform
func (s *Styler) TransformMessage(msg *Message) bool {
	if msg == nil || msg.Content == nil || *msg.Content == "" {
		return false
	}

	*msg.Content = s.Transform(*msg.Content)

	return true
}
