// Package irc rewrites style commands in outgoing IRC client lines.
//
// Only the text parameter of PRIVMSG and NOTICE is touched. CTCP ACTIONs (/me) are unwrapped, styled, and wrapped
// again; any other CTCP is left alone, as are all other commands. A line that needs no changes is returned byte for
// byte as it was given, tags and all.
package irc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goshuirc/irc-go/ircfmt"
	"github.com/goshuirc/irc-go/ircmsg"

	"awesome-dragon.science/go/goGoStyleBot/pkg/format/styler"
	"awesome-dragon.science/go/goGoStyleBot/pkg/log"
	"awesome-dragon.science/go/goGoStyleBot/pkg/util/ctcp"
)

// MaxLineLength is the longest line, including the trailing CRLF, that servers are required to accept
const MaxLineLength = 512

// Filter applies a Styler to outgoing IRC lines
type Filter struct {
	styler *styler.Styler
	log    *log.Logger
}

// NewFilter creates a Filter that uses s to restyle message text
func NewFilter(s *styler.Styler, logger *log.Logger) *Filter {
	return &Filter{styler: s, log: logger}
}

// FilterLine restyles a single raw IRC line. The returned string never has a line ending. If the line cannot be
// parsed it is returned unchanged along with the parse error, callers should send it regardless
func (f *Filter) FilterLine(line string) (string, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return line, nil
	}

	msg, err := ircmsg.ParseLine(line)
	if err != nil {
		return line, fmt.Errorf("could not parse line %q: %w", line, err)
	}

	cmd := strings.ToUpper(msg.Command)
	if (cmd != "PRIVMSG" && cmd != "NOTICE") || len(msg.Params) < 2 {
		return line, nil
	}

	text := msg.Params[len(msg.Params)-1]

	styled, changed := f.restyle(text)
	if !changed {
		return line, nil
	}

	msg.Params[len(msg.Params)-1] = styled

	out, err := msg.LineBytes()
	if err != nil {
		return line, fmt.Errorf("could not serialise restyled line: %w", err)
	}

	if len(out) > MaxLineLength {
		f.log.Warnf(
			"restyled %s to %s is %d bytes long, the server will likely truncate it", cmd, msg.Params[0], len(out),
		)
	}

	out = bytes.TrimRight(out, "\r\n")
	f.log.Debugf("<< %s", ircfmt.Escape(string(out)))

	return string(out), nil
}

func (f *Filter) restyle(text string) (string, bool) {
	if !ctcp.IsCTCP(text) {
		out := f.styler.Transform(text)
		return out, out != text
	}

	c, err := ctcp.Parse(text)
	if err != nil || c.Command != "ACTION" {
		return text, false
	}

	styled := f.styler.Transform(c.Arg)
	if styled == c.Arg {
		return text, false
	}

	c.Arg = styled

	return c.String(), true
}
