// Package ctcp handles the \x01 framing IRC clients use for CTCP requests such as ACTION (/me)
package ctcp

import (
	"errors"
	"strings"
)

const ctcpChar = 0x01
const ctcpCharString = string(rune(ctcpChar))

// ErrNotCTCP is returned by Parse when the given string does not start with the CTCP delimiter
var ErrNotCTCP = errors.New("not a CTCP string")

// IsCTCP returns whether or not s begins with a CTCP delimiter and has something after it
func IsCTCP(s string) bool {
	return len(s) > 1 && s[0] == ctcpChar
}

// CTCP is a parsed CTCP message
type CTCP struct {
	Command string
	Arg     string
}

// Parse splits a CTCP string into its command and argument. The trailing delimiter is optional, as many clients
// leave it off
func Parse(s string) (CTCP, error) {
	if !IsCTCP(s) {
		return CTCP{}, ErrNotCTCP
	}

	cmd, args := s, ""
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		cmd, args = s[:idx], s[idx+1:]
	}

	return CTCP{strings.ToUpper(strings.Trim(cmd, ctcpCharString)), strings.Trim(args, ctcpCharString)}, nil
}

// String frames the CTCP for sending. An empty Arg produces a bare command
func (c CTCP) String() string {
	if c.Arg == "" {
		return ctcpCharString + c.Command + ctcpCharString
	}

	return ctcpCharString + c.Command + " " + c.Arg + ctcpCharString
}
