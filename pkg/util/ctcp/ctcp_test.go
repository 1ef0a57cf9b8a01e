package ctcp

import (
	"testing"
)

var ctcpTests = map[string]bool{
	"\x01ACTION test message\x01":                          true,
	"\x01THIS is a malformed CTCP message, but still good": true,
	"\x01TEST\x01":                        true,
	"\x01TEST \x01":                       true,
	"\x01TEST ":                           true,
	"this is not a CTCP message":          false,
	"this is an invalid CTCP message\x01": false,
	"\x01":                                false,
}

func TestIsCTCP(t *testing.T) {
	for str, isCtcp := range ctcpTests {
		if IsCTCP(str) != isCtcp {
			t.Errorf("string %q expected to be %t, was returned as %t", str, isCtcp, !isCtcp)
		}
	}
}

var parsedCtcpTests = map[string]*CTCP{
	"\x01ACTION test message\x01":                          {"ACTION", "test message"},
	"\x01action /sup \"hi\"\x01":                           {"ACTION", "/sup \"hi\""},
	"\x01THIS is a malformed CTCP message, but still good": {"THIS", "is a malformed CTCP message, but still good"},
	"\x01TEST\x01":                        {"TEST", ""},
	"\x01TEST \x01":                       {"TEST", ""},
	"\x01TEST ":                           {"TEST", ""},
	"this is not a CTCP message":          nil,
	"this is an invalid CTCP message\x01": nil,
	"\x01":                                nil,
}

func TestParse(t *testing.T) {
	for str, v := range parsedCtcpTests {
		parsed, err := Parse(str)
		switch {
		case err != nil && v != nil:
			t.Errorf("Incorrectly parsed CTCP string %q: got error %s, expected %v", str, err, v)
		case err == nil && v == nil:
			t.Errorf("Incorrectly parsed CTCP string %q: got %v, expected an error", str, parsed)
		case err == nil && (parsed.Command != v.Command || parsed.Arg != v.Arg):
			t.Errorf("Incorrectly parsed CTCP string %q: got %v, expected %v", str, parsed, v)
		}
	}
}

func TestCTCP_String(t *testing.T) {
	tests := []struct {
		in   CTCP
		want string
	}{
		{CTCP{"ACTION", "waves"}, "\x01ACTION waves\x01"},
		{CTCP{"VERSION", ""}, "\x01VERSION\x01"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.in, got, tt.want)
		}

		if p, err := Parse(tt.in.String()); err != nil || p != tt.in {
			t.Errorf("Parse(%q) = %#v, %v", tt.in.String(), p, err)
		}
	}
}
