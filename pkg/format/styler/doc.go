// Package styler finds inline style commands in a message and replaces them with restyled text.
//
// A command is a slash, a style token, whitespace, and a double quoted payload:
//    /cursive "some text"
//
// The token is a run of ASCII word characters and is matched case sensitively against the styles in package glyph.
// The payload runs to the next double quote and must not be empty. There is no escaping, a payload cannot contain a
// double quote. Commands with unknown or disabled tokens, and anything that does not fit the grammar, are left in the
// message exactly as they were written.
package styler
