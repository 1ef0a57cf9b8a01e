// Package glyph implements fixed Unicode restyling of text.
//
// Each Style is either a plain substitution table (cursive, gothic, small capitals, subscript and superscript) or, for
// Zalgo, a random draw from the Combining Diacritical Marks block. Runes without a mapping in the chosen table are
// passed through untouched, so no operation in this package can fail.
package glyph
