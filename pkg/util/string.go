package util

import (
	"strings"
)

// WordEol returns the given string with wordIdx space separated words removed from the front. Repeated spaces between
// the remaining words are kept
func WordEol(s string, wordIdx int) string {
	if wordIdx < 0 {
		return ""
	}

	rest := s
	for i := 0; i < wordIdx; i++ {
		rest = strings.TrimLeft(rest, " ")
		idx := strings.IndexByte(rest, ' ')
		if idx == -1 {
			return ""
		}

		rest = rest[idx:]
	}

	return strings.TrimLeft(rest, " ")
}

// IdxOrEmpty returns the string at idx in slice, or an empty string if idx is out of range
func IdxOrEmpty(slice []string, idx int) string {
	if idx < 0 || idx >= len(slice) {
		return ""
	}

	return slice[idx]
}

// JoinToMaxLength joins toJoin with sep into as few strings as possible, without any string exceeding maxLength bytes.
// A single entry longer than maxLength is returned on its own rather than being split. Empty entries are skipped
func JoinToMaxLength(toJoin []string, sep string, maxLength int) []string {
	var (
		out []string
		cur strings.Builder
	)

	for _, s := range toJoin {
		if s == "" {
			continue
		}

		if cur.Len() > 0 && cur.Len()+len(sep)+len(s) > maxLength {
			out = append(out, cur.String())
			cur.Reset()
		}

		if cur.Len() > 0 {
			cur.WriteString(sep)
		}

		cur.WriteString(s)
	}

	if cur.Len() > 0 {
		out = append(out, cur.String())
	}

	return out
}
