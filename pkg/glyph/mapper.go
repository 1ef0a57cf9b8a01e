package glyph

import (
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source is a uniform random number generator. Intn must return a value in [0, n). *rand.Rand satisfies Source
type Source interface {
	Intn(n int) int
}

// lockedSource guards a *rand.Rand, which is not itself safe for concurrent use
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Mapper applies Styles to strings. The only state a Mapper holds is its random Source, which is only consulted for
// Zalgo
type Mapper struct {
	src Source
}

// NewMapper creates a Mapper that draws combining marks from src. If src is nil, a time seeded source is used
func NewMapper(src Source) *Mapper {
	if src == nil {
		src = &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))} //nolint:gosec // cosmetic only
	}

	return &Mapper{src: src}
}

var defaultMapper = NewMapper(nil)

// Apply renders text in the given Style. Unknown Style values return text unchanged
func (m *Mapper) Apply(style Style, text string) string {
	switch style {
	case Cursive:
		return m.Cursive(text)
	case Gothic:
		return m.Gothic(text)
	case Small:
		return m.Small(text)
	case Sub:
		return m.Sub(text)
	case Sup:
		return m.Sup(text)
	case Zalgo:
		return m.Zalgo(text)
	default:
		return text
	}
}

// Cursive maps letters to Mathematical Bold Script, keeping case
func (m *Mapper) Cursive(text string) string { return mapRunes(text, cursiveMap) }

// Gothic maps letters to Fraktur, keeping case
func (m *Mapper) Gothic(text string) string { return mapRunes(text, gothicMap) }

// Small lowercases text and then maps it to small capitals. Any case information in text is lost
func (m *Mapper) Small(text string) string { return mapRunes(lower(text), smallCapsMap) }

// Sub lowercases text and then maps letters and digits to subscript forms
func (m *Mapper) Sub(text string) string { return mapRunes(lower(text), subScriptMap) }

// Sup maps letters and digits to superscript forms. Unlike Small and Sub, case is kept, as upper and lower case
// letters have distinct superscript glyphs
func (m *Mapper) Sup(text string) string { return mapRunes(text, superScriptMap) }

// Zalgo appends exactly one randomly chosen combining mark to every rune in text. A byte that is not valid UTF-8 is
// kept as is and counts as one rune. Running it over its own output stacks more marks, there is no cap.
func (m *Mapper) Zalgo(text string) string {
	if text == "" {
		return ""
	}

	out := strings.Builder{}
	out.Grow(len(text) * 3)

	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		out.WriteString(text[i : i+size])
		out.WriteRune(combiningMarks[m.src.Intn(len(combiningMarks))])
		i += size
	}

	return out.String()
}

// Marks returns a copy of the combining marks Zalgo draws from, in code point order
func Marks() []rune {
	out := make([]rune, len(combiningMarks))
	copy(out, combiningMarks[:])

	return out
}

// mapRunes replaces every rune found in table. Bytes that are not valid UTF-8 are copied through untouched
func mapRunes(text string, table map[rune]rune) string {
	out := strings.Builder{}
	out.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			out.WriteByte(text[i])
		} else if mapped, ok := table[r]; ok {
			out.WriteRune(mapped)
		} else {
			out.WriteString(text[i : i+size])
		}

		i += size
	}

	return out.String()
}

// lower does a full unicode lowercase of every valid UTF-8 run in text, leaving invalid bytes where they were
func lower(text string) string {
	if utf8.ValidString(text) {
		return cases.Lower(language.Und).String(text)
	}

	out := strings.Builder{}
	out.Grow(len(text))

	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			out.WriteString(cases.Lower(language.Und).String(text[start:i]))
			out.WriteByte(text[i])
			start = i + 1
		}

		i += size
	}

	out.WriteString(cases.Lower(language.Und).String(text[start:]))

	return out.String()
}

// Apply renders text in the given Style using a shared Mapper
func Apply(style Style, text string) string { return defaultMapper.Apply(style, text) }
