package styler

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"awesome-dragon.science/go/goGoStyleBot/pkg/glyph"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func newTestStyler(mode ReplaceMode, disabled ...glyph.Style) *Styler {
	return New(glyph.NewMapper(zeroSource{}), mode, nil, disabled...)
}

var transformTests = []struct {
	name string
	in   string
	want string
}{
	{"no markers", "no markers here", "no markers here"},
	{"empty", "", ""},
	{"single", `/cursive "world"`, "𝔀𝓸𝓻𝓵𝓭"},
	{"unknown kept", `Hello /cursive "world" and /nope "test"`, `Hello 𝔀𝓸𝓻𝓵𝓭 and /nope "test"`},
	{"superscript digit", `/sup "5"`, "⁵"},
	{"case sensitive token", `/Cursive "x"`, `/Cursive "x"`},
	{"several styles", `/gothic "Go" /small "Go" /sub "h2o"`, "𝔊𝔬 ɢᴏ ₕ₂ₒ"},
	{"zalgo", `/zalgo "ab"`, "a\u0300b\u0300"},
	{"repeated marker", `/sup "a" and /sup "a"`, "ᵃ and ᵃ"},
	{"unterminated", `/sup "5 and more`, `/sup "5 and more`},
	{"empty payload", `/sup "" x`, `/sup "" x`},
	{"unmapped payload", `/cursive "123!"`, "123!"},
	{"adjacent", `/sup "1"/sub "2"`, "¹₂"},
	{"slash inside text", `a/b /sup "c"`, "a/b ᶜ"},
	{"invalid utf8 payload", "/sup \"a\xffb\"", "ᵃ\xffᵇ"},
}

func TestStyler_Transform(t *testing.T) {
	for _, mode := range []ReplaceMode{ReplaceFirst, Splice} {
		s := newTestStyler(mode)
		for _, tt := range transformTests {
			tt := tt
			t.Run(fmt.Sprintf("%s/%s", mode, tt.name), func(t *testing.T) {
				if got := s.Transform(tt.in); got != tt.want {
					t.Errorf("Transform(%q) = %q, want %q", tt.in, got, tt.want)
				}
			})
		}
	}
}

func TestStyler_TransformModesDiffer(t *testing.T) {
	in := `/nope "a /sup "b" /sup "b"`

	tests := []struct {
		mode ReplaceMode
		want string
	}{
		{ReplaceFirst, `/nope "a ᵇ /sup "b"`},
		{Splice, `/nope "a /sup "b" ᵇ`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, newTestStyler(tt.mode).Transform(in))
		})
	}
}

func TestStyler_Disabled(t *testing.T) {
	s := newTestStyler(ReplaceFirst, glyph.Zalgo, glyph.Gothic)
	in := `/zalgo "x" /gothic "y" /sup "z"`

	assert.Equal(t, `/zalgo "x" /gothic "y" ᶻ`, s.Transform(in))
	assert.Equal(t, []glyph.Style{glyph.Cursive, glyph.Small, glyph.Sub, glyph.Sup}, s.Enabled())

	_, ok := s.Lookup("zalgo")
	assert.False(t, ok)

	st, ok := s.Lookup("sup")
	assert.True(t, ok)
	assert.Equal(t, glyph.Sup, st)
}

func TestStyler_ZalgoRandom(t *testing.T) {
	s := New(nil, ReplaceFirst, nil)
	in := `say /zalgo "hello"`

	out := s.Transform(in)
	assert.True(t, strings.HasPrefix(out, "say h"))
	assert.Equal(t, utf8.RuneCountInString("say hello")+5, utf8.RuneCountInString(out))
	assert.NotContains(t, out, "/zalgo")
}

func TestStyler_TransformMessage(t *testing.T) {
	s := newTestStyler(ReplaceFirst)

	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		msg     *Message
		want    bool
		content *string
	}{
		{"nil message", nil, false, nil},
		{"nil content", &Message{}, false, nil},
		{"empty content", &Message{Content: str("")}, false, str("")},
		{"plain content", &Message{Content: str("hi")}, true, str("hi")},
		{"styled content", &Message{Content: str(`/sup "hi"`)}, true, str("ʰᶦ")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.TransformMessage(tt.msg))
			if tt.msg != nil {
				assert.Equal(t, tt.content, tt.msg.Content)
			}
		})
	}
}

func TestStyler_Stats(t *testing.T) {
	s := newTestStyler(ReplaceFirst)
	s.Transform(`/sup "a" /nope "b"`)
	s.Transform("nothing")

	got := s.Stats()
	assert.Equal(t, uint64(2), got.Messages)
	assert.Equal(t, uint64(2), got.Matched)
	assert.Equal(t, uint64(1), got.Replaced)
	assert.Equal(t, uint64(len(`/sup "a" /nope "b"`)+len("nothing")), got.BytesIn)
	assert.Equal(t, uint64(len(`ᵃ /nope "b"`)+len("nothing")), got.BytesOut)
}

func TestParseReplaceMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ReplaceMode
		wantErr bool
	}{
		{"first", ReplaceFirst, false},
		{"", ReplaceFirst, false},
		{"SPLICE", Splice, false},
		{"middle", ReplaceFirst, true},
	}

	for _, tt := range tests {
		got, err := ParseReplaceMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseReplaceMode(%q) = %v, %v; want %v, err %t", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func BenchmarkStyler_Transform(b *testing.B) {
	s := New(nil, ReplaceFirst, nil)
	in := `Hello /cursive "world", this is /gothic "a test" of /sup "many" /small "Styles" and /nope "nothing"`

	for i := 0; i < b.N; i++ {
		s.Transform(in)
	}
}

func ExampleStyler_Transform() {
	s := New(nil, ReplaceFirst, nil)
	fmt.Println(s.Transform(`I am /small "Very Fancy" and /nope "plain"`))
	// output:
	// I am ᴠᴇʀʏ ꜰᴀɴᴄʏ and /nope "plain"
}
