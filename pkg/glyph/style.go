package glyph

// Style identifies one of the supported renderings
type Style int

// Available styles. The set is closed, adding a style means adding a table and a case to Mapper.Apply
const (
	Cursive Style = iota
	Gothic
	Small
	Sub
	Sup
	Zalgo
	numStyles
)

var styleNames = [numStyles]string{
	Cursive: "cursive",
	Gothic:  "gothic",
	Small:   "small",
	Sub:     "sub",
	Sup:     "sup",
	Zalgo:   "zalgo",
}

// String returns the command token for the Style, eg "cursive"
func (s Style) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return styleNames[s]
}

// Valid returns whether or not s is one of the declared styles
func (s Style) Valid() bool {
	return s >= 0 && s < numStyles
}

// ParseStyle looks up a command token. Matching is case sensitive, "Cursive" is not a style
func ParseStyle(token string) (Style, bool) {
	for i, name := range styleNames {
		if name == token {
			return Style(i), true
		}
	}

	return -1, false
}

// Styles returns every Style in declaration order
func Styles() []Style {
	out := make([]Style, 0, numStyles)
	for s := Style(0); s < numStyles; s++ {
		out = append(out, s)
	}

	return out
}
