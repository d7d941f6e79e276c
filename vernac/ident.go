package vernac

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Coq reserved words an identifier must not collide with. Source languages
// allow names like "match" or "exists" freely.
var coqKeywords = map[string]bool{
	"as": true, "at": true, "cofix": true, "else": true, "end": true,
	"exists": true, "fix": true, "for": true, "forall": true, "fun": true,
	"if": true, "in": true, "let": true, "match": true, "mod": true,
	"Prop": true, "return": true, "Set": true, "then": true, "Type": true,
	"where": true, "with": true,
}

// Ident mangles a source name into a valid Coq identifier: NFC-normalized,
// invalid runes replaced, digit-leading names prefixed, keywords suffixed.
// WIT-style kebab-case maps to snake_case.
func Ident(name string) string {
	name = norm.NFC.String(name)

	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	out := b.String()
	if out == "" {
		return "_"
	}
	if r := []rune(out)[0]; unicode.IsDigit(r) || r == '\'' {
		out = "_" + out
	}
	if coqKeywords[out] {
		out += "_"
	}
	return out
}
