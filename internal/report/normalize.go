package report

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Typographic punctuation the built-in PDF fonts have no glyph for.
var asciiReplacements = map[rune]rune{
	'–': '-',  // en dash
	'—': '-',  // em dash
	'‑': '-',  // non-breaking hyphen
	'−': '-',  // minus sign
	'“': '"',  // left double quote
	'”': '"',  // right double quote
	'‘': '\'', // left single quote
	'’': '\'', // right single quote
}

var asciiNormalizer = runes.Map(func(r rune) rune {
	if repl, ok := asciiReplacements[r]; ok {
		return repl
	}
	return r
})

// NormalizeASCII rewrites typographic dashes and quotes to their ASCII
// equivalents before layout, so cells never render missing-glyph boxes.
func NormalizeASCII(s string) string {
	out, _, err := transform.String(asciiNormalizer, s)
	if err != nil {
		return s
	}
	return out
}
