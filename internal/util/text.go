package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips combining diacritical marks and trims
// surrounding whitespace. Pure and total: any input yields a usable string.
func Normalize(input string) string {
	lowered := strings.ToLower(input)
	out, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		out = lowered
	}
	return strings.TrimSpace(out)
}

// Tokenize splits the normalized form of input on whitespace and drops
// tokens of two runes or fewer. Repeated tokens are kept as-is.
func Tokenize(input string) []string {
	parts := strings.Fields(Normalize(input))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if len([]rune(p)) > 2 {
			out = append(out, p)
		}
	}
	return out
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }
