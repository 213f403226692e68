package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseCurrency converts a catalog cell into a numeric cost. Numeric values
// pass through unchanged. Text is read under Brazilian formatting: "." groups
// thousands and "," marks decimals, so "R$ 1.234,56" becomes 1234.56. A plain
// dot-decimal string like "6.85" therefore reads as 685; the catalog sheets
// only ever carry comma decimals. Anything unparseable comes back as 0.
func ParseCurrency(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseCurrencyText(v)
	default:
		return 0
	}
}

func parseCurrencyText(input string) float64 {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}
