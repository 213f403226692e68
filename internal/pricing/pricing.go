package pricing

import (
	"math"

	"cotador/internal"
)

const (
	standardMultiplier = 2.0
	fallbackMultiplier = 3.5
)

// Calculate applies the item's pricing-rule multiplier to the catalog cost
// and rounds the result up to the next multiple of 5. Exact multiples of 5
// are kept as-is.
func Calculate(cost float64, rule internal.PricingRule) float64 {
	multiplier := standardMultiplier
	if rule == internal.RuleFallback {
		multiplier = fallbackMultiplier
	}
	raw := cost * multiplier
	return math.Ceil(raw/5) * 5
}
