package pricing

import (
	"math"
	"testing"

	"cotador/internal"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		cost float64
		rule internal.PricingRule
		want float64
	}{
		{name: "standard exact multiple", cost: 10, rule: internal.RuleStandard, want: 20},
		{name: "standard rounds up", cost: 6.85, rule: internal.RuleStandard, want: 15},
		{name: "fallback rounds up", cost: 6.85, rule: internal.RuleFallback, want: 25},
		{name: "fallback exact multiple", cost: 10, rule: internal.RuleFallback, want: 35},
		{name: "small cost", cost: 0.5, rule: internal.RuleStandard, want: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Calculate(tc.cost, tc.rule); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateProperties(t *testing.T) {
	for cost := 0.05; cost < 500; cost += 7.13 {
		std := Calculate(cost, internal.RuleStandard)
		if math.Mod(std, 5) != 0 {
			t.Fatalf("standard price %v for cost %v is not a multiple of 5", std, cost)
		}
		if std < cost*2 {
			t.Fatalf("standard price %v below raw price for cost %v", std, cost)
		}

		fb := Calculate(cost, internal.RuleFallback)
		if math.Mod(fb, 5) != 0 {
			t.Fatalf("fallback price %v for cost %v is not a multiple of 5", fb, cost)
		}
		if fb < cost*3.5 {
			t.Fatalf("fallback price %v below raw price for cost %v", fb, cost)
		}
	}
}
