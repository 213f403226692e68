package catalog

import (
	"strings"

	"github.com/google/uuid"

	"cotador/internal"
	"cotador/internal/util"
)

// Status cell value that marks an item out of stock ("falta"). Any other
// value, including empty, means available.
const outOfStockSentinel = "F"

// BuildItems turns decoded catalog rows into validated inventory items.
// Rows that fail validation are dropped, never stored.
func BuildItems(sections internal.CatalogSections) []internal.InventoryItem {
	items := make([]internal.InventoryItem, 0, len(sections.Components)+len(sections.Covers))
	for _, row := range sections.Components {
		if item, ok := buildComponent(row); ok {
			items = append(items, item)
		}
	}
	for _, row := range sections.Covers {
		if item, ok := buildCover(row); ok {
			items = append(items, item)
		}
	}
	return items
}

// buildComponent prefers the single-unit cost column; when that is missing
// or non-positive it falls back to the bulk column under the fallback
// pricing rule. Rows with neither are discarded.
func buildComponent(row internal.CatalogRow) (internal.InventoryItem, bool) {
	description := strings.TrimSpace(row.Description)
	if description == "" {
		return internal.InventoryItem{}, false
	}

	cost := util.ParseCurrency(row.UnitCost)
	rule := internal.RuleStandard
	if cost <= 0 {
		cost = util.ParseCurrency(row.BulkCost)
		rule = internal.RuleFallback
	}
	if cost <= 0 {
		return internal.InventoryItem{}, false
	}

	return newItem(row, description, cost, internal.CategoryComponent, rule), true
}

// buildCover only requires a description; a zero cost is accepted for this
// section.
func buildCover(row internal.CatalogRow) (internal.InventoryItem, bool) {
	description := strings.TrimSpace(row.Description)
	if description == "" {
		return internal.InventoryItem{}, false
	}
	cost := util.ParseCurrency(row.UnitCost)
	return newItem(row, description, cost, internal.CategoryCover, internal.RuleStandard), true
}

func newItem(row internal.CatalogRow, description string, cost float64, category internal.Category, rule internal.PricingRule) internal.InventoryItem {
	return internal.InventoryItem{
		ID:          uuid.NewString(),
		Description: description,
		Normalized:  util.Normalize(description),
		Cost:        cost,
		Category:    category,
		SourceSheet: row.Sheet,
		InStock:     strings.ToUpper(strings.TrimSpace(row.Status)) != outOfStockSentinel,
		Rule:        rule,
	}
}
