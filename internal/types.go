package internal

type Category string

const (
	CategoryComponent Category = "component"
	CategoryCover     Category = "cover"
)

type PricingRule string

const (
	RuleStandard PricingRule = "standard"
	RuleFallback PricingRule = "fallback"
)

// InventoryItem is one priced catalog entry. Items are immutable after
// ingestion; the whole set is replaced on every successful import.
type InventoryItem struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Normalized  string      `json:"-"`
	Cost        float64     `json:"cost"`
	Category    Category    `json:"category"`
	SourceSheet string      `json:"sourceSheet"`
	InStock     bool        `json:"inStock"`
	Rule        PricingRule `json:"pricingRule"`
}

type QuoteStatus string

const (
	QuotePending    QuoteStatus = "pending"
	QuoteProcessing QuoteStatus = "processing"
	QuoteCompleted  QuoteStatus = "completed"
	QuoteNotFound   QuoteStatus = "not_found"
)

// QuoteRequest is the per-line resolution result. Item and FinalPrice are
// set together iff Status is QuoteCompleted.
type QuoteRequest struct {
	OriginalText string         `json:"originalText"`
	Status       QuoteStatus    `json:"status"`
	Item         *InventoryItem `json:"item,omitempty"`
	FinalPrice   *float64       `json:"finalPrice,omitempty"`
}

// CatalogRow is one decoded spreadsheet row. Cost cells keep their raw cell
// value (string or numeric) so the currency parser sees what the sheet held.
type CatalogRow struct {
	Sheet       string
	Status      string
	Description string
	UnitCost    any
	BulkCost    any
}

// CatalogSections groups the two logical sections of a catalog workbook.
type CatalogSections struct {
	Components []CatalogRow
	Covers     []CatalogRow
}

// MatchCandidate is the trimmed item view sent to the semantic oracle.
type MatchCandidate struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	InStock     bool   `json:"inStock"`
}
