package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"cotador/internal"
	"cotador/internal/util"
)

// Fixed column layout shared by both catalog sections: status, description,
// then one (covers) or two (components) cost columns.
const (
	colStatus      = 0
	colDescription = 1
	colUnitCost    = 2
	colBulkCost    = 3
)

var headerWords = map[string]struct{}{
	"descricao": {},
	"produto":   {},
	"peca":      {},
	"pecas":     {},
	"tampa":     {},
	"tampas":    {},
	"item":      {},
	"status":    {},
}

// DecodeWorkbook reads a two-section catalog workbook. Sheets are assigned
// to a section by name; when no name matches, the first sheet is taken as
// components and the second as covers.
func DecodeWorkbook(r io.Reader) (internal.CatalogSections, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return internal.CatalogSections{}, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return internal.CatalogSections{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sections := internal.CatalogSections{}
	sheets := f.GetSheetList()
	for i, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}

		switch classifySheet(sheet, i) {
		case internal.CategoryComponent:
			sections.Components = append(sections.Components, decodeRows(sheet, rows, true)...)
		case internal.CategoryCover:
			sections.Covers = append(sections.Covers, decodeRows(sheet, rows, false)...)
		}
	}

	return sections, nil
}

func classifySheet(name string, position int) internal.Category {
	norm := util.Normalize(name)
	switch {
	case strings.Contains(norm, "peca") || strings.Contains(norm, "componente"):
		return internal.CategoryComponent
	case strings.Contains(norm, "tampa") || strings.Contains(norm, "capa"):
		return internal.CategoryCover
	case position == 0:
		return internal.CategoryComponent
	case position == 1:
		return internal.CategoryCover
	default:
		return ""
	}
}

func decodeRows(sheet string, rows [][]string, hasBulk bool) []internal.CatalogRow {
	out := make([]internal.CatalogRow, 0, len(rows))
	for i, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		if i == 0 && looksLikeHeader(cells) {
			continue
		}

		row := internal.CatalogRow{
			Sheet:       sheet,
			Status:      cell(cells, colStatus),
			Description: cell(cells, colDescription),
			UnitCost:    cell(cells, colUnitCost),
		}
		if hasBulk {
			row.BulkCost = cell(cells, colBulkCost)
		}
		out = append(out, row)
	}
	return out
}

func looksLikeHeader(cells []string) bool {
	_, ok := headerWords[util.Normalize(cell(cells, colDescription))]
	return ok
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}
