package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExportBatchToXLSX writes one row per quote request plus a final total row.
func ExportBatchToXLSX(result BatchResult, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"line", "request", "status", "matched_description", "category",
		"in_stock", "unit_cost", "pricing_rule", "final_price",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNo := 2
	for i, req := range result.Requests {
		values := []any{i + 1, req.OriginalText, string(req.Status)}
		if req.Item != nil {
			values = append(values,
				req.Item.Description, string(req.Item.Category),
				req.Item.InStock, req.Item.Cost, string(req.Item.Rule))
		} else {
			values = append(values, "", "", "", "", "")
		}
		if req.FinalPrice != nil {
			values = append(values, *req.FinalPrice)
		} else {
			values = append(values, "")
		}

		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowNo)
			_ = f.SetCellValue(sheet, cell, v)
		}
		rowNo++
	}

	totalLabel, _ := excelize.CoordinatesToCellName(len(headers)-1, rowNo)
	totalCell, _ := excelize.CoordinatesToCellName(len(headers), rowNo)
	_ = f.SetCellValue(sheet, totalLabel, "total_in_stock")
	_ = f.SetCellValue(sheet, totalCell, result.Total)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
