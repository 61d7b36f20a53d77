package infra

import (
	"fmt"
	"io"

	"inventory/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// RenderStockReport writes an A4 stock report: one table of products with
// their stock value, one table of SKU capacity usage, and the inventory total.
func RenderStockReport(w io.Writer, report *dto.StockReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Inventory stock report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generated "+report.GeneratedAt, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Products
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Products", "", 1, "L", false, 0, "")

	widths := []float64{contentW * 0.08, contentW * 0.36, contentW * 0.10, contentW * 0.14, contentW * 0.12, contentW * 0.20}
	headers := []string{"ID", "Name", "SKU", "Price", "Qty", "Value"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range report.Products {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", p.ID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[1], 6, truncate(p.Name, 40), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d", p.SKUID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, p.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%d", p.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, value.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW-widths[5], 6, "Total stock value", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 6, report.TotalValue.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Capacity
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "SKU capacity", "", 1, "L", false, 0, "")

	cw := []float64{contentW * 0.10, contentW * 0.42, contentW * 0.16, contentW * 0.16, contentW * 0.16}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range []string{"SKU", "Name", "Total", "Used", "Free"} {
		pdf.CellFormat(cw[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range report.Capacity {
		pdf.CellFormat(cw[0], 6, fmt.Sprintf("%d", row.SKUID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cw[1], 6, truncate(row.SKUName, 48), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cw[2], 6, fmt.Sprintf("%d", row.TotalCapacity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cw[3], 6, fmt.Sprintf("%d", row.UsedCapacity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cw[4], 6, fmt.Sprintf("%d", row.Remaining()), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write report: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
