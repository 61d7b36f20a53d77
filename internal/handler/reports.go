package handler

import (
	"bytes"
	"net/http"

	"inventory/internal/infra"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Stock renders the stock report as a PDF download.
func (h *ReportsHandler) Stock(c *gin.Context) {
	report, err := h.svc.StockReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := infra.RenderStockReport(&buf, report); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="stock-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
