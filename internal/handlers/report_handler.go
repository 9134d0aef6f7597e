package handlers

import (
	"net/http"

	"dashboard_api/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	page, limit := paginationParams(c, 10)
	reportType := c.Query("type")

	reports, total, err := h.reportService.ListReports(currentUserID(c), page, limit, reportType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports":    reports,
		"pagination": paginationEnvelope(page, limit, total),
	})
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.GetReportByID(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GenerateSalesReport(c *gin.Context) {
	var input services.GenerateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	generated, err := h.reportService.GenerateSalesReport(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": generated.Report, "data": generated.Data})
}

func (h *ReportHandler) GenerateInventoryReport(c *gin.Context) {
	var input services.GenerateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	generated, err := h.reportService.GenerateInventoryReport(currentUserID(c), input.Filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": generated.Report, "data": generated.Data})
}

func (h *ReportHandler) GenerateCustomerReport(c *gin.Context) {
	var input services.GenerateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	generated, err := h.reportService.GenerateCustomerReport(currentUserID(c), input.Filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": generated.Report, "data": generated.Data})
}

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reportService.DeleteReport(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
