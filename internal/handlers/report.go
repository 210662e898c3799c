package handlers

import (
	"log"
	"strconv"

	"fintrack/internal/middleware"
	"fintrack/internal/services/report"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Monthly returns the income/expense totals and category breakdown for one
// calendar month. Missing year/month default to the current UTC month.
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	summary, err := h.reportService.Monthly(c.Context(), claims.UserID, year, month)
	if err != nil {
		log.Printf("monthly report failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to build report")
	}

	return response.Success(c, summary)
}
