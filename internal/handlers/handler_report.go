package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/banking_services/internal/apperrors"
	portssvc "github.com/SscSPs/banking_services/internal/core/ports/services"
	"github.com/SscSPs/banking_services/internal/dto"
)

// zonelessLayout is accepted in addition to RFC 3339 and read as UTC.
const zonelessLayout = "2006-01-02T15:04:05"

const msgInvalidDateTime = "Must be an ISO-8601 date-time"

type reportHandler struct {
	reportService portssvc.ReportSvc
}

func newReportHandler(rs portssvc.ReportSvc) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers the statement report route.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvc) {
	h := newReportHandler(reportService)
	rg.GET("/customers/:customerId/transactions/report", h.getReport)
}

// getReport godoc
// @Summary Account statement of a customer
// @Description Returns the customer profile with a page of the transactions of all its accounts dated within [startDate, endDate]. When the customer service cannot answer, the profile is replaced by a placeholder.
// @Tags reports
// @Produce  json
// @Param   customerId path string true "Customer ID"
// @Param   startDate query string true "Start date-time (ISO-8601, zone optional)" example(2024-01-01T00:00:00)
// @Param   endDate query string true "End date-time (ISO-8601, zone optional)" example(2024-01-31T23:59:59)
// @Param   page query int false "Zero-based page" default(0) minimum(0)
// @Param   size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{customerId}/transactions/report [get]
func (h *reportHandler) getReport(c *gin.Context) {
	var params dto.ReportParams
	if err := bindQuery(c, &params); err != nil {
		respondError(c, err)
		return
	}

	var fieldErrs apperrors.FieldErrors
	start, err := parseDateTime(params.StartDate)
	if err != nil {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "startDate", Message: msgInvalidDateTime})
	}
	end, err := parseDateTime(params.EndDate)
	if err != nil {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "endDate", Message: msgInvalidDateTime})
	}
	if len(fieldErrs) > 0 {
		respondError(c, fieldErrs)
		return
	}

	report, err := h.reportService.GetCustomerReport(c.Request.Context(), c.Param("customerId"),
		start, end, params.PageParams().Request())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(*report))
}

// parseDateTime accepts RFC 3339 and zone-less ISO-8601 date-times.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation(zonelessLayout, s, time.UTC)
}
