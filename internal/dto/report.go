package dto

import "github.com/SscSPs/banking_services/internal/core/domain"

// ReportParams defines the query parameters of the customer statement report.
// Dates are ISO-8601 date-times; values without a zone are read as UTC.
type ReportParams struct {
	StartDate string `form:"startDate" binding:"required" example:"2024-01-01T00:00:00"`
	EndDate   string `form:"endDate" binding:"required" example:"2024-01-31T23:59:59"`
	Page      int    `form:"page,default=0" binding:"min=0"`
	Size      int    `form:"size,default=10" binding:"min=1,max=100"`
}

// PageParams returns the pagination part of the report parameters.
func (p ReportParams) PageParams() PageParams {
	return PageParams{Page: p.Page, Size: p.Size}
}

// ReportResponse joins a customer with a page of its transactions.
type ReportResponse struct {
	Customer     CustomerResponse                  `json:"customer"`
	Transactions PageResponse[TransactionResponse] `json:"transactions"`
}

// ToReportResponse converts a domain.Report to ReportResponse DTO
func ToReportResponse(r domain.Report) ReportResponse {
	return ReportResponse{
		Customer:     ToCustomerResponse(r.Customer),
		Transactions: ToPageResponse(r.Transactions, ToTransactionResponse),
	}
}
