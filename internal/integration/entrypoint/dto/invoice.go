// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/invoice"
)

// InvoiceStatsResponse represents the aggregated amounts of an invoice period.
type InvoiceStatsResponse struct {
	Period    string          `json:"period"`
	MonthName string          `json:"month_name"`
	Total     decimal.Decimal `json:"total"`
	Pending   decimal.Decimal `json:"pending"`
}

// InvoiceResponse represents a full invoice: the period aggregates plus the
// transactions composing it.
type InvoiceResponse struct {
	Period       string                `json:"period"`
	MonthName    string                `json:"month_name"`
	Total        decimal.Decimal       `json:"total"`
	Pending      decimal.Decimal       `json:"pending"`
	Transactions []TransactionResponse `json:"transactions"`
}

// PayInvoiceResponse represents the result of an invoice payment.
type PayInvoiceResponse struct {
	SettledCount int64 `json:"settled_count"`
}

// ToInvoiceStatsResponse converts a GetStatsOutput to its DTO.
func ToInvoiceStatsResponse(output *invoice.GetStatsOutput) InvoiceStatsResponse {
	return InvoiceStatsResponse{
		Period:    output.Period.String(),
		MonthName: output.Period.MonthName(),
		Total:     output.Total,
		Pending:   output.Pending,
	}
}

// ToInvoiceResponse converts a GetInvoiceOutput to its DTO.
func ToInvoiceResponse(output *invoice.GetInvoiceOutput) InvoiceResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return InvoiceResponse{
		Period:       output.Period.String(),
		MonthName:    output.MonthName,
		Total:        output.Total,
		Pending:      output.Pending,
		Transactions: transactions,
	}
}
