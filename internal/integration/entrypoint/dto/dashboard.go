// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard financial summary.
type SummaryResponse struct {
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	Balance        decimal.Decimal `json:"balance"`
	MonthlyBalance decimal.Decimal `json:"monthly_balance"`
	PendingIncome  decimal.Decimal `json:"pending_income"`
	PendingExpense decimal.Decimal `json:"pending_expense"`
}

// ToSummaryResponse converts a GetSummaryOutput to its DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:    output.TotalIncome,
		TotalExpense:   output.TotalExpense,
		Balance:        output.Balance,
		MonthlyBalance: output.MonthlyBalance,
		PendingIncome:  output.PendingIncome,
		PendingExpense: output.PendingExpense,
	}
}
