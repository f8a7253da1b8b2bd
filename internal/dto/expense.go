package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Vendor     string          `json:"vendor"`
	IncurredAt time.Time       `json:"incurredAt"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		Amount:     e.Amount,
		Category:   e.Category,
		Vendor:     e.Vendor,
		IncurredAt: e.IncurredAt,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
