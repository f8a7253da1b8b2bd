package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomeResponse defines the data returned for an income.
type IncomeResponse struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Source     string          `json:"source"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(i domain.Income) IncomeResponse {
	return IncomeResponse{
		ID:         i.ID,
		Amount:     i.Amount,
		Source:     i.Source,
		ReceivedAt: i.ReceivedAt,
		Notes:      i.Notes,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
