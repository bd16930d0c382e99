// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for credit card creation.
type CreateCardRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	LimitAmount decimal.Decimal `json:"limit_amount" binding:"required"`
	ClosingDay  int             `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay      int             `json:"due_day" binding:"required,min=1,max=31"`
	Color       string          `json:"color,omitempty"`
}

// CardResponse represents a single credit card in API responses.
type CardResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	ClosingDay  int             `json:"closing_day"`
	DueDay      int             `json:"due_day"`
	Color       string          `json:"color"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CardListResponse represents the response for listing credit cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// CardOverviewResponse represents a card with its resolved current invoice
// period for the dashboard widget.
type CardOverviewResponse struct {
	Card           CardResponse    `json:"card"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	Period         string          `json:"period"`
	MonthName      string          `json:"month_name"`
	Total          decimal.Decimal `json:"total"`
	Pending        decimal.Decimal `json:"pending"`
}

// CardOverviewListResponse represents the response for the card overview.
type CardOverviewListResponse struct {
	Cards []CardOverviewResponse `json:"cards"`
}

// ToCardResponse converts a domain CreditCard entity to a CardResponse DTO.
func ToCardResponse(card *entity.CreditCard) CardResponse {
	return CardResponse{
		ID:          card.ID.String(),
		Name:        card.Name,
		LimitAmount: card.LimitAmount,
		ClosingDay:  card.ClosingDay,
		DueDay:      card.DueDay,
		Color:       card.Color,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}

// ToCardListResponse converts a list of cards to a CardListResponse.
func ToCardListResponse(cards []*entity.CreditCard) CardListResponse {
	responses := make([]CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = ToCardResponse(card)
	}
	return CardListResponse{
		Cards: responses,
	}
}

// ToCardOverviewResponse converts a CardOverview entity to its DTO.
func ToCardOverviewResponse(overview *entity.CardOverview) CardOverviewResponse {
	return CardOverviewResponse{
		Card:           ToCardResponse(overview.Card),
		AvailableLimit: overview.AvailableLimit,
		Period:         overview.Period.String(),
		MonthName:      overview.MonthName,
		Total:          overview.Total,
		Pending:        overview.Pending,
	}
}

// ToCardOverviewListResponse converts a list of overviews to its DTO.
func ToCardOverviewListResponse(overviews []*entity.CardOverview) CardOverviewListResponse {
	responses := make([]CardOverviewResponse, len(overviews))
	for i, overview := range overviews {
		responses[i] = ToCardOverviewResponse(overview)
	}
	return CardOverviewListResponse{
		Cards: responses,
	}
}
