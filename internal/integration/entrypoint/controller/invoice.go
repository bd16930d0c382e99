// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/usecase/invoice"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles credit card invoice endpoints.
type InvoiceController struct {
	getStatsUseCase   *invoice.GetStatsUseCase
	getInvoiceUseCase *invoice.GetInvoiceUseCase
	payUseCase        *invoice.PayInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	getStatsUseCase *invoice.GetStatsUseCase,
	getInvoiceUseCase *invoice.GetInvoiceUseCase,
	payUseCase *invoice.PayInvoiceUseCase,
) *InvoiceController {
	return &InvoiceController{
		getStatsUseCase:   getStatsUseCase,
		getInvoiceUseCase: getInvoiceUseCase,
		payUseCase:        payUseCase,
	}
}

// GetStats handles GET /cards/:id/invoice/stats requests.
func (c *InvoiceController) GetStats(ctx *gin.Context) {
	userID, cardID, month, year, ok := c.parsePeriodRequest(ctx)
	if !ok {
		return
	}

	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), invoice.GetStatsInput{
		UserID: userID,
		CardID: cardID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceStatsResponse(output))
}

// GetInvoice handles GET /cards/:id/invoice requests.
func (c *InvoiceController) GetInvoice(ctx *gin.Context) {
	userID, cardID, month, year, ok := c.parsePeriodRequest(ctx)
	if !ok {
		return
	}

	output, err := c.getInvoiceUseCase.Execute(ctx.Request.Context(), invoice.GetInvoiceInput{
		UserID: userID,
		CardID: cardID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output))
}

// Pay handles POST /cards/:id/invoice/pay requests.
func (c *InvoiceController) Pay(ctx *gin.Context) {
	userID, cardID, month, year, ok := c.parsePeriodRequest(ctx)
	if !ok {
		return
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), invoice.PayInvoiceInput{
		UserID: userID,
		CardID: cardID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PayInvoiceResponse{SettledCount: output.SettledCount})
}

// parsePeriodRequest extracts the user, card and (month, year) pair shared by
// every invoice endpoint. It writes the error response itself on failure.
func (c *InvoiceController) parsePeriodRequest(ctx *gin.Context) (userID, cardID uuid.UUID, month, year int, ok bool) {
	userID, found := middleware.GetUserIDFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Missing user identity",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return uuid.Nil, uuid.Nil, 0, 0, false
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return uuid.Nil, uuid.Nil, 0, 0, false
	}

	month, err = strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice month",
			Code:  string(domainerror.ErrCodeInvalidInvoicePeriod),
		})
		return uuid.Nil, uuid.Nil, 0, 0, false
	}
	year, err = strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice year",
			Code:  string(domainerror.ErrCodeInvalidInvoicePeriod),
		})
		return uuid.Nil, uuid.Nil, 0, 0, false
	}

	return userID, cardID, month, year, true
}

// handleInvoiceError handles invoice and card errors and returns appropriate
// HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvoiceError
	if errors.As(err, &invErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		status := http.StatusInternalServerError
		if cardErr.Code == domainerror.ErrCodeCardNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
