package handlers

import (
	"context"
	"errors"
	"net/http"
	request "umzug_backoffice/internal/adapter/http/dto/request"
	response "umzug_backoffice/internal/adapter/http/dto/response"
	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/usecase"
	"umzug_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for moving quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CalculateQuote prices the survey details without persisting anything.
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	calc, err := h.usecase.Preview(c.Request.Context(), payload.CustomerID, payload.Details.ToDetails())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(calc))
}

// CreateQuote prices the survey details and persists the result as a draft.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, calc, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, payload.Details.ToDetails())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedQuote(quote, calc))
}

func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes returns the quotes of the customer given in the customer_id
// query parameter.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.SendByID)
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.AcceptByID)
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.DeclineByID)
}

func (h *QuoteHandler) ConfirmQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ConfirmByID)
}

func (h *QuoteHandler) InvoiceQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.InvoiceByID)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuotePrice overrides the stored price of a quote. The snapshot
// details stay untouched.
func (h *QuoteHandler) UpdateQuotePrice(c *gin.Context) {
	var payload request.UpdateQuotePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateQuotePrice(c.Request.Context(), c.Param("id"), price)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ReviseQuote creates a new version of an existing quote from fresh details.
func (h *QuoteHandler) ReviseQuote(c *gin.Context) {
	var payload request.ReviseQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, calc, err := h.usecase.Revise(c.Request.Context(), c.Param("id"), payload.Details.ToDetails())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedQuote(quote, calc))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuotePrice), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quote status does not allow this transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
