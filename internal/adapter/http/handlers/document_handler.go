package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"umzug_backoffice/internal/usecase"
	"umzug_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves rendered quote documents and triggers outbound
// mail for a quote.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// EmailQuote sends the quote document to the customer's email address.
func (h *DocumentHandler) EmailQuote(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.EmailQuote(c.Request.Context(), id); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent", "quote_id": id})
}

func (h *DocumentHandler) QuotePDF(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.usecase.QuotePDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	servePDF(c, fmt.Sprintf("Umzugsangebot-%s.pdf", id), pdf)
}

func (h *DocumentHandler) WorkOrderPDF(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.usecase.WorkOrderPDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	servePDF(c, fmt.Sprintf("Arbeitsauftrag-%s.pdf", id), pdf)
}

func servePDF(c *gin.Context, filename string, pdf []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("DOCUMENT_DELIVERY_FAILED", "Document rendering or delivery failed", err, http.StatusBadGateway)
	}
}
