package routes

import (
	"umzug_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, documentHandler *handlers.DocumentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/calculate", quoteHandler.CalculateQuote)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)

		quotes.PATCH("/:id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/decline", quoteHandler.DeclineQuote)
		quotes.PATCH("/:id/confirm", quoteHandler.ConfirmQuote)
		quotes.PATCH("/:id/invoice", quoteHandler.InvoiceQuote)
		quotes.PATCH("/:id/price", quoteHandler.UpdateQuotePrice)
		quotes.POST("/:id/revise", quoteHandler.ReviseQuote)

		quotes.POST("/:id/email", documentHandler.EmailQuote)
		quotes.GET("/:id/pdf", documentHandler.QuotePDF)
		quotes.GET("/:id/work-order", documentHandler.WorkOrderPDF)
	}
}
