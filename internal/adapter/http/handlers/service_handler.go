package handlers

import (
	"net/http"
	response "umzug_backoffice/internal/adapter/http/dto/response"
	"umzug_backoffice/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the static catalog of bookable services.

type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(pricing.AvailableServices()))
}
