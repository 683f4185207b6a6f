package routes

import (
	"umzug_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathServices  = "/services"
)

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomerByID)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler) {
	rg.GET(PathServices, serviceHandler.ListServices)
}
