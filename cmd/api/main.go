package main

import (
	_ "umzug_backoffice/docs"
	"umzug_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Umzug Back Office API
// @version         1.0
// @description     Moving company back office: quote calculation, customers and quote documents, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
