package main

import (
	_ "salesease/docs"
	"salesease/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SalesEase Invoice API
// @version         1.0
// @description     Single-session invoice editor (aggregate + totals + PDF export + share) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
