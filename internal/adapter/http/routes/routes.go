package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "salesease/docs" // This will be auto-generated
	"salesease/internal/adapter/http/handlers"
	repository2 "salesease/internal/adapter/persistence/repository"
	"salesease/internal/infrastructure/database"
	"salesease/internal/infrastructure/export"
	"salesease/internal/infrastructure/share"
	"salesease/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	recordStore := repository2.NewRecordDynamoRepository(ddb)

	// The editing session rehydrates once at startup; each record falls back
	// to its template default when absent or unparsable.
	editorUseCase := usecase.NewInvoiceEditorUseCase(context.Background(), recordStore)
	documentUseCase := usecase.NewDocumentUseCase(editorUseCase, export.NewPDFExporter(), share.NewWhatsAppChannel())

	invoiceHandler := handlers.NewInvoiceHandler(editorUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, invoiceHandler, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// The editor form runs in a browser on a different origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))
}
