package routes

import (
	"salesease/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoice  = "/invoice"
	PathBusiness = "/business"
	PathClient   = "/client"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, documentHandler *handlers.DocumentHandler) {
	invoice := rg.Group(PathInvoice)
	{
		invoice.GET("", invoiceHandler.GetInvoice)
		invoice.PATCH("", invoiceHandler.UpdateInvoice)
		invoice.POST("/clear", invoiceHandler.ClearInvoice)
		invoice.POST("/items", invoiceHandler.AddItem)
		invoice.PATCH("/items/:id", invoiceHandler.UpdateItem)
		invoice.DELETE("/items/:id", invoiceHandler.RemoveItem)

		invoice.POST("/export", documentHandler.ExportInvoice)
		invoice.POST("/share", documentHandler.ShareInvoice)
	}

	rg.PATCH(PathBusiness, invoiceHandler.UpdateBusinessInfo)
	rg.PATCH(PathClient, invoiceHandler.UpdateClientInfo)
}
