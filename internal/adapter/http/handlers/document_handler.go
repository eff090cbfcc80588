package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	response "salesease/internal/adapter/http/dto/response"
	"salesease/internal/usecase"
	"salesease/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles the outward-facing actions: PDF export and the
// share handoff.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// ExportInvoice renders the current invoice as a downloadable PDF.
// @Summary      Export invoice as PDF
// @Description  Renders the current invoice into a Letter-sized PDF named after the invoice number
// @Tags         documents
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /invoice/export [post]
func (h *DocumentHandler) ExportInvoice(c *gin.Context) {
	filename, document, err := h.usecase.ExportPDF(c.Request.Context())
	if err != nil {
		log.Printf("[document][handler] export failed err=%v", err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}

// ShareInvoice formats the invoice summary and returns the compose handoff.
// @Summary      Share invoice
// @Description  Formats a plain-text invoice summary and returns the pre-filled compose link
// @Tags         documents
// @Produce      json
// @Success      200  {object}  response.ShareResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /invoice/share [post]
func (h *DocumentHandler) ShareInvoice(c *gin.Context) {
	url, message, err := h.usecase.Share(c.Request.Context())
	if err != nil {
		log.Printf("[document][handler] share failed err=%v", err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ShareResponse{URL: url, Message: message})
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrExportInFlight):
		return pkg.NewDomainErrorSimple("EXPORT_IN_FLIGHT", "An export is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrExporterUnavailable), errors.Is(err, usecase.ErrShareUnavailable):
		return pkg.NewDomainError("ADAPTER_UNAVAILABLE", "Document adapter not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("DOCUMENT_FAILED", "Document action failed", err, http.StatusBadGateway)
	}
}
