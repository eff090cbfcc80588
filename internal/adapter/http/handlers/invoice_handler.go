package handlers

import (
	"net/http"

	request "salesease/internal/adapter/http/dto/request"
	response "salesease/internal/adapter/http/dto/response"
	"salesease/internal/usecase"
	"salesease/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEditPayload = pkg.NewDomainErrorSimple("INVALID_EDIT_PAYLOAD", "Invalid edit payload", http.StatusBadRequest)

// InvoiceHandler exposes the editing session: every user intent from the
// form view (field edit, item add/update/remove, clear) is an endpoint.

type InvoiceHandler struct {
	editor usecase.IInvoiceEditorUseCase
}

func NewInvoiceHandler(editor usecase.IInvoiceEditorUseCase) *InvoiceHandler {
	return &InvoiceHandler{editor: editor}
}

// GetInvoice returns the full session snapshot.
// @Summary      Get session snapshot
// @Description  Returns the invoice aggregate, business info, client info and derived totals
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.SnapshotResponse
// @Router       /invoice [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	snap := h.editor.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// UpdateInvoice edits the top-level invoice scalar fields.
// @Summary      Edit invoice fields
// @Description  Applies a partial update to invoice number, dates, notes or discount rate
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        payload  body      request.InvoiceUpdateRequest  true  "Invoice field edits"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /invoice [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditPayload.HTTPStatus, errInvalidEditPayload.ToHTTPError())
		return
	}

	inv := h.editor.UpdateInvoice(c.Request.Context(), payload.ToPatch())
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// AddItem appends a blank line item.
// @Summary      Add line item
// @Description  Appends a new empty item with quantity 1 and price 0
// @Tags         items
// @Produce      json
// @Success      201  {object}  response.ItemResponse
// @Router       /invoice/items [post]
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	item := h.editor.AddItem(c.Request.Context())
	c.JSON(http.StatusCreated, response.FromItem(item))
}

// UpdateItem edits a line item by id.
// @Summary      Update line item
// @Description  Applies a partial update to the item with the given id; unknown ids are a no-op
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Item ID"
// @Param        payload  body      request.ItemUpdateRequest  true  "Item field edits"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /invoice/items/{id} [patch]
func (h *InvoiceHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditPayload.HTTPStatus, errInvalidEditPayload.ToHTTPError())
		return
	}

	inv := h.editor.UpdateItem(c.Request.Context(), c.Param("id"), payload.ToPatch())
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// RemoveItem deletes a line item by id.
// @Summary      Remove line item
// @Description  Removes the item with the given id; unknown ids are a no-op
// @Tags         items
// @Produce      json
// @Param        id  path      string  true  "Item ID"
// @Success      200 {object}  response.InvoiceResponse
// @Router       /invoice/items/{id} [delete]
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	inv := h.editor.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ClearInvoice resets the session.
// @Summary      Clear invoice
// @Description  Resets the invoice to template defaults with an empty item list and a fresh number, and resets client info
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  response.SnapshotResponse
// @Router       /invoice/clear [post]
func (h *InvoiceHandler) ClearInvoice(c *gin.Context) {
	snap := h.editor.ClearInvoice(c.Request.Context())
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// UpdateBusinessInfo edits the issuer identity.
// @Summary      Edit business info
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BusinessUpdateRequest  true  "Business field edits"
// @Success      200      {object}  response.BusinessResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /business [patch]
func (h *InvoiceHandler) UpdateBusinessInfo(c *gin.Context) {
	var payload request.BusinessUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditPayload.HTTPStatus, errInvalidEditPayload.ToHTTPError())
		return
	}

	info := h.editor.UpdateBusinessInfo(c.Request.Context(), payload.ToPatch())
	c.JSON(http.StatusOK, response.FromBusinessInfo(info))
}

// UpdateClientInfo edits the recipient identity.
// @Summary      Edit client info
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ClientUpdateRequest  true  "Client field edits"
// @Success      200      {object}  response.ClientResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /client [patch]
func (h *InvoiceHandler) UpdateClientInfo(c *gin.Context) {
	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditPayload.HTTPStatus, errInvalidEditPayload.ToHTTPError())
		return
	}

	info := h.editor.UpdateClientInfo(c.Request.Context(), payload.ToPatch())
	c.JSON(http.StatusOK, response.FromClientInfo(info))
}
