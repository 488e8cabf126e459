package handler

import (
	"net/http"

	"agromart/internal/model"
	"agromart/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// orderPayload decodes the request body, reporting nil for an empty body so
// the service can reject it as not provided.
func (h *OrderHandler) orderPayload(w http.ResponseWriter, r *http.Request) (*model.OrderPayload, bool) {
	var payload model.OrderPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return nil, false
	}
	if empty {
		return nil, true
	}
	return &payload, true
}

// Create handles POST /orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.orderPayload(w, r)
	if !ok {
		return
	}

	if err := h.service.Create(r.Context(), payload); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on create order")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /orders/{orderId} requests.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId", "Invalid order's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	payload, ok := h.orderPayload(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, payload); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on update order")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Show handles GET /orders/{orderId} requests.
func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId", "Invalid order's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on show order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// List handles GET /orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on list orders")
		return
	}

	if orders == nil {
		orders = []model.FullOrder{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// Delete handles DELETE /orders/{orderId} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId", "Invalid order's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on delete order")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Finish handles PUT /orders/{orderId}/finish requests.
func (h *OrderHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId", "Invalid order's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.Finish(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on finish order")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Cancel handles PUT /orders/{orderId}/cancel requests.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId", "Invalid order's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on cancel order")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ListStatus handles GET /orders/status requests.
func (h *OrderHandler) ListStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Statuses())
}
