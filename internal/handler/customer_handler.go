package handler

import (
	"net/http"

	"agromart/internal/model"
	"agromart/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// Create handles POST /customers requests.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CustomerPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.CustomerPayload
	if !empty {
		p = &payload
	}

	if err := h.service.Create(r.Context(), p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on create customer")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /customers/{customerId} requests.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "customerId", "Invalid customer's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	var payload model.CustomerPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.CustomerPayload
	if !empty {
		p = &payload
	}

	if err := h.service.Update(r.Context(), id, p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on update customer")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Show handles GET /customers/{customerId} requests.
func (h *CustomerHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "customerId", "Invalid customer's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on show customer")
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// List handles GET /customers requests.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on list customers")
		return
	}

	if customers == nil {
		customers = []model.Customer{}
	}

	writeJSON(w, http.StatusOK, customers)
}

// Delete handles DELETE /customers/{customerId} requests.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "customerId", "Invalid customer's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on delete customer")
		return
	}

	w.WriteHeader(http.StatusCreated)
}
