package handler

import (
	"net/http"

	"agromart/internal/model"
	"agromart/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product catalogue HTTP requests: products and their
// nested category, feature and packing resources.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.ProductPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.ProductPayload
	if !empty {
		p = &payload
	}

	if err := h.service.Create(r.Context(), p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on create product")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /products/{productId} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productId", "Invalid product's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	var payload model.ProductPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.ProductPayload
	if !empty {
		p = &payload
	}

	if err := h.service.Update(r.Context(), id, p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on update product")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Show handles GET /products/{productId} requests.
func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productId", "Invalid product's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on show product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on list products")
		return
	}

	if products == nil {
		products = []model.FullProduct{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Delete handles DELETE /products/{productId} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productId", "Invalid product's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on delete product")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// CreateCategory handles POST /products/categories requests.
func (h *ProductHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload model.CategoryPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.CategoryPayload
	if !empty {
		p = &payload
	}

	if err := h.service.CreateCategory(r.Context(), p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on create category")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdateCategory handles PUT /products/categories/{categoryId} requests.
func (h *ProductHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "categoryId", "Invalid category's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	var payload model.CategoryPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.CategoryPayload
	if !empty {
		p = &payload
	}

	if err := h.service.UpdateCategory(r.Context(), id, p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on update category")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ListCategories handles GET /products/categories requests.
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on list categories")
		return
	}

	if categories == nil {
		categories = []model.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// DeleteCategory handles DELETE /products/categories/{categoryId} requests.
func (h *ProductHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "categoryId", "Invalid category's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on delete category")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// CreateFeature handles POST /products/features requests.
func (h *ProductHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var payload model.FeaturePayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.FeaturePayload
	if !empty {
		p = &payload
	}

	if err := h.service.CreateFeature(r.Context(), p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on create feature")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdateFeature handles PUT /products/features/{featureId} requests.
func (h *ProductHandler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "featureId", "Invalid feature's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	var payload model.FeaturePayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.FeaturePayload
	if !empty {
		p = &payload
	}

	if err := h.service.UpdateFeature(r.Context(), id, p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on update feature")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ListFeatures handles GET /products/features requests.
func (h *ProductHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.service.ListFeatures(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on list features")
		return
	}

	if features == nil {
		features = []model.Feature{}
	}

	writeJSON(w, http.StatusOK, features)
}

// DeleteFeature handles DELETE /products/features/{featureId} requests.
func (h *ProductHandler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "featureId", "Invalid feature's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.DeleteFeature(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on delete feature")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// CreatePacking handles POST /products/packings requests.
func (h *ProductHandler) CreatePacking(w http.ResponseWriter, r *http.Request) {
	var payload model.PackingPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.PackingPayload
	if !empty {
		p = &payload
	}

	if err := h.service.CreatePacking(r.Context(), p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on create packing")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdatePacking handles PUT /products/packings/{packingId} requests.
func (h *ProductHandler) UpdatePacking(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "packingId", "Invalid packing's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	var payload model.PackingPayload
	empty, err := decodePayload(r, &payload)
	if err != nil {
		writeError(w, r, h.logger, model.Validation("Invalid request body", ""), "")
		return
	}

	var p *model.PackingPayload
	if !empty {
		p = &payload
	}

	if err := h.service.UpdatePacking(r.Context(), id, p); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on update packing")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ListPackings handles GET /products/packings requests.
func (h *ProductHandler) ListPackings(w http.ResponseWriter, r *http.Request) {
	packings, err := h.service.ListPackings(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on list packings")
		return
	}

	if packings == nil {
		packings = []model.Packing{}
	}

	writeJSON(w, http.StatusOK, packings)
}

// DeletePacking handles DELETE /products/packings/{packingId} requests.
func (h *ProductHandler) DeletePacking(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "packingId", "Invalid packing's id")
	if err != nil {
		writeError(w, r, h.logger, err, "")
		return
	}

	if err := h.service.DeletePacking(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Unexpected error on delete packing")
		return
	}

	w.WriteHeader(http.StatusCreated)
}
