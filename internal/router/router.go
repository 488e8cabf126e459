package router

import (
	"net/http"

	"agromart/internal/handler"
	"agromart/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()

	// RequestID sits outside Logging so access-log lines carry the id.
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.CORS,
	)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	// Customers
	r.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/customers/{customerId}", customerHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/customers/{customerId}", customerHandler.Show).Methods(http.MethodGet)
	r.HandleFunc("/customers/{customerId}", customerHandler.Delete).Methods(http.MethodDelete)

	// Product sub-resources come before /products/{productId} so that
	// "categories" and friends are not read as product ids.
	r.HandleFunc("/products/categories", productHandler.CreateCategory).Methods(http.MethodPost)
	r.HandleFunc("/products/categories", productHandler.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/products/categories/{categoryId}", productHandler.UpdateCategory).Methods(http.MethodPut)
	r.HandleFunc("/products/categories/{categoryId}", productHandler.DeleteCategory).Methods(http.MethodDelete)

	r.HandleFunc("/products/features", productHandler.CreateFeature).Methods(http.MethodPost)
	r.HandleFunc("/products/features", productHandler.ListFeatures).Methods(http.MethodGet)
	r.HandleFunc("/products/features/{featureId}", productHandler.UpdateFeature).Methods(http.MethodPut)
	r.HandleFunc("/products/features/{featureId}", productHandler.DeleteFeature).Methods(http.MethodDelete)

	r.HandleFunc("/products/packings", productHandler.CreatePacking).Methods(http.MethodPost)
	r.HandleFunc("/products/packings", productHandler.ListPackings).Methods(http.MethodGet)
	r.HandleFunc("/products/packings/{packingId}", productHandler.UpdatePacking).Methods(http.MethodPut)
	r.HandleFunc("/products/packings/{packingId}", productHandler.DeletePacking).Methods(http.MethodDelete)

	// Products
	r.HandleFunc("/products", productHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/products", productHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/products/{productId}", productHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/products/{productId}", productHandler.Show).Methods(http.MethodGet)
	r.HandleFunc("/products/{productId}", productHandler.Delete).Methods(http.MethodDelete)

	// Orders; /orders/status precedes /orders/{orderId}.
	r.HandleFunc("/orders/status", orderHandler.ListStatus).Methods(http.MethodGet)
	r.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders", orderHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/orders/{orderId}/finish", orderHandler.Finish).Methods(http.MethodPut)
	r.HandleFunc("/orders/{orderId}/cancel", orderHandler.Cancel).Methods(http.MethodPut)
	r.HandleFunc("/orders/{orderId}", orderHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/orders/{orderId}", orderHandler.Show).Methods(http.MethodGet)
	r.HandleFunc("/orders/{orderId}", orderHandler.Delete).Methods(http.MethodDelete)

	return r
}
