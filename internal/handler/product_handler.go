package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalog-api/internal/middleware"
	"catalog-api/internal/model"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests. All routes it serves
// sit behind the bearer-token middleware; the bound username is available in
// the request context but does not scope access.
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

// List handles GET /products requests with limit/skip pagination.
// Unparseable values fall back to the defaults rather than erroring.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	skip := queryInt(r, "skip", 0)

	products, err := h.service.List(r.Context(), limit, skip)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	// An empty page serialises as [] rather than null.
	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid data", h.logger)
		return
	}

	if fieldErrors := validateProduct(req); len(fieldErrors) > 0 {
		writeValidationError(w, r, fieldErrors, h.logger)
		return
	}

	// Description defaults to an empty string when omitted.
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	product, err := h.service.Create(r.Context(), req.Title, description, *req.Price)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to create product", h.logger)
		return
	}

	h.logger.Debug().
		Str("username", middleware.UsernameFrom(r.Context())).
		Int("product_id", product.ID).
		Msg("product created")

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id} requests. Validation runs before the
// existence check; title and price are always overwritten, description only
// when the body supplies one (an explicit empty string overwrites).
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r, h.logger)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid data", h.logger)
		return
	}

	if fieldErrors := validateProduct(req); len(fieldErrors) > 0 {
		writeValidationError(w, r, fieldErrors, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, req.Title, req.Description, *req.Price)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to delete product", h.logger)
		return
	}

	h.logger.Debug().
		Str("username", middleware.UsernameFrom(r.Context())).
		Int("product_id", id).
		Msg("product deleted")

	writeJSON(w, http.StatusOK, messageResponse{Message: "Product deleted"})
}

// productID extracts the integer id path parameter. A non-integer segment is
// treated as an unroutable path and yields the generic not-found body.
func productID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "Resource not found", logger)
		return 0, false
	}
	return id, true
}

// queryInt parses an integer query parameter, falling back to the default
// when the parameter is absent or unparseable.
func queryInt(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
