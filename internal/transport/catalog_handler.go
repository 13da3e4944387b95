package transport

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// defaultRelatedLimit caps the related-products strip.
const defaultRelatedLimit = 4

// CatalogHandler serves the catalog query endpoints.
type CatalogHandler struct {
	catalog *catalog.Store
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store *catalog.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: store, logger: logger}
}

// RegisterRoutes registers all catalog routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/featured", h.Featured)
		r.Get("/categories", h.Categories)
		r.Get("/{id}", h.GetByID)
		r.Get("/{id}/related", h.Related)
	})
}

// List filters and sorts the catalog from query parameters.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := filterOptionsFromQuery(r)
	if err != nil {
		h.logger.Debug("Invalid filter parameters", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Filter(opts))
}

// Featured returns the featured products.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Featured())
}

// Categories returns the distinct category labels.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Categories())
}

// GetByID returns a single product.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetByID(id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Related returns products sharing the product's category.
func (h *CatalogHandler) Related(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := defaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Related(id, limit))
}

// filterOptionsFromQuery translates list query parameters into catalog
// filter options.
func filterOptionsFromQuery(r *http.Request) (catalog.FilterOptions, error) {
	query := r.URL.Query()

	opts := catalog.FilterOptions{
		SearchQuery: query.Get("q"),
		SortBy:      catalog.SortBy(query.Get("sort")),
		InStock:     query.Get("in_stock") == "true",
	}

	if raw := query.Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				opts.Categories = append(opts.Categories, c)
			}
		}
	}

	minRaw, maxRaw := query.Get("min_price"), query.Get("max_price")
	if minRaw != "" || maxRaw != "" {
		priceRange := catalog.PriceRange{Min: 0, Max: 0}

		if minRaw != "" {
			min, err := strconv.ParseFloat(minRaw, 64)
			if err != nil {
				return catalog.FilterOptions{}, errors.New("invalid min_price")
			}
			priceRange.Min = min
		}

		if maxRaw != "" {
			max, err := strconv.ParseFloat(maxRaw, 64)
			if err != nil {
				return catalog.FilterOptions{}, errors.New("invalid max_price")
			}
			priceRange.Max = max
		} else {
			// No upper bound requested.
			priceRange.Max = maxPrice
		}

		opts.PriceRange = &priceRange
	}

	return opts, nil
}

// maxPrice is an effectively unbounded upper price limit.
const maxPrice = 1e12
