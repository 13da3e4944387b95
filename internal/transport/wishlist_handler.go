package transport

import (
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/wishlist"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WishlistResponse resolves the stored ids against the catalog so the
// client gets full product records.
type WishlistResponse struct {
	ProductIDs []string         `json:"productIds"`
	Products   []domain.Product `json:"products"`
}

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	wishlist *wishlist.Wishlist
	catalog  *catalog.Store
	logger   *zap.Logger
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(w *wishlist.Wishlist, store *catalog.Store, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: w, catalog: store, logger: logger}
}

// RegisterRoutes registers all wishlist routes.
func (h *WishlistHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Put("/{productID}", h.Add)
		r.Delete("/{productID}", h.Remove)
	})
}

// Get returns the wishlist contents.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondWithWishlist(w)
}

// Add inserts a product id; adding a present id changes nothing.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if _, err := h.catalog.GetByID(productID); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.wishlist.Add(r.Context(), productID); err != nil {
		h.logger.Error("Failed to add wishlist item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	h.respondWithWishlist(w)
}

// Remove deletes a product id; removing an absent id changes nothing.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.wishlist.Remove(r.Context(), productID); err != nil {
		h.logger.Error("Failed to remove wishlist item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove item")
		return
	}

	h.respondWithWishlist(w)
}

// Clear empties the wishlist.
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlist.Clear(r.Context()); err != nil {
		h.logger.Error("Failed to clear wishlist", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to clear wishlist")
		return
	}

	h.respondWithWishlist(w)
}

func (h *WishlistHandler) respondWithWishlist(w http.ResponseWriter) {
	ids := h.wishlist.IDs()

	products := []domain.Product{}
	for _, id := range ids {
		if product, err := h.catalog.GetByID(id); err == nil {
			products = append(products, product)
		}
	}

	middleware.RespondWithJSON(w, http.StatusOK, WishlistResponse{
		ProductIDs: ids,
		Products:   products,
	})
}
