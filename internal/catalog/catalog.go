// Package catalog holds the in-memory product catalog and its query
// engine. The catalog is immutable after construction; every query is a
// pure function over the product list.
package catalog

import (
	"errors"
	"sort"
	"strings"

	"storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// SortBy selects the ordering applied by Filter.
type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortPriceAsc  SortBy = "price-asc"
	SortPriceDesc SortBy = "price-desc"
	SortRating    SortBy = "rating"
)

// PriceRange is an inclusive [Min, Max] bound on the effective price.
type PriceRange struct {
	Min float64
	Max float64
}

// FilterOptions narrows and orders the catalog. Zero-valued fields are
// ignored.
type FilterOptions struct {
	Categories  []string
	PriceRange  *PriceRange
	InStock     bool
	SortBy      SortBy
	SearchQuery string
}

// Store is the immutable product catalog.
type Store struct {
	products []domain.Product
}

// New creates a catalog over the given products. The slice is copied.
func New(products []domain.Product) *Store {
	copied := make([]domain.Product, len(products))
	copy(copied, products)
	return &Store{products: copied}
}

// Default returns a catalog seeded with the built-in product fixture.
func Default() *Store {
	return New(seedProducts)
}

// All returns every product in catalog order.
func (s *Store) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID looks up a product by id.
func (s *Store) GetByID(id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Featured returns the featured products in catalog order.
func (s *Store) Featured() []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns products whose category matches case-insensitively.
func (s *Store) ByCategory(category string) []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels in first-occurrence
// order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Related returns up to limit products that share a category with the
// given product, excluding the product itself.
func (s *Store) Related(id string, limit int) []domain.Product {
	product, err := s.GetByID(id)
	if err != nil {
		return []domain.Product{}
	}

	out := []domain.Product{}
	for _, p := range s.products {
		if p.ID == id || !strings.EqualFold(p.Category, product.Category) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Search tokenizes the query on whitespace and returns products where
// every token appears as a substring of the concatenated name,
// description, category, and tags. Tokens AND together; fields OR.
func (s *Store) Search(query string) []domain.Product {
	terms := strings.Fields(strings.ToLower(query))

	out := []domain.Product{}
	for _, p := range s.products {
		haystack := strings.ToLower(
			p.Name + " " + p.Description + " " + p.Category + " " + strings.Join(p.Tags, " "),
		)

		matched := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies the options as a pipeline: search query, category
// membership, inclusive price range on the effective price, stock
// availability, then ordering.
func (s *Store) Filter(opts FilterOptions) []domain.Product {
	var filtered []domain.Product
	if opts.SearchQuery != "" {
		filtered = s.Search(opts.SearchQuery)
	} else {
		filtered = s.All()
	}

	if len(opts.Categories) > 0 {
		wanted := make(map[string]bool, len(opts.Categories))
		for _, c := range opts.Categories {
			wanted[strings.ToLower(c)] = true
		}

		kept := filtered[:0]
		for _, p := range filtered {
			if wanted[strings.ToLower(p.Category)] {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if opts.PriceRange != nil {
		kept := filtered[:0]
		for _, p := range filtered {
			price := p.EffectivePrice()
			if price >= opts.PriceRange.Min && price <= opts.PriceRange.Max {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if opts.InStock {
		kept := filtered[:0]
		for _, p := range filtered {
			if p.InStock() {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	sortProducts(filtered, opts.SortBy)
	return filtered
}

// sortProducts orders in place. The featured ordering is a partial
// order, so a stable sort keeps catalog order among ties.
func sortProducts(products []domain.Product, by SortBy) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default: // featured
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
