package catalog

import (
	"testing"

	"storefront/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	store := Default()

	product, err := store.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds Pro", product.Name)

	_, err = store.GetByID("does-not-exist")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFeaturedPreservesCatalogOrder(t *testing.T) {
	store := Default()

	featured := store.Featured()
	require.Len(t, featured, 5)

	ids := []string{}
	for _, p := range featured {
		assert.True(t, p.Featured)
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "5", "7"}, ids)
}

func TestByCategoryIsCaseInsensitive(t *testing.T) {
	store := Default()

	for _, label := range []string{"Audio", "audio", "AUDIO"} {
		products := store.ByCategory(label)
		require.Len(t, products, 2, "category %q", label)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "5", products[1].ID)
	}

	assert.Empty(t, store.ByCategory("Unknown"))
}

func TestCategoriesFirstOccurrenceOrder(t *testing.T) {
	store := Default()

	assert.Equal(t, []string{
		"Audio", "Wearables", "Computers", "Accessories",
		"Smart Home", "Photography",
	}, store.Categories())
}

func TestSearchRequiresEveryToken(t *testing.T) {
	store := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "both tokens must match",
			query: "wireless audio",
			want:  []string{"1"},
		},
		{
			name:  "single token over tags",
			query: "bluetooth",
			want:  []string{"1"},
		},
		{
			name:  "token over category",
			query: "photography",
			want:  []string{"7"},
		},
		{
			name:  "case insensitive",
			query: "WIRELESS",
			want:  []string{"1", "4"},
		},
		{
			name:  "no match",
			query: "wireless audio nonexistent",
			want:  []string{},
		},
		{
			name:  "empty query matches everything",
			query: "",
			want:  []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, p := range store.Search(tt.query) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterPriceRangeUsesEffectivePrice(t *testing.T) {
	store := Default()

	products := store.Filter(FilterOptions{
		PriceRange: &PriceRange{Min: 100, Max: 200},
	})

	ids := []string{}
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	// Earbuds Pro at the 129.99 discount price and the keyboard at
	// 149.99. The Smart Home Hub (99.99 effective) and the charging pad
	// (49.99) fall below the range.
	assert.Equal(t, []string{"1", "8"}, ids)
}

func TestFilterCategoriesCaseInsensitive(t *testing.T) {
	store := Default()

	products := store.Filter(FilterOptions{Categories: []string{"ACCESSORIES"}})

	require.Len(t, products, 2)
	assert.Equal(t, "4", products[0].ID)
	assert.Equal(t, "8", products[1].ID)
}

func TestFilterInStock(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Stock: 0},
		{ID: "b", Stock: 3},
	}
	store := New(products)

	got := store.Filter(FilterOptions{InStock: true})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilterSearchThenCategory(t *testing.T) {
	store := Default()

	products := store.Filter(FilterOptions{
		SearchQuery: "wireless",
		Categories:  []string{"accessories"},
	})

	require.Len(t, products, 1)
	assert.Equal(t, "4", products[0].ID)
}

func TestFilterSorting(t *testing.T) {
	store := Default()

	t.Run("price ascending", func(t *testing.T) {
		products := store.Filter(FilterOptions{SortBy: SortPriceAsc})
		for i := 1; i < len(products); i++ {
			assert.LessOrEqual(t,
				products[i-1].EffectivePrice(),
				products[i].EffectivePrice(),
			)
		}
	})

	t.Run("price descending", func(t *testing.T) {
		products := store.Filter(FilterOptions{SortBy: SortPriceDesc})
		for i := 1; i < len(products); i++ {
			assert.GreaterOrEqual(t,
				products[i-1].EffectivePrice(),
				products[i].EffectivePrice(),
			)
		}
	})

	t.Run("rating descending", func(t *testing.T) {
		products := store.Filter(FilterOptions{SortBy: SortRating})
		for i := 1; i < len(products); i++ {
			assert.GreaterOrEqual(t, products[i-1].Rating, products[i].Rating)
		}
	})

	t.Run("featured before non-featured, stable within", func(t *testing.T) {
		products := store.Filter(FilterOptions{SortBy: SortFeatured})

		ids := []string{}
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"1", "2", "3", "5", "7", "4", "6", "8"}, ids)
	})
}

// Filtering never invents products: every result is in the catalog and
// satisfies the requested bounds.
func TestProperty_FilterResultsRespectBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)
	store := Default()

	properties.Property("price-filtered products lie within the range", prop.ForAll(
		func(min, max float64) bool {
			if min > max {
				min, max = max, min
			}

			products := store.Filter(FilterOptions{
				PriceRange: &PriceRange{Min: min, Max: max},
			})

			for _, p := range products {
				price := p.EffectivePrice()
				if price < min || price > max {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 2000),
		gen.Float64Range(0, 2000),
	))

	properties.Property("filtering is a subset of the catalog", prop.ForAll(
		func(inStock bool, sortIdx int) bool {
			sorts := []SortBy{SortFeatured, SortPriceAsc, SortPriceDesc, SortRating}
			products := store.Filter(FilterOptions{
				InStock: inStock,
				SortBy:  sorts[((sortIdx%len(sorts))+len(sorts))%len(sorts)],
			})

			for _, p := range products {
				if _, err := store.GetByID(p.ID); err != nil {
					return false
				}
			}
			return len(products) <= len(store.All())
		},
		gen.Bool(),
		gen.Int(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRelated(t *testing.T) {
	store := Default()

	related := store.Related("1", 4)
	require.Len(t, related, 1)
	assert.Equal(t, "5", related[0].ID)

	assert.Empty(t, store.Related("does-not-exist", 4))

	// A product is never related to itself.
	for _, p := range store.Related("4", 4) {
		assert.NotEqual(t, "4", p.ID)
	}

	// The limit caps the result.
	assert.Len(t, store.Related("4", 1), 1)
}

func TestEffectivePriceAndDiscount(t *testing.T) {
	discounted := domain.Product{Price: 149.99, DiscountPrice: 129.99}
	assert.Equal(t, 129.99, discounted.EffectivePrice())
	assert.Equal(t, 13, discounted.DiscountPercent())

	full := domain.Product{Price: 299.99}
	assert.Equal(t, 299.99, full.EffectivePrice())
	assert.Equal(t, 0, full.DiscountPercent())
}
