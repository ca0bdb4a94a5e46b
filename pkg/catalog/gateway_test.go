package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"madhurfashion.in/storefront/pkg/models"
)

// memStore is an in-memory catalog.Store. Products keep insertion order
// reversed, mimicking the real store's newest-first reads.
type memStore struct {
	products []*models.Product
}

func (s *memStore) ordered() []*models.Product {
	out := make([]*models.Product, 0, len(s.products))
	for i := len(s.products) - 1; i >= 0; i-- {
		out = append(out, s.products[i])
	}
	return out
}

func (s *memStore) All(context.Context) ([]*models.Product, error) {
	return s.ordered(), nil
}

func (s *memStore) ByCategory(_ context.Context, category string) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range s.ordered() {
		if p.Category == category && p.InStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) Search(_ context.Context, term string) ([]*models.Product, error) {
	term = strings.ToLower(term)
	var out []*models.Product
	for _, p := range s.ordered() {
		if !p.InStock {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) Get(_ context.Context, id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) Insert(_ context.Context, product *models.Product) error {
	s.products = append(s.products, product)
	return nil
}

func (s *memStore) Update(_ context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID != id {
			continue
		}
		for key, value := range fields {
			switch key {
			case "name":
				p.Name = value.(string)
			case "category":
				p.Category = value.(string)
			case "stock_count":
				p.StockCount = value.(int)
			case "in_stock":
				p.InStock = value.(bool)
			case "tags":
				p.Tags = value.([]string)
			case "price":
				p.Price = value.(float64)
			}
		}
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *memStore) Delete(_ context.Context, id string) error {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seedStore() *memStore {
	store := &memStore{}
	_ = store.Insert(context.Background(), &models.Product{ID: "1", Name: "Silk Saree", Category: "Traditional", InStock: true, StockCount: 3})
	_ = store.Insert(context.Background(), &models.Product{ID: "2", Name: "Denim Jacket", Category: "Casual", InStock: true, StockCount: 0})
	_ = store.Insert(context.Background(), &models.Product{ID: "3", Name: "Wedding Sherwani", Category: "Traditional", InStock: true, StockCount: 7})
	return store
}

func TestListSearchTakesPrecedenceOverCategory(t *testing.T) {
	g := NewGateway(seedStore())

	result, err := g.List(context.Background(), ListFilters{Search: "saree", Category: "Casual", Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalFound)
	require.Equal(t, "Silk Saree", result.Products[0].Name)
	require.Equal(t, "Found 1 products", result.Message)
}

func TestListCategoryAndInStockOnlyAndLimit(t *testing.T) {
	g := NewGateway(seedStore())

	result, err := g.List(context.Background(), ListFilters{Category: "Traditional", Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalFound)
	// newest first
	require.Equal(t, "Wedding Sherwani", result.Products[0].Name)

	result, err = g.List(context.Background(), ListFilters{InStockOnly: true, Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalFound)
	for _, p := range result.Products {
		require.True(t, p.InStock && p.StockCount > 0)
	}

	result, err = g.List(context.Background(), ListFilters{Limit: 1})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalFound)
}

func TestListLimitZeroAndDefault(t *testing.T) {
	g := NewGateway(seedStore())

	// an explicit zero limit is an empty page, not the default cap
	result, err := g.List(context.Background(), ListFilters{Limit: 0})
	require.NoError(t, err)
	require.Empty(t, result.Products)
	require.False(t, result.HasInventory)

	// a negative limit falls back to the default cap
	result, err = g.List(context.Background(), ListFilters{Limit: -1})
	require.NoError(t, err)
	require.Equal(t, 3, result.TotalFound)
}

func TestListEmptyCatalogMessage(t *testing.T) {
	g := NewGateway(&memStore{})

	result, err := g.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	require.False(t, result.HasInventory)
	require.Contains(t, result.Message, "No products available in inventory")
}

func TestCreateRequiresNamePriceCategory(t *testing.T) {
	g := NewGateway(&memStore{})

	for _, req := range []*models.CreateProductRequest{
		{Price: 99, Category: "Casual"},
		{Name: "Kurta", Category: "Casual"},
		{Name: "Kurta", Price: 99},
	} {
		_, err := g.Create(context.Background(), req)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestCreateDerivesStockFlagAndTags(t *testing.T) {
	store := &memStore{}
	g := NewGateway(store)

	product, err := g.Create(context.Background(), &models.CreateProductRequest{
		Name:        "Royal Sherwani",
		Price:       4999,
		Category:    "Traditional",
		Subcategory: "Sherwani",
		Occasion:    []string{"Wedding", ""},
		Color:       []string{"Gold", "gold"},
		StockCount:  4,
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	require.True(t, product.InStock)
	require.Equal(t, []string{"royal sherwani", "traditional", "sherwani", "wedding", "gold"}, product.Tags)

	// explicit tags win over derivation
	product, err = g.Create(context.Background(), &models.CreateProductRequest{
		Name: "Plain Kurta", Price: 999, Category: "Casual", Tags: []string{"basics"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"basics"}, product.Tags)
	require.False(t, product.InStock)
}

func TestUpdateOnlyTouchesSuppliedFields(t *testing.T) {
	store := seedStore()
	g := NewGateway(store)

	stock := 0
	updated, err := g.Update(context.Background(), "1", &models.UpdateProductRequest{StockCount: &stock})
	require.NoError(t, err)
	require.False(t, updated.InStock)
	require.Equal(t, "Silk Saree", updated.Name, "unsupplied fields stay put")

	name := "Banarasi Saree"
	updated, err = g.Update(context.Background(), "1", &models.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Banarasi Saree", updated.Name)
	require.Contains(t, updated.Tags, "banarasi saree", "tags re-derived from merged fields")

	_, err = g.Update(context.Background(), "missing", &models.UpdateProductRequest{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSignalsNotFound(t *testing.T) {
	g := NewGateway(seedStore())

	require.NoError(t, g.Delete(context.Background(), "2"))
	require.ErrorIs(t, g.Delete(context.Background(), "2"), ErrNotFound)
}
