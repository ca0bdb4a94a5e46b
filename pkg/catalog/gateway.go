// Package catalog is the read/write facade over the hosted product store.
// All store errors are surfaced to callers as ordinary errors; HTTP handlers
// translate them into structured failure responses.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"madhurfashion.in/storefront/pkg/models"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrMissingFields = errors.New("missing required fields: name, price, category")
)

const (
	defaultListLimit = 50

	noInventoryMessage = "No products available in inventory. Please add products through admin panel."
)

// Store is the persistence contract the gateway drives. The production
// implementation lives in pkg/mongo; tests use an in-memory store.
type Store interface {
	All(ctx context.Context) ([]*models.Product, error)
	ByCategory(ctx context.Context, category string) ([]*models.Product, error)
	Search(ctx context.Context, term string) ([]*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// ListFilters selects and caps the grid listing. Limit is honored as given
// when zero or positive, so an explicit zero yields an empty page; a negative
// limit means the default cap.
type ListFilters struct {
	Category    string
	Search      string
	InStockOnly bool
	Limit       int
}

type ListResult struct {
	Products     []*models.Product
	TotalFound   int
	HasInventory bool
	Message      string
}

type Gateway struct {
	store Store
}

func NewGateway(store Store) *Gateway {
	return &Gateway{store: store}
}

// List fetches products for the grid. Search takes precedence over category;
// a category of "all" means no category filter. InStockOnly and Limit are
// applied as a final in-memory pass over the store's newest-first ordering.
func (g *Gateway) List(ctx context.Context, filters ListFilters) (*ListResult, error) {
	var (
		products []*models.Product
		err      error
	)

	switch {
	case filters.Search != "":
		products, err = g.store.Search(ctx, filters.Search)
	case filters.Category != "" && filters.Category != "all":
		products, err = g.store.ByCategory(ctx, filters.Category)
	default:
		products, err = g.store.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filters.InStockOnly {
		filtered := make([]*models.Product, 0, len(products))
		for _, p := range products {
			if p.InStock && p.StockCount > 0 {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	limit := filters.Limit
	if limit < 0 {
		limit = defaultListLimit
	}
	if len(products) > limit {
		products = products[:limit]
	}

	result := &ListResult{
		Products:     products,
		TotalFound:   len(products),
		HasInventory: len(products) > 0,
	}
	if result.HasInventory {
		result.Message = fmt.Sprintf("Found %d products", result.TotalFound)
	} else {
		result.Message = noInventoryMessage
	}
	return result, nil
}

// Create validates the required fields, derives in_stock and tags and inserts
// the product.
func (g *Gateway) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Price <= 0 || req.Category == "" {
		return nil, ErrMissingFields
	}

	product := req.ToProduct()
	if err := g.store.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a single product by id.
func (g *Gateway) Get(ctx context.Context, id string) (*models.Product, error) {
	return g.store.Get(ctx, id)
}

// Update applies a partial edit. Only supplied fields are written; in_stock
// is recomputed when the stock count changes, and tags are re-derived from
// the merged descriptive fields unless the caller sent explicit tags.
func (g *Gateway) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	existing, err := g.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	fields := map[string]interface{}{}

	descriptiveChanged := false
	if req.Name != nil {
		merged.Name = *req.Name
		fields["name"] = *req.Name
		descriptiveChanged = true
	}
	if req.Description != nil {
		merged.Description = *req.Description
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Category != nil {
		merged.Category = *req.Category
		fields["category"] = *req.Category
		descriptiveChanged = true
	}
	if req.Subcategory != nil {
		merged.Subcategory = *req.Subcategory
		fields["subcategory"] = *req.Subcategory
		descriptiveChanged = true
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Reviews != nil {
		fields["reviews"] = *req.Reviews
	}
	if req.Occasion != nil {
		merged.Occasion = req.Occasion
		fields["occasion"] = req.Occasion
		descriptiveChanged = true
	}
	if req.Color != nil {
		merged.Color = req.Color
		fields["color"] = req.Color
		descriptiveChanged = true
	}
	if req.Size != nil {
		fields["size"] = req.Size
	}
	if req.StockCount != nil {
		fields["stock_count"] = *req.StockCount
		fields["in_stock"] = *req.StockCount > 0
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	} else if descriptiveChanged {
		fields["tags"] = models.DeriveTags(merged.Name, merged.Category, merged.Subcategory, merged.Occasion, merged.Color)
	}

	if len(fields) == 0 {
		return existing, nil
	}
	fields["updated_at"] = time.Now()

	return g.store.Update(ctx, id, fields)
}

// Delete removes a product, reporting not-found rather than silently
// succeeding on a missing id.
func (g *Gateway) Delete(ctx context.Context, id string) error {
	return g.store.Delete(ctx, id)
}
