package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry in the products collection. The in_stock flag is
// always derived from stock_count by the writers; readers may trust it.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	Image       string    `json:"image" bson:"image"`
	Category    string    `json:"category" bson:"category" validate:"required"`
	Subcategory string    `json:"subcategory" bson:"subcategory"`
	Rating      float64   `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Reviews     int       `json:"reviews" bson:"reviews" validate:"gte=0"`
	Occasion    []string  `json:"occasion" bson:"occasion"`
	Color       []string  `json:"color" bson:"color"`
	Size        []string  `json:"size" bson:"size"`
	InStock     bool      `json:"in_stock" bson:"in_stock"`
	StockCount  int       `json:"stock_count" bson:"stock_count" validate:"gte=0"`
	Tags        []string  `json:"tags" bson:"tags"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// CreateProductRequest is the admin panel's product form payload.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Occasion    []string `json:"occasion"`
	Color       []string `json:"color"`
	Size        []string `json:"size"`
	StockCount  int      `json:"stockCount"`
	Tags        []string `json:"tags"`
}

// DeriveTags builds the search tags from the descriptive fields: name,
// category, subcategory, occasions and colors, lower-cased, blanks dropped,
// duplicates removed.
func DeriveTags(name, category, subcategory string, occasion, color []string) []string {
	raw := []string{name, category, subcategory}
	raw = append(raw, occasion...)
	raw = append(raw, color...)

	seen := make(map[string]bool, len(raw))
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

func (req *CreateProductRequest) ToProduct() *Product {
	image := req.Image
	if image == "" {
		image = "/placeholder.svg?height=200&width=200"
	}
	rating := req.Rating
	if rating == 0 {
		rating = 4.0
	}
	tags := req.Tags
	if len(tags) == 0 {
		tags = DeriveTags(req.Name, req.Category, req.Subcategory, req.Occasion, req.Color)
	}

	product := &Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       image,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Rating:      rating,
		Reviews:     req.Reviews,
		Occasion:    req.Occasion,
		Color:       req.Color,
		Size:        req.Size,
		StockCount:  req.StockCount,
		InStock:     req.StockCount > 0,
		Tags:        tags,
	}
	if product.Occasion == nil {
		product.Occasion = []string{}
	}
	if product.Color == nil {
		product.Color = []string{}
	}
	if product.Size == nil {
		product.Size = []string{}
	}
	product.SetTimestamps()
	return product
}

// UpdateProductRequest carries a partial edit. Pointer fields distinguish
// "not supplied" from zero values so an update never resurrects a field the
// caller did not send.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Occasion    []string `json:"occasion"`
	Color       []string `json:"color"`
	Size        []string `json:"size"`
	StockCount  *int     `json:"stockCount"`
	Tags        []string `json:"tags"`
}
