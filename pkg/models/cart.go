package models

// Cart models for the Redis session-backed cart

// CartLineItem is one cart entry. Two entries never share the same
// (product id, size, color) identity; adding an existing identity merges by
// incrementing quantity.
type CartLineItem struct {
	ProductID string  `json:"id" redis:"product_id"`
	Name      string  `json:"name" redis:"name"`
	Price     float64 `json:"price" redis:"price"`
	Quantity  int     `json:"quantity" redis:"quantity"`
	Image     string  `json:"image,omitempty" redis:"image"`
	Size      string  `json:"size,omitempty" redis:"size"`
	Color     string  `json:"color,omitempty" redis:"color"`
}

// IdentityKey returns the merge key for the line item.
func (i CartLineItem) IdentityKey() string {
	return CartIdentityKey(i.ProductID, i.Size, i.Color)
}

func CartIdentityKey(productID, size, color string) string {
	return productID + "|" + size + "|" + color
}

type AddToCartRequest struct {
	Product CartLineItem `json:"product" binding:"required"`
	Size    string       `json:"size"`
	Color   string       `json:"color"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type RemoveCartItemRequest struct {
	ProductID string `json:"id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}
