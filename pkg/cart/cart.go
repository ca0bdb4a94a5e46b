// Package cart implements the session shopping cart: a list of line items
// keyed by (product id, size, color), persisted through a Repository after
// every mutation.
package cart

import (
	"context"

	"madhurfashion.in/storefront/pkg/models"
)

// Repository persists a session's cart snapshot. Load returns an empty slice
// for an unknown session.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartLineItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartLineItem) error
	Clear(ctx context.Context, sessionID string) error
}

type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Total sums unitPrice x quantity over the items.
func Total(items []models.CartLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities, for the cart badge.
func ItemCount(items []models.CartLineItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func findIndex(items []models.CartLineItem, key string) int {
	for i, item := range items {
		if item.IdentityKey() == key {
			return i
		}
	}
	return -1
}

// addItem merges by identity key: an existing entry gains quantity 1,
// otherwise the product is appended as a new line item with quantity 1.
func addItem(items []models.CartLineItem, product models.CartLineItem, size, color string) []models.CartLineItem {
	product.Size = size
	product.Color = color

	if i := findIndex(items, product.IdentityKey()); i > -1 {
		items[i].Quantity++
		return items
	}
	product.Quantity = 1
	return append(items, product)
}

func removeItem(items []models.CartLineItem, productID, size, color string) []models.CartLineItem {
	key := models.CartIdentityKey(productID, size, color)
	kept := items[:0]
	for _, item := range items {
		if item.IdentityKey() != key {
			kept = append(kept, item)
		}
	}
	return kept
}

// setQuantity replaces the quantity of a matching entry. A quantity of zero
// or less removes the entry; a missing entry is left alone, never created.
func setQuantity(items []models.CartLineItem, productID string, quantity int, size, color string) []models.CartLineItem {
	i := findIndex(items, models.CartIdentityKey(productID, size, color))
	if i == -1 {
		return items
	}
	if quantity <= 0 {
		return removeItem(items, productID, size, color)
	}
	items[i].Quantity = quantity
	return items
}

// Items returns the current snapshot for the session.
func (s *Store) Items(ctx context.Context, sessionID string) ([]models.CartLineItem, error) {
	return s.repo.Load(ctx, sessionID)
}

func (s *Store) Add(ctx context.Context, sessionID string, product models.CartLineItem, size, color string) ([]models.CartLineItem, error) {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = addItem(items, product, size, color)
	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Remove(ctx context.Context, sessionID, productID, size, color string) ([]models.CartLineItem, error) {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = removeItem(items, productID, size, color)
	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SetQuantity(ctx context.Context, sessionID, productID string, quantity int, size, color string) ([]models.CartLineItem, error) {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = setQuantity(items, productID, quantity, size, color)
	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}
