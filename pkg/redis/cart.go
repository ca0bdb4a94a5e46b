package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisclient "github.com/redis/go-redis/v9"

	"madhurfashion.in/storefront/pkg/models"
)

// CartRepository stores each session's cart as a JSON snapshot under
// cart:{sessionID}. Carts survive restarts and only go away on Clear.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (r *CartRepository) Load(ctx context.Context, sessionID string) ([]models.CartLineItem, error) {
	client := RedisClient()
	defer client.Close()

	snapshot, err := client.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redisclient.Nil) {
		return []models.CartLineItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(snapshot), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart %s: %w", sessionID, err)
	}
	return items, nil
}

func (r *CartRepository) Save(ctx context.Context, sessionID string, items []models.CartLineItem) error {
	client := RedisClient()
	defer client.Close()

	snapshot, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", sessionID, err)
	}

	// 0 expiry: the cart lives until the session clears it
	return client.Set(ctx, cartKey(sessionID), snapshot, 0).Err()
}

func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	client := RedisClient()
	defer client.Close()

	return client.Del(ctx, cartKey(sessionID)).Err()
}
