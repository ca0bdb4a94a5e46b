// Package recommend selects products for the assistant by coarse text
// containment over the in-stock catalog. No fuzzy or semantic matching.
package recommend

import (
	"fmt"
	"strings"

	"madhurfashion.in/storefront/pkg/models"
)

const maxRecommendations = 6

const noInventoryMessage = "No products available in inventory. Please add products through admin panel."

type Response struct {
	Products           []*models.Product `json:"products"`
	TotalFound         int               `json:"totalFound"`
	HasRecommendations bool              `json:"hasRecommendations"`
	HasInventory       bool              `json:"hasInventory"`
	MatchedQuery       bool              `json:"matchedQuery"`
	Message            string            `json:"message"`
}

func matches(p *models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Recommend ranks nothing: matches come back in catalog order, capped at 6.
// Zero matches falls back to the first 6 in-stock products with MatchedQuery
// false so the caller can say "showing general selection". An empty in-stock
// set is reported distinctly through HasInventory.
func Recommend(query string, products []*models.Product) *Response {
	inStock := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if p.InStock && p.StockCount > 0 {
			inStock = append(inStock, p)
		}
	}

	if len(inStock) == 0 {
		return &Response{
			Products:     []*models.Product{},
			HasInventory: false,
			Message:      noInventoryMessage,
		}
	}

	lowered := strings.ToLower(query)
	matched := make([]*models.Product, 0, maxRecommendations)
	for _, p := range inStock {
		if matches(p, lowered) {
			matched = append(matched, p)
		}
	}

	matchedQuery := len(matched) > 0
	selection := matched
	if !matchedQuery {
		selection = inStock
	}
	if len(selection) > maxRecommendations {
		selection = selection[:maxRecommendations]
	}

	return &Response{
		Products:           selection,
		TotalFound:         len(selection),
		HasRecommendations: true,
		HasInventory:       true,
		MatchedQuery:       matchedQuery,
		Message:            fmt.Sprintf("Found %d recommendations for: %s", len(selection), query),
	}
}
