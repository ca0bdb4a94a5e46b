package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"madhurfashion.in/storefront/pkg/models"
)

func stocked(name, description, category string, tags ...string) *models.Product {
	return &models.Product{
		Name:        name,
		Description: description,
		Category:    category,
		Tags:        tags,
		InStock:     true,
		StockCount:  5,
	}
}

func TestEmptyInventoryIsReportedDistinctly(t *testing.T) {
	resp := Recommend("wedding", nil)
	require.False(t, resp.HasInventory)
	require.False(t, resp.HasRecommendations)
	require.Empty(t, resp.Products)

	// out-of-stock products count as no inventory
	soldOut := &models.Product{Name: "Sherwani", InStock: false, StockCount: 0}
	resp = Recommend("wedding", []*models.Product{soldOut})
	require.False(t, resp.HasInventory)
	require.Empty(t, resp.Products)
}

func TestMatchingIsCaseInsensitiveSubstringAcrossFields(t *testing.T) {
	catalog := []*models.Product{
		stocked("Royal Sherwani", "", "Traditional"),
		stocked("Plain Shirt", "perfect for a WEDDING reception", "Casual"),
		stocked("Blue Jeans", "", "wedding wear"),
		stocked("Black Tux", "", "Formal", "wedding", "party"),
		stocked("Cotton Saree", "everyday drape", "Traditional"),
	}

	resp := Recommend("Wedding", catalog)
	require.True(t, resp.MatchedQuery)
	require.Len(t, resp.Products, 3)
	for _, p := range resp.Products {
		require.NotEqual(t, "Royal Sherwani", p.Name)
		require.NotEqual(t, "Cotton Saree", p.Name)
	}
}

func TestMatchesAreCappedAtSixInCatalogOrder(t *testing.T) {
	var catalog []*models.Product
	for i := 0; i < 10; i++ {
		catalog = append(catalog, stocked(fmt.Sprintf("Wedding Kurta %d", i), "", "Traditional"))
	}

	resp := Recommend("wedding", catalog)
	require.Len(t, resp.Products, 6)
	require.Equal(t, 6, resp.TotalFound)
	require.Equal(t, "Wedding Kurta 0", resp.Products[0].Name)
	require.Equal(t, "Wedding Kurta 5", resp.Products[5].Name)
}

func TestZeroMatchesFallsBackToGeneralSelection(t *testing.T) {
	var catalog []*models.Product
	for i := 0; i < 8; i++ {
		catalog = append(catalog, stocked(fmt.Sprintf("Kurta %d", i), "", "Traditional"))
	}

	resp := Recommend("spacesuit", catalog)
	require.True(t, resp.HasInventory)
	require.True(t, resp.HasRecommendations)
	require.False(t, resp.MatchedQuery, "fallback must be flagged as a general selection")
	require.Len(t, resp.Products, 6)

	// smaller catalogs return whatever is there
	resp = Recommend("spacesuit", catalog[:2])
	require.Len(t, resp.Products, 2)
}
