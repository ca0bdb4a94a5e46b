package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveTags(t *testing.T) {
	tags := DeriveTags("Royal Sherwani", "Traditional", "", []string{"Wedding", "Festive", ""}, []string{"Gold", "gold"})
	require.Equal(t, []string{"royal sherwani", "traditional", "wedding", "festive", "gold"}, tags)
}

func TestToProductDefaults(t *testing.T) {
	req := &CreateProductRequest{Name: "Kurta", Price: 999, Category: "Casual"}
	product := req.ToProduct()

	require.NotEmpty(t, product.ID)
	require.Equal(t, "/placeholder.svg?height=200&width=200", product.Image)
	require.Equal(t, 4.0, product.Rating)
	require.False(t, product.InStock)
	require.NotNil(t, product.Occasion)
	require.NotNil(t, product.Size)
	require.False(t, product.CreatedAt.IsZero())
	require.Equal(t, []string{"kurta", "casual"}, product.Tags)
}

func TestCartIdentityKey(t *testing.T) {
	a := CartLineItem{ProductID: "A", Size: "M", Color: "red"}
	b := CartLineItem{ProductID: "A", Size: "M", Color: "red"}
	c := CartLineItem{ProductID: "A", Size: "L", Color: "red"}

	require.Equal(t, a.IdentityKey(), b.IdentityKey())
	require.NotEqual(t, a.IdentityKey(), c.IdentityKey())
}
