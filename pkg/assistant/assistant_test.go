package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"madhurfashion.in/storefront/pkg/models"
)

type fakeSource struct {
	products []*models.Product
	err      error
}

func (f *fakeSource) All(context.Context) ([]*models.Product, error) {
	return f.products, f.err
}

type fakeResponder struct {
	reply    string
	fallback bool
}

func (f *fakeResponder) Respond(context.Context, string, string, []models.ConversationTurn) (string, bool) {
	return f.reply, f.fallback
}

func TestHandleTurnJoinsBothSides(t *testing.T) {
	source := &fakeSource{products: []*models.Product{
		{Name: "Wedding Sherwani", InStock: true, StockCount: 2},
	}}
	a := New(source, &fakeResponder{reply: "Try a sherwani."})

	turn := a.HandleTurn(context.Background(), "wedding", "en", nil)
	require.Equal(t, "Try a sherwani.", turn.Reply)
	require.False(t, turn.UsedFallback)
	require.True(t, turn.HasInventory)
	require.True(t, turn.MatchedQuery)
	require.Len(t, turn.Products, 1)
}

func TestCatalogFailureDoesNotInvalidateChatReply(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	a := New(source, &fakeResponder{reply: "Stylist still here."})

	turn := a.HandleTurn(context.Background(), "wedding", "en", nil)
	require.Equal(t, "Stylist still here.", turn.Reply)
	require.False(t, turn.HasInventory)
	require.Empty(t, turn.Products)
}

func TestChatFallbackDoesNotBlockRecommendations(t *testing.T) {
	source := &fakeSource{products: []*models.Product{
		{Name: "Silk Saree", InStock: true, StockCount: 1},
	}}
	a := New(source, &fakeResponder{reply: "canned fallback", fallback: true})

	turn := a.HandleTurn(context.Background(), "saree", "en", nil)
	require.True(t, turn.UsedFallback)
	require.Equal(t, "canned fallback", turn.Reply)
	require.True(t, turn.HasInventory)
	require.Len(t, turn.Products, 1)
}
