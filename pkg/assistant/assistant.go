// Package assistant renders one user turn of the richer assistant surface:
// product recommendations and the stylist reply are fetched concurrently and
// joined, each behind its own error boundary.
package assistant

import (
	"context"

	"golang.org/x/sync/errgroup"

	"madhurfashion.in/storefront/pkg/models"
	"madhurfashion.in/storefront/pkg/recommend"
)

// ProductSource supplies the candidate catalog (catalog.Store in production).
type ProductSource interface {
	All(ctx context.Context) ([]*models.Product, error)
}

// Responder is the chat gateway contract (ai.Stylist in production).
type Responder interface {
	Respond(ctx context.Context, message, language string, history []models.ConversationTurn) (string, bool)
}

type Turn struct {
	Reply           string            `json:"reply"`
	UsedFallback    bool              `json:"usedFallback"`
	Products        []*models.Product `json:"products"`
	TotalFound      int               `json:"totalFound"`
	HasInventory    bool              `json:"hasInventory"`
	MatchedQuery    bool              `json:"matchedQuery"`
	ProductsMessage string            `json:"productsMessage"`
}

type Assistant struct {
	products ProductSource
	chat     Responder
}

func New(products ProductSource, chat Responder) *Assistant {
	return &Assistant{products: products, chat: chat}
}

// HandleTurn fans out to the matcher and the chat gateway and joins both.
// Neither side returns an error into the group: a catalog failure degrades
// to the matcher's no-inventory response and the chat gateway already falls
// back internally, so one side failing never invalidates the other.
func (a *Assistant) HandleTurn(ctx context.Context, message, language string, history []models.ConversationTurn) *Turn {
	turn := &Turn{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		catalog, err := a.products.All(gctx)
		if err != nil {
			catalog = nil
		}
		recs := recommend.Recommend(message, catalog)
		turn.Products = recs.Products
		turn.TotalFound = recs.TotalFound
		turn.HasInventory = recs.HasInventory
		turn.MatchedQuery = recs.MatchedQuery
		turn.ProductsMessage = recs.Message
		return nil
	})

	g.Go(func() error {
		turn.Reply, turn.UsedFallback = a.chat.Respond(gctx, message, language, history)
		return nil
	})

	_ = g.Wait() // both sides always return nil
	return turn
}
