package router

import (
	"context"
	"fmt"
	"log"

	"madhurfashion.in/storefront/pkg/ai"
	"madhurfashion.in/storefront/pkg/assistant"
	"madhurfashion.in/storefront/pkg/auth"
	"madhurfashion.in/storefront/pkg/cart"
	"madhurfashion.in/storefront/pkg/catalog"
	"madhurfashion.in/storefront/pkg/checkout"
	"madhurfashion.in/storefront/pkg/global"
	"madhurfashion.in/storefront/pkg/mongo"
	"madhurfashion.in/storefront/pkg/payment"
	"madhurfashion.in/storefront/pkg/redis"
)

var (
	products      catalog.Store
	gateway       *catalog.Gateway
	carts         *cart.Store
	orchestrator  *checkout.Orchestrator
	stylist       *ai.Stylist
	shopAssistant *assistant.Assistant
	staffService  *auth.Service
)

// disabledPayments stands in when the payment service is not configured so
// checkout degrades to an error message instead of a nil dereference.
type disabledPayments struct{}

func (disabledPayments) CreateSession(context.Context, payment.SessionRequest) (string, error) {
	return "", fmt.Errorf("Payment service is not configured")
}

// InitDependencies wires the production implementations behind the handlers.
func InitDependencies() {
	store := mongo.NewProductStore()
	products = store
	gateway = catalog.NewGateway(store)

	carts = cart.NewStore(redis.NewCartRepository())

	var payments checkout.SessionCreator
	if client, err := payment.NewClient(); err != nil {
		log.Printf("Payment service disabled: %v", err)
		payments = disabledPayments{}
	} else {
		payments = client
	}

	site := global.GetEnvOrDefault("SITE_URL", "http://localhost:3000")
	orchestrator = checkout.NewOrchestrator(payments, carts,
		site+"/cart?status=success",
		site+"/cart?status=cancel",
	)

	stylist = ai.NewStylist()
	shopAssistant = assistant.New(store, stylist)

	staffService = auth.NewService(mongo.NewStaffStore())
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	if err := staffService.SeedOwner(ctx); err != nil {
		log.Printf("Warning: failed to seed owner account: %v", err)
	}
}
