// Package checkout orchestrates a single checkout attempt over the cart:
// validate, then either confirm a showroom pickup locally or create a remote
// payment session for delivery.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"

	"madhurfashion.in/storefront/pkg/models"
	"madhurfashion.in/storefront/pkg/payment"
)

type State string

const (
	StateIdle                  State = "idle"
	StateValidating            State = "validating"
	StatePickupConfirmed       State = "pickup_confirmed"
	StateAwaitingRemoteSession State = "awaiting_remote_session"
	StateRedirected            State = "redirected"
	StateFailed                State = "failed"
)

type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "pickup"
	ModeDelivery FulfillmentMode = "delivery"
)

const (
	PickupConfirmedMessage  = "Order confirmed for showroom pickup! Payment will be collected at the showroom. Thank you!"
	OrderPlacedMessage      = "Your order was placed successfully! You will receive a confirmation email shortly."
	PaymentCancelledMessage = "Your payment was cancelled. You can try again or choose showroom pickup."
)

var (
	ErrEmptyCart          = errors.New("Your cart is empty!")
	ErrMissingAddress     = errors.New("Please enter a delivery address.")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// SessionCreator is the payment-session contract (pkg/payment in production).
type SessionCreator interface {
	CreateSession(ctx context.Context, session payment.SessionRequest) (string, error)
}

// CartAccess is the slice of the cart store the orchestrator needs.
type CartAccess interface {
	Items(ctx context.Context, sessionID string) ([]models.CartLineItem, error)
	Clear(ctx context.Context, sessionID string) error
}

type Request struct {
	SessionID       string
	Mode            FulfillmentMode
	DeliveryAddress string
}

type Result struct {
	State       State
	Message     string
	RedirectURL string
}

type Orchestrator struct {
	payments   SessionCreator
	carts      CartAccess
	successURL string
	cancelURL  string

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewOrchestrator(payments SessionCreator, carts CartAccess, successURL, cancelURL string) *Orchestrator {
	return &Orchestrator{
		payments:   payments,
		carts:      carts,
		successURL: successURL,
		cancelURL:  cancelURL,
		inFlight:   make(map[string]bool),
	}
}

func (o *Orchestrator) begin(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inFlight[sessionID] {
		return false
	}
	o.inFlight[sessionID] = true
	return true
}

func (o *Orchestrator) end(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, sessionID)
}

// Submit runs one checkout attempt. Validation failures and remote failures
// come back as a StateFailed result plus the error; the cart is only cleared
// on a confirmed pickup. A second submit for the same session while one is in
// flight is rejected before any remote call.
func (o *Orchestrator) Submit(ctx context.Context, req Request) (*Result, error) {
	if !o.begin(req.SessionID) {
		return &Result{State: StateFailed}, ErrCheckoutInProgress
	}
	defer o.end(req.SessionID)

	items, err := o.carts.Items(ctx, req.SessionID)
	if err != nil {
		return &Result{State: StateFailed}, err
	}
	if len(items) == 0 {
		return &Result{State: StateFailed}, ErrEmptyCart
	}

	if req.Mode == ModePickup {
		if err := o.carts.Clear(ctx, req.SessionID); err != nil {
			return &Result{State: StateFailed}, err
		}
		return &Result{State: StatePickupConfirmed, Message: PickupConfirmedMessage}, nil
	}

	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return &Result{State: StateFailed}, ErrMissingAddress
	}

	lineItems := make([]payment.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = payment.LineItem{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.Image,
		}
	}

	url, err := o.payments.CreateSession(ctx, payment.SessionRequest{
		LineItems:       lineItems,
		SuccessRedirect: o.successURL,
		CancelRedirect:  o.cancelURL,
		Metadata:        map[string]string{"deliveryAddress": req.DeliveryAddress},
	})
	if err != nil {
		// Remote message goes back to the user verbatim; the cart stays.
		return &Result{State: StateFailed}, err
	}

	// Cart is cleared by the confirmation callback, not here.
	return &Result{State: StateRedirected, RedirectURL: url}, nil
}

// ConfirmResult handles the redirect back from the provider. Success clears
// the cart; cancellation leaves it for another attempt.
func (o *Orchestrator) ConfirmResult(ctx context.Context, sessionID, status string) (string, error) {
	switch status {
	case "success":
		if err := o.carts.Clear(ctx, sessionID); err != nil {
			return "", err
		}
		return OrderPlacedMessage, nil
	case "cancel":
		return PaymentCancelledMessage, nil
	default:
		return "", errors.New("unknown checkout status")
	}
}
