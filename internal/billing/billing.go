// Package billing abstracts the payment provider. Only a mock implementation
// exists: checkout never leaves the process, but the identifiers it issues
// follow the provider's shape so the rest of the system treats it as real.
package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CheckoutSession is the result of starting a subscription purchase.
type CheckoutSession struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	SubscriptionID string `json:"subscriptionId"`
	PriceID        string `json:"priceId"`
}

// Provider creates checkout sessions for a customer and price.
type Provider interface {
	// EnsureCustomer returns the provider customer id for a user, creating
	// one when existingID is empty.
	EnsureCustomer(ctx context.Context, existingID, email string) (string, error)
	// CreateCheckoutSession starts a subscription checkout for the price.
	CreateCheckoutSession(ctx context.Context, customerID, priceID string) (*CheckoutSession, error)
}

// MockProvider issues provider-shaped identifiers without any network calls.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) EnsureCustomer(_ context.Context, existingID, email string) (string, error) {
	if existingID != "" {
		return existingID, nil
	}
	if email == "" {
		return "", fmt.Errorf("cannot create customer without email")
	}
	return "cus_" + opaqueID(), nil
}

func (p *MockProvider) CreateCheckoutSession(_ context.Context, customerID, priceID string) (*CheckoutSession, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if priceID == "" {
		return nil, fmt.Errorf("price id is required")
	}

	return &CheckoutSession{
		ID:             "cs_" + opaqueID(),
		CustomerID:     customerID,
		SubscriptionID: "sub_" + opaqueID(),
		PriceID:        priceID,
	}, nil
}

func opaqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
