package app

import (
	"context"
	"log/slog"

	"github.com/yayincibotu/twitchviewer/internal/billing"
	"github.com/yayincibotu/twitchviewer/internal/domain"
	"github.com/yayincibotu/twitchviewer/internal/metrics"
)

// CreateCheckout starts a subscription checkout for the package behind the
// given provider price id. The user must have a verified email. The provider
// customer and subscription ids are persisted on the user, so repeat
// checkouts reuse the customer.
func (s *Service) CreateCheckout(ctx context.Context, userID int64, priceID string) (*billing.CheckoutSession, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.EmailVerified {
		metrics.CheckoutSessionsTotal.WithLabelValues("unverified").Inc()
		return nil, ErrEmailNotVerified
	}

	pkg, err := s.repos.Packages.GetByStripePriceID(ctx, priceID)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("unknown_package").Inc()
		return nil, err
	}

	customerID, err := s.billing.EnsureCustomer(ctx, user.StripeCustomerID, user.Email)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("provider_error").Inc()
		return nil, err
	}

	session, err := s.billing.CreateCheckoutSession(ctx, customerID, pkg.StripePriceID)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("provider_error").Inc()
		return nil, err
	}

	_, err = s.repos.Users.Update(ctx, user.ID, domain.UserPatch{
		StripeCustomerID:     &session.CustomerID,
		StripeSubscriptionID: &session.SubscriptionID,
	})
	if err != nil {
		return nil, err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	slog.InfoContext(ctx, "checkout session created",
		"user_id", user.ID, "package_id", pkg.ID, "session_id", session.ID)
	return session, nil
}
