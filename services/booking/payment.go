package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"fitlink/models"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler charges the athlete when a reservation is committed.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler implements PaymentHandler on Stripe PaymentIntents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs the production Stripe handler. The Stripe key
// is set globally in main.
func NewPaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment request: amount must be positive")
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("invalid payment request: currency is required")
	}

	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripeapi.String(strings.ToLower(req.Currency)),
		PaymentMethodTypes: stripeapi.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	status := models.StatusPending
	if pi.Status == stripeapi.PaymentIntentStatusSucceeded {
		status = models.StatusConfirmed
	}

	h.logger.Info("payment intent created",
		zap.String("paymentIntent", pi.ID),
		zap.String("status", string(pi.Status)))

	return &models.Invoice{
		InvoiceID: pi.ID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    status,
	}, nil
}
