package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"codecircle/pkg/logger"
)

// PaymentIntentRequest describes the charge the membership checkout needs.
type PaymentIntentRequest struct {
	AmountInCents int64
	Currency      string
	PlanID        string
	UserEmail     string
}

// PaymentIntentResponse carries what the card form on the client needs to
// confirm the charge.
type PaymentIntentResponse struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentGatewayService is the external payment-processor boundary.
type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResponse, error)
}

// StripePaymentService implements PaymentGatewayService over the Stripe
// PaymentIntents HTTP API.
type StripePaymentService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResponse, error) {
	if req.AmountInCents <= 0 {
		return nil, fmt.Errorf("invalid amount: %d", req.AmountInCents)
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountInCents, 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("payment_method_types[]", "card")
	form.Set("metadata[planId]", req.PlanID)
	if req.UserEmail != "" {
		form.Set("receipt_email", req.UserEmail)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	var intent stripeIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		if intent.Error != nil {
			logger.Error("Stripe API error: %s", intent.Error.Message)
			return nil, fmt.Errorf("stripe API error: %s", intent.Error.Message)
		}
		return nil, fmt.Errorf("stripe API error: status %d", resp.StatusCode)
	}

	logger.Info("Stripe payment intent created: %s (plan %s)", intent.ID, req.PlanID)

	return &PaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}
