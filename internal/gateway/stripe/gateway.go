package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parcelhub/internal/entities"
	"parcelhub/internal/service/payment"
	retrierconfig "parcelhub/pkg/retrier"
	"parcelhub/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "stripe"

	defaultCurrency = "usd"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	client    httpDoer
	retrier   retrier
	baseURL   string
	secretKey string
}

func New(client httpDoer, baseURL, secretKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &Gateway{
		client:    client,
		retrier:   backoff_adapter.New(retryConfig),
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
	}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("customer_email", req.CustomerEmail)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.ParcelName)
	// metadata протаскивает посылку и tracking id через шлюз обратно в сверку
	form.Set("metadata[parcelId]", strconv.FormatInt(req.ParcelID, 10))
	form.Set("metadata[parcelName]", req.ParcelName)
	form.Set("metadata[trackingId]", req.TrackingID)

	var session sessionResponse
	err := g.executeWithMetrics(ctx, "CreateCheckoutSession", func(ctx context.Context) error {
		return g.doForm(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session)
	})
	if err != nil {
		return "", fmt.Errorf("gateway stripe, create checkout session: %w", err)
	}

	return session.URL, nil
}

func (g *Gateway) RetrieveSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	var session sessionResponse
	err := g.executeWithMetrics(ctx, "RetrieveSession", func(ctx context.Context) error {
		return g.doForm(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil, &session)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, retrieve session %s: %w", sessionID, err)
	}

	return toDomain(&session), nil
}

func (g *Gateway) doForm(ctx context.Context, method, path string, form url.Values, out *sessionResponse) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return payment.ErrSessionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &statusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("stripe returned status %d", e.Code)
}

// Ретраим только 429 и 5xx; 4xx и ErrSessionNotFound - постоянные.
func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		return false
	}

	switch {
	case statusErr.Code == http.StatusTooManyRequests:
		return true
	case statusErr.Code >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func getOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "error"
}
