package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/metrics"
	"assessment_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	DefaultTimeout = 30 * time.Second

	createOrderPath = "/api/payments/create-order"
	completePath    = "/api/payments/complete"
	verifyPath      = "/api/payments/verify"
	pricingPath     = "/api/pricing"
	healthPath      = "/health"
)

var ErrIncompleteCatalog = errors.New("pricing catalog is incomplete")

// envelope is the backend's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (e envelope) reason() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// PaymentAPIClient talks to the backend order service.
type PaymentAPIClient struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

var _ interfaces.IPaymentAPI = (*PaymentAPIClient)(nil)

func NewPaymentAPIClient(baseURL string, timeout time.Duration) *PaymentAPIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PaymentAPIClient{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Content-Type", "application/json"),
		breaker: newCircuitBreaker("payment-api"),
	}
}

func (c *PaymentAPIClient) CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.CreateOrderResponse, error) {
	var out entities.CreateOrderResponse
	if err := c.call(ctx, http.MethodPost, createOrderPath, req, &out, entities.ErrorKindOrderCreationFailed); err != nil {
		return entities.CreateOrderResponse{}, err
	}
	return out, nil
}

func (c *PaymentAPIClient) CompletePayment(ctx context.Context, req entities.PaymentCompletionRequest) error {
	return c.call(ctx, http.MethodPost, completePath, req, nil, entities.ErrorKindPaymentFailed)
}

func (c *PaymentAPIClient) VerifyPayment(ctx context.Context, req entities.VerifyPaymentRequest) (entities.VerifyPaymentResponse, error) {
	var out entities.VerifyPaymentResponse
	if err := c.call(ctx, http.MethodPost, verifyPath, req, &out, entities.ErrorKindPaymentFailed); err != nil {
		return entities.VerifyPaymentResponse{}, err
	}
	return out, nil
}

func (c *PaymentAPIClient) GetPricing(ctx context.Context) (entities.PricingCatalog, error) {
	var out entities.PricingCatalog
	if err := c.call(ctx, http.MethodGet, pricingPath, nil, &out, entities.ErrorKindInvalidData); err != nil {
		return entities.PricingCatalog{}, err
	}
	if !out.Complete() {
		return entities.PricingCatalog{}, entities.NewPaymentError(entities.ErrorKindInvalidData, "", ErrIncompleteCatalog)
	}
	return out, nil
}

func (c *PaymentAPIClient) HealthCheck(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
	}
	if !resp.IsSuccess() {
		return entities.NewPaymentError(entities.ErrorKindNetwork, "", fmt.Errorf("health check returned %d", resp.StatusCode()))
	}
	return nil
}

// call runs one request through the breaker. Only transport and server class
// failures are reported to the breaker; the rest travel back in the result.
func (c *PaymentAPIClient) call(ctx context.Context, method, path string, body, out any, failKind entities.ErrorKind) error {
	fields := log.Fields{"method": method, "path": path}
	start := time.Now()

	res, err := c.breaker.Execute(func() (any, error) {
		r := c.http.R().SetContext(ctx)
		if token := entities.ClientInfoFromContext(ctx).IDToken; token != "" {
			r.SetAuthToken(token)
		}
		if body != nil {
			r.SetBody(body)
		}
		resp, err := r.Execute(method, path)
		if err != nil {
			return nil, entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
		}
		if serverClass(resp.StatusCode()) {
			return nil, entities.NewPaymentError(entities.ErrorKindNetwork, "", fmt.Errorf("backend returned %d", resp.StatusCode()))
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
		}
		metrics.CircuitBreakerFailures.WithLabelValues(metrics.ServiceName, c.breaker.Name()).Inc()
		log.WithFields(fields).WithError(err).Error("[api][client] request failed")
		return err
	}

	resp := res.(*resty.Response)
	fields["status"] = resp.StatusCode()
	fields["elapsed"] = time.Since(start)

	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if kind, ok := statusKind(resp.StatusCode()); ok {
		err := entities.NewPaymentError(kind, env.reason(), fmt.Errorf("backend returned %d", resp.StatusCode()))
		log.WithFields(fields).WithError(err).Warn("[api][client] request rejected")
		return err
	}
	if !resp.IsSuccess() {
		err := entities.NewPaymentError(failKind, env.reason(), fmt.Errorf("backend returned %d", resp.StatusCode()))
		log.WithFields(fields).WithError(err).Warn("[api][client] request rejected")
		return err
	}
	if decodeErr != nil {
		return entities.NewPaymentError(failKind, "malformed backend response", decodeErr)
	}
	if !env.Success {
		err := entities.NewPaymentError(failKind, env.reason(), nil)
		log.WithFields(fields).WithError(err).Warn("[api][client] backend reported failure")
		return err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return entities.NewPaymentError(failKind, "malformed backend response", err)
		}
	}
	log.WithFields(fields).Debug("[api][client] request ok")
	return nil
}

// serverClass statuses are treated as transient and count against the breaker.
func serverClass(status int) bool {
	return status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= 500
}

func statusKind(status int) (entities.ErrorKind, bool) {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return entities.ErrorKindAuthenticationRequired, true
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return entities.ErrorKindInvalidData, true
	}
	return "", false
}
