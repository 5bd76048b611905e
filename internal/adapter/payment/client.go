package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// ErrOperationNotFound indicates the gateway doesn't know the operation.
var ErrOperationNotFound = errors.New("payment operation not found")

// TooManyRequestsError represents rate limiting signal from the gateway.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes operations against the payment gateway.
type Client interface {
	CreatePayment(ctx context.Context, orderID string, amount int64, purpose string) (*model.PaymentLink, error)
	Status(ctx context.Context, operationID string) (*model.PaymentState, error)
	Refund(ctx context.Context, operationID string, amount int64) error
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type createRequest struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Purpose string `json:"purpose"`
}

type createResponse struct {
	OperationID string `json:"operation_id"`
	URL         string `json:"url"`
}

type statusResponse struct {
	OperationID string `json:"operation_id"`
	Status      string `json:"status"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

// NewHTTPClient creates HTTP gateway client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreatePayment registers a new payment and returns the hosted payment page.
func (c *HTTPClient) CreatePayment(ctx context.Context, orderID string, amount int64, purpose string) (*model.PaymentLink, error) {
	payload, err := json.Marshal(createRequest{OrderID: orderID, Amount: amount, Purpose: purpose})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var data createResponse
		if err := decodeBody(resp.Body, &data); err != nil {
			return nil, err
		}
		return &model.PaymentLink{OperationID: data.OperationID, URL: data.URL}, nil
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		return nil, c.unexpected(resp)
	}
}

// Status queries the gateway for the current state of an operation.
func (c *HTTPClient) Status(ctx context.Context, operationID string) (*model.PaymentState, error) {
	resp, err := c.do(ctx, http.MethodGet, path.Join("/api/payments", operationID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data statusResponse
		if err := decodeBody(resp.Body, &data); err != nil {
			return nil, err
		}
		return &model.PaymentState{OperationID: data.OperationID, Status: model.PaymentStatus(data.Status)}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrOperationNotFound
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		return nil, c.unexpected(resp)
	}
}

// Refund asks the gateway to return part or all of a settled operation.
func (c *HTTPClient) Refund(ctx context.Context, operationID string, amount int64) error {
	payload, err := json.Marshal(refundRequest{Amount: amount})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, path.Join("/api/payments", operationID, "refund"), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return ErrOperationNotFound
	case http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		return c.unexpected(resp)
	}
}

func (c *HTTPClient) do(ctx context.Context, method, endpointPath string, body io.Reader) (*http.Response, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

func (c *HTTPClient) unexpected(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("payment gateway request failed",
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)))
	return fmt.Errorf("payment gateway error: %s", resp.Status)
}

func decodeBody(r io.Reader, v any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
