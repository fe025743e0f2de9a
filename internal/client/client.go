package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/teacher-dashboard/internal/correlation"
	"github.com/noah-isme/teacher-dashboard/internal/observability"
)

const maxResponseBytes = 4 << 20

// Config defines how the client reaches the quiz backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the quiz backend's teacher API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tracer      trace.Tracer
	logger      zerolog.Logger
	chartSchema *jsonschema.Schema
}

// New builds a client for the given backend.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("teacher api base url is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		tracer:      otel.Tracer("github.com/noah-isme/teacher-dashboard/internal/client"),
		logger:      cfg.Logger.With().Str("component", "teacher_api_client").Logger(),
		chartSchema: compileChartSchema(),
	}, nil
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= http.StatusOK && r.status < http.StatusMultipleChoices
}

// call performs one request and records span, metrics and a debug log line for it.
// A response with any status is returned without error; only transport failures error.
func (c *Client) call(parent context.Context, operation, method, path string, payload interface{}) (resp response, err error) {
	ctx, span := c.tracer.Start(parent, "teacher_api."+operation, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		observability.TeacherAPIDuration().WithLabelValues(operation).Observe(time.Since(start).Seconds())
		outcome := "ok"
		switch {
		case err != nil:
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case !resp.ok():
			outcome = "rejected"
			span.SetStatus(codes.Error, http.StatusText(resp.status))
		}
		span.SetAttributes(attribute.Int("http.status_code", resp.status))
		observability.TeacherAPIRequests().WithLabelValues(operation, outcome).Inc()
	}()

	var body io.Reader
	if payload != nil {
		encoded, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return response{}, fmt.Errorf("%s: encode request: %w", operation, marshalErr)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	correlationID := correlation.FromContext(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	req.Header.Set(correlation.Header, correlationID)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("operation", operation).Str("correlation_id", correlationID).Msg("teacher api request failed")
		return response{}, fmt.Errorf("%s: %w: %w", operation, ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return response{}, fmt.Errorf("%s: read response: %w: %w", operation, ErrUnavailable, err)
	}

	c.logger.Debug().
		Str("operation", operation).
		Str("correlation_id", correlationID).
		Int("status", httpResp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("teacher api request completed")

	return response{status: httpResp.StatusCode, body: raw}, nil
}

// decodeList decodes a JSON array body, treating any non-success status as an error.
func decodeList[T any](operation string, resp response) ([]T, error) {
	if !resp.ok() {
		return nil, statusError(operation, resp)
	}
	items := make([]T, 0)
	if err := json.Unmarshal(resp.body, &items); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", operation, ErrInvalidPayload, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

type outcome struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeOutcome reads a {success, message} style body. An explicit success flag is
// honoured but never overrides a non-success status; without one the status decides.
// A body that does not decode is only an error when the status is not a success.
func decodeOutcome(operation string, resp response) (bool, string, error) {
	var parsed outcome
	if len(bytes.TrimSpace(resp.body)) == 0 || json.Unmarshal(resp.body, &parsed) != nil {
		if !resp.ok() {
			return false, "", statusError(operation, resp)
		}
		return true, "", nil
	}

	message := parsed.Message
	if message == "" {
		message = parsed.Error
	}
	success := resp.ok()
	if parsed.Success != nil {
		success = success && *parsed.Success
	}
	return success, message, nil
}

func statusError(operation string, resp response) error {
	return &StatusError{Operation: operation, Code: resp.status, Message: extractMessage(resp.body)}
}

func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded)
}
