package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxErrorBody = 64 << 10

// RequestIDHeader is forwarded on every call so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID stores the inbound request id for outbound calls made under ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Client talks to the portal backend, the system of record for requests,
// profiles and notifications.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient creates a client rooted at baseURL (e.g. http://localhost:8080/api).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that authenticates as the given session.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// do performs one round trip and returns the raw body of a 2xx response.
// Transport failures map to ErrRemoteUnavailable; non-2xx answers map to
// ErrRemoteFailure carrying the server's error text as the message.
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s body: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RemoteCallDuration.WithLabelValues(operation, "unavailable").Observe(time.Since(start).Seconds())
		logrus.WithError(err).WithFields(logrus.Fields{
			"operation": operation,
			"requestID": requestID,
		}).Warn("Portal backend unreachable")
		return nil, apperrors.NewCustomError(apperrors.ErrRemoteUnavailable, "").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.RemoteCallDuration.WithLabelValues(operation, "rejected").Observe(time.Since(start).Seconds())
		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"status":    resp.StatusCode,
			"requestID": requestID,
		}).Warn("Portal backend rejected call")
		return nil, apperrors.NewCustomError(apperrors.ErrRemoteFailure, errorText(data)).
			WithStatusCode(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RemoteCallDuration.WithLabelValues(operation, "unavailable").Observe(time.Since(start).Seconds())
		return nil, apperrors.NewCustomError(apperrors.ErrRemoteUnavailable, "").WithCause(err)
	}

	metrics.RemoteCallDuration.WithLabelValues(operation, "ok").Observe(time.Since(start).Seconds())
	return data, nil
}

// errorText extracts a human-readable message from an error body. JSON
// bodies with a "message" or "error" field yield that field; anything else
// is returned trimmed.
func errorText(data []byte) string {
	if len(data) > maxErrorBody {
		data = data[:maxErrorBody]
	}
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, "{") {
		var envelope struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(data, &envelope); err == nil {
			if envelope.Message != "" {
				return envelope.Message
			}
			if envelope.Error != "" {
				return envelope.Error
			}
		}
	}
	return text
}

// decodeList decodes a JSON array body. Empty and null bodies decode to an empty list.
func decodeList[T any](operation string, data []byte) ([]T, error) {
	items := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrRemoteFailure, "").
			WithCause(fmt.Errorf("failed to decode %s response: %w", operation, err))
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
