package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// maxResponseBytes bounds a single upstream response body.
const maxResponseBytes = 8 << 20

// ErrDecode marks a 2xx response whose body is not valid JSON.
var ErrDecode = errors.New("decode upstream response")

// HTTPError is a non-2xx upstream response. Message carries the API's
// error.message field when the body had one.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("Request failed (%d).", e.StatusCode)
	if e.Message != "" {
		msg += " " + e.Message
	}
	return msg
}

// Fetcher issues a GET against rawURL and decodes the JSON body into out.
type Fetcher interface {
	FetchJSON(ctx context.Context, rawURL string, out any) error
}

// HTTPFetcher is the production Fetcher. It never retries: one failed
// request fails the whole load.
type HTTPFetcher struct {
	client  *http.Client
	limiter *rate.Limiter // nil = unlimited
}

// NewHTTPFetcher creates a fetcher. perSecond <= 0 disables rate limiting.
func NewHTTPFetcher(client *http.Client, perSecond float64, burst int) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	f := &HTTPFetcher{client: client}
	if perSecond > 0 {
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return f
}

// FetchJSON implements Fetcher.
func (f *HTTPFetcher) FetchJSON(ctx context.Context, rawURL string, out any) error {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}
	IncrUpstreamRequests()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgentBot)

	resp, err := f.client.Do(req)
	if err != nil {
		IncrUpstreamErrors()
		return fmt.Errorf("youtube data API: %w", err)
	}
	defer resp.Body.Close()

	// Read the whole body first so error payloads can be inspected.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		IncrUpstreamErrors()
		return fmt.Errorf("read youtube data API response: %w", err)
	}

	if err := DecodeResponse(resp.StatusCode, body, out); err != nil {
		IncrUpstreamErrors()
		slog.Debug("youtube data API request failed",
			slog.Int("status", resp.StatusCode), slog.Any("error", err))
		return err
	}
	return nil
}

// DecodeResponse applies the upstream status/body contract: non-2xx becomes
// *HTTPError, an unparseable 2xx body wraps ErrDecode.
func DecodeResponse(status int, body []byte, out any) error {
	if status < 200 || status > 299 {
		return &HTTPError{StatusCode: status, Message: upstreamMessage(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

type apiErrorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// upstreamMessage extracts error.message, or "" when the body lacks one.
func upstreamMessage(body []byte) string {
	var eb apiErrorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error == nil {
		return ""
	}
	return eb.Error.Message
}
