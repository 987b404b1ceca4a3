package ezid

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Credentials holds the registry account used to authenticate writes.
type Credentials struct {
	Username string
	Password string
}

// Response is the transport-level result of a registry request. The client
// only inspects the textual body, plus the status code and Location header
// for the resolver existence check.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// Transport performs the HTTP round trips. It is the replaceable I/O
// boundary of this package: implementations own timeouts and cancellation,
// the client owns protocol interpretation.
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
	Post(ctx context.Context, url string, creds Credentials, headers map[string]string, body string) (*Response, error)
}

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "doikit",
		Subsystem: "transport",
		Name:      "requests_total",
		Help:      "Registry HTTP requests by method and outcome.",
	}, []string{"method", "outcome"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "doikit",
		Subsystem: "transport",
		Name:      "request_duration_seconds",
		Help:      "Registry HTTP request latency in seconds.",
	})
)

const defaultTimeout = 30 * time.Second

// HTTPTransport is the production Transport on net/http. Redirects are never
// followed: the resolver existence check must observe the 303 itself, and
// the registry API does not redirect.
type HTTPTransport struct {
	client *http.Client
	logger *slog.Logger
}

// NewHTTPTransport creates an HTTP transport. A zero timeout uses the
// default; a nil logger uses slog.Default.
func NewHTTPTransport(timeout time.Duration, logger *slog.Logger) *HTTPTransport {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

// Get performs an unauthenticated GET.
func (t *HTTPTransport) Get(ctx context.Context, url string) (*Response, error) {
	return t.do(ctx, http.MethodGet, url, nil, nil, "")
}

// Post performs an authenticated POST.
func (t *HTTPTransport) Post(ctx context.Context, url string, creds Credentials, headers map[string]string, body string) (*Response, error) {
	return t.do(ctx, http.MethodPost, url, &creds, headers, body)
}

func (t *HTTPTransport) do(ctx context.Context, method, url string, creds *Credentials, headers map[string]string, body string) (*Response, error) {
	requestID := uuid.New().String()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	t.logger.Debug("registry request",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("url", url))

	start := time.Now()
	resp, err := t.client.Do(req)
	requestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		t.logger.Warn("registry request failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}
	requestsTotal.WithLabelValues(method, "ok").Inc()

	t.logger.Debug("registry response",
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Int("body_bytes", len(data)))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(data),
	}, nil
}
