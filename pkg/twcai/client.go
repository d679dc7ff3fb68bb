package twcai

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/timeweb-cloud/twcai-go/pkg/api"
	"github.com/timeweb-cloud/twcai-go/pkg/observability"
)

const (
	// DefaultBaseURL is the production agent API address.
	DefaultBaseURL = "https://agent.timeweb.cloud"

	// DefaultTimeout is the total per-request duration limit.
	DefaultTimeout = 120 * time.Second
)

// Environment variables read by FromEnv.
const (
	EnvBaseURL = "TWCAI_BASE_URL"
	EnvToken   = "TWCAI_API_TOKEN"
)

// Client talks to the Timeweb Cloud AI agent API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

type options struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// Option configures a Client during construction.
type Option func(*options)

// WithBaseURL overrides the API base address.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout sets the total per-request duration limit. Ignored when a
// custom http.Client is supplied.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient supplies the underlying HTTP client, for connection
// pool tuning or fake transports in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger sets the logger for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics attaches Prometheus request metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a Client. The token is mandatory: a missing token fails
// here with a configuration error, before any network activity. Token
// validity is only confirmed server-side on the first call.
func New(token string, opts ...Option) (*Client, error) {
	o := options{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if token == "" {
		return nil, api.NewConfigurationError("API token is required")
	}
	if o.baseURL == "" {
		return nil, api.NewConfigurationError("base URL is required")
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := o.httpClient
	if httpClient == nil {
		if o.timeout <= 0 {
			o.timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: o.timeout}
	}

	warnIfExpired(logger, token)

	return &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		logger:     logger,
		metrics:    o.metrics,
	}, nil
}

// FromEnv creates a Client from TWCAI_API_TOKEN and, if set,
// TWCAI_BASE_URL. Explicit options take precedence over the environment.
func FromEnv(opts ...Option) (*Client, error) {
	token := os.Getenv(EnvToken)
	if token == "" {
		return nil, api.NewConfigurationError(EnvToken + " environment variable not set")
	}

	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	}

	return New(token, opts...)
}

// BaseURL returns the configured base address with any trailing slash
// removed.
func (c *Client) BaseURL() string { return c.baseURL }
