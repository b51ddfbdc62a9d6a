package cheapshark

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"deal_browser/internal/domain"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/errcodes"
	"deal_browser/pkg/logx"
)

var (
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
)

const (
	DefaultBaseURL = "https://www.cheapshark.com/api/1.0"
	DefaultTimeout = 10 * time.Second

	// PageSize is the number of deals requested per listing page.
	PageSize = 20

	redirectURL = "https://www.cheapshark.com/redirect?dealID="
)

// Client is a read-only client of the CheapShark deals API.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
}

type options struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*options)

func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithTransport sets the round tripper under the resty client, usually an
// httpx.LoggingRoundTripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

func NewClient(opts ...Option) *Client {
	o := options{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}

	for _, opt := range opts {
		opt(&o)
	}

	client := resty.NewWithClient(&http.Client{Transport: o.transport})
	client.SetBaseURL(o.baseURL)
	client.SetTimeout(o.timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{
		http:     client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// get performs one GET and decodes the JSON body into out. Failures come back
// as *domain.AppError with NetworkError, HTTPError or ParseError.
func (c *Client) get(ctx context.Context, operation, path string, params map[string]string, out any) error {
	start := time.Now()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		observe(operation, outcomeNetworkError, start)
		return domain.WrapError(err, errcodes.NetworkError, "GET "+path)
	}

	if !res.IsSuccess() {
		observe(operation, outcomeHTTPError, start)
		return domain.NewError(errcodes.HTTPError, fmt.Sprintf("GET %s: %s", path, res.Status()))
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		observe(operation, outcomeParseError, start)
		return domain.WrapError(err, errcodes.ParseError, "decode "+path)
	}

	observe(operation, outcomeOK, start)

	return nil
}

// checkShape turns a validation failure of a decoded payload into a ParseError.
func (c *Client) checkShape(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}

	shapeErrors.WithLabelValues(operation).Inc()
	logger(ctx).Warn("unexpected cheapshark payload", "operation", operation, logx.Error(err))

	return domain.WrapError(err, errcodes.ParseError, operation+": unexpected payload")
}
