package application

import (
	"net/http"
	"regexp"

	"deal_browser/internal/config"
	"deal_browser/internal/infrastructure/cheapshark"
	"deal_browser/pkg/httpx"
	"deal_browser/pkg/logx"
)

// NewCheapSharkClient builds the API client with exchange logging on its
// transport. dump options are applied after the defaults.
func NewCheapSharkClient(cfg config.CheapShark, dump ...httpx.Option) *cheapshark.Client {
	opts := append([]httpx.Option{
		httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker(
			// set by some proxies in front of the API
			regexp.MustCompile(`(?i)(Cookie:\s?).+?(\r?\n)`),
		)),
	}, dump...)

	transport := httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...)

	return cheapshark.NewClient(
		cheapshark.WithBaseURL(cfg.BaseURL),
		cheapshark.WithTimeout(cfg.Timeout),
		cheapshark.WithTransport(transport),
	)
}
