package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"seoaudit/internal/log"
)

// Error is returned when a page fetch fails at the transport level. A non-2xx
// status is not an Error; callers decide what response codes mean.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Page is the result of a full GET fetch.
type Page struct {
	Body       []byte
	StatusCode int
	Header     http.Header
	Elapsed    time.Duration
}

func (p *Page) Size() int {
	return len(p.Body)
}

// HeadResult is the result of a header-only probe.
type HeadResult struct {
	StatusCode    int
	ContentLength int64
	ContentType   string
}

// PageFetcher retrieves a full page body. Implemented by *Client; analyzers
// depend on the interface so tests can substitute fakes.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// HeadProber issues a bounded header-only request against a single URL.
type HeadProber interface {
	Head(ctx context.Context, url string) (*HeadResult, error)
}

// Client performs bounded HTTP fetches and HEAD probes. No retries; a failed
// call is final for the request it belongs to.
type Client struct {
	httpClient  *http.Client
	probeClient *http.Client
	userAgent   string
}

func NewClient(fetchTimeout, probeTimeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		probeClient: &http.Client{
			Timeout: probeTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Fetch performs a single GET and records wall-clock latency over the whole
// exchange, body read included.
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Logger.Error("failed to fetch URL",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, &Error{URL: url, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Logger.Warn("failed to read response body",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, &Error{URL: url, Err: err}
	}
	elapsed := time.Since(start)

	log.Logger.Debug("fetched URL",
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("content_length", len(body)),
		zap.Duration("elapsed", elapsed),
	)

	return &Page{
		Body:       body,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Elapsed:    elapsed,
	}, nil
}

// Head sends a HEAD request and returns status plus the size/type headers.
func (c *Client) Head(ctx context.Context, url string) (*HeadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return &HeadResult{
		StatusCode:    resp.StatusCode,
		ContentLength: resp.ContentLength,
		ContentType:   resp.Header.Get("Content-Type"),
	}, nil
}
