package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bridge_sdk/internal/domain/entity"

	"github.com/avast/retry-go/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 500 * time.Millisecond
)

// DirectoryClient fetches chain and asset lists from a remote directory.
// Either URL may be empty, in which case the matching Load method fails.
type DirectoryClient struct {
	client    *fasthttp.Client
	chainsURL string
	assetsURL string
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    *zap.Logger

	retryAttempts uint
	retryDelay    time.Duration
}

// Option configures a DirectoryClient.
type Option func(*DirectoryClient)

// WithRetry sets how often a failed request is attempted and the base delay between attempts.
// Client errors (4xx) and malformed bodies are never retried.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *DirectoryClient) {
		if attempts > 0 {
			c.retryAttempts = attempts
		}
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// NewDirectoryClient creates a new DirectoryClient.
// Requests are limited to ratePerSecond with the given burst.
func NewDirectoryClient(chainsURL, assetsURL string, timeout time.Duration, ratePerSecond, burst int, logger *zap.Logger, opts ...Option) *DirectoryClient {
	c := &DirectoryClient{
		client:        &fasthttp.Client{},
		chainsURL:     strings.TrimSpace(chainsURL),
		assetsURL:     strings.TrimSpace(assetsURL),
		timeout:       timeout,
		limiter:       rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		logger:        logger.Named("DirectoryClient"),
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadChains implements port.ChainSource.
func (c *DirectoryClient) LoadChains(ctx context.Context) ([]entity.ChainRecord, error) {
	var chains []entity.ChainRecord
	if err := c.getJSON(ctx, c.chainsURL, &chains); err != nil {
		return nil, fmt.Errorf("failed to load chains: %w", err)
	}
	if chains == nil {
		chains = []entity.ChainRecord{}
	}
	return chains, nil
}

// LoadAssets implements port.AssetSource.
func (c *DirectoryClient) LoadAssets(ctx context.Context) ([]entity.AssetRecord, error) {
	var assets []entity.AssetRecord
	if err := c.getJSON(ctx, c.assetsURL, &assets); err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	if assets == nil {
		assets = []entity.AssetRecord{}
	}
	return assets, nil
}

func (c *DirectoryClient) getJSON(ctx context.Context, requestURL string, out any) error {
	if requestURL == "" {
		return fmt.Errorf("directory URL is not configured")
	}

	return retry.Do(
		func() error { return c.fetchOnce(ctx, requestURL, out) },
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Retrying directory request",
				zap.String("url", requestURL),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
}

func (c *DirectoryClient) fetchOnce(ctx context.Context, requestURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	c.logger.Debug("Requesting directory list", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Error("Failed to execute directory request", zap.String("url", requestURL), zap.Error(err))
		return fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Directory request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody),
		)
		err := fmt.Errorf("request to %s failed with status %d", requestURL, resp.StatusCode())
		if resp.StatusCode() < fasthttp.StatusInternalServerError && resp.StatusCode() != fasthttp.StatusTooManyRequests {
			return retry.Unrecoverable(err)
		}
		return err
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to unmarshal response from %s: %w", requestURL, err))
	}
	return nil
}
