package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/linkwatch/internal/domain"
	"github.com/hamed0406/linkwatch/internal/sri"
)

// Checker fetches a resource once and verifies its body against a pinned
// SRI digest.
type Checker struct {
	Client *http.Client
	Logger *zap.Logger
}

func NewChecker(timeout time.Duration, logger *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checker{
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// Check performs one check: parse the expected digest, GET the URL, verify
// the body. Exactly one fetch per call, no retries; the next scheduled
// cycle is the retry.
func (c *Checker) Check(ctx context.Context, url, expectedDigest string) domain.CheckResult {
	// Fail fast on misconfiguration before spending a network round-trip.
	hash, err := sri.Parse(expectedDigest)
	if err != nil {
		c.Logger.Warn("invalid_digest",
			zap.String("url", url),
			zap.Error(err),
		)
		return domain.Failed(url, domain.ReasonInvalidDigest, 0)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Failed(url, domain.ReasonFetchFailed, 0)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		c.Logger.Warn("fetch_failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return domain.Failed(url, domain.ReasonFetchFailed, 0)
	}
	defer resp.Body.Close()

	// Non-2xx: don't read the (possibly large) error body.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Logger.Warn("http_error",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return domain.Failed(url, domain.ReasonHTTPError, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Warn("body_read_failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return domain.Failed(url, domain.ReasonBodyRead, 0)
	}

	latency := time.Since(start).Seconds() * 1000 // ms
	ok := hash.Verify(body)
	if ok {
		c.Logger.Info("check_ok",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("algorithm", hash.Algorithm()),
			zap.Float64("latency_ms", latency),
		)
	} else {
		c.Logger.Error("sri_mismatch",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("expected", hash.String()),
			zap.Float64("latency_ms", latency),
		)
	}

	return domain.Succeeded(url, resp.StatusCode, ok)
}
