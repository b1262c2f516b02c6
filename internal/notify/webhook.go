package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/linkwatch/internal/domain"
)

// Router sends problem outcomes to the configured webhook, picking the
// payload shape from the destination service.
type Router struct {
	WebhookURL      string
	ServiceOverride string
	Client          *http.Client
	Logger          *zap.Logger
}

func NewRouter(webhookURL, serviceOverride string, logger *zap.Logger) *Router {
	return &Router{
		WebhookURL:      webhookURL,
		ServiceOverride: serviceOverride,
		Client:          &http.Client{Timeout: 10 * time.Second},
		Logger:          logger,
	}
}

// Notify sends one notification for a problem outcome. An unset webhook URL
// is not an error: notifications are simply skipped. Delivery failures are
// returned for the caller to log; nothing retries here.
func (rt *Router) Notify(ctx context.Context, result domain.CheckResult) error {
	if rt.WebhookURL == "" {
		rt.Logger.Info("webhook_not_configured", zap.String("url", result.URL))
		return nil
	}

	service := rt.resolveService()
	rt.Logger.Info("sending_notification",
		zap.String("url", result.URL),
		zap.String("service", service.String()),
		zap.String("severity", SeverityFor(result).String()),
	)

	timestamp := time.Now().UTC().Format(time.RFC3339)
	payload, err := BuildPayload(service, result, timestamp)
	if err != nil {
		return fmt.Errorf("build %s payload: %w", service, err)
	}
	return rt.post(ctx, payload)
}

// NotifyTest pushes a synthetic outcome through the normal delivery path so
// operators can verify webhook wiring without a real failure.
func (rt *Router) NotifyTest(ctx context.Context) error {
	test := domain.Failed("https://linkwatch.example/test-notification", domain.ReasonFetchFailed, 0)
	return rt.Notify(ctx, test)
}

// resolveService applies the explicit override when it names a known
// service, otherwise falls back to URL-based detection.
func (rt *Router) resolveService() Service {
	if rt.ServiceOverride != "" {
		if svc, ok := ParseService(rt.ServiceOverride); ok {
			return svc
		}
		rt.Logger.Warn("unknown_webhook_service",
			zap.String("value", rt.ServiceOverride),
		)
	}
	return ServiceFromURL(rt.WebhookURL)
}

func (rt *Router) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rt.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rt.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best-effort diagnostics from the response body.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("webhook returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	rt.Logger.Info("notification_sent")
	return nil
}
