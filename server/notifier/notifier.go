// Package notifier delivers composed messages to a Discord channel through
// a webhook. Delivery is best-effort: bounded retries with backoff, then
// give up and report failure through the returned boolean.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// WebhookPrefix is the required prefix for Discord webhook URLs.
	WebhookPrefix = "https://discord.com/api/webhooks/"

	// minWebhookSegments is the minimum number of /-separated segments in
	// a well-formed webhook URL.
	minWebhookSegments = 7

	// maxAttempts bounds delivery retries.
	maxAttempts = 3

	// baseBackoff is the initial delay between retries, doubling per attempt.
	baseBackoff = 2 * time.Second

	// defaultRetryAfter is the wait applied on HTTP 429 when the provider
	// supplies no Retry-After header.
	defaultRetryAfter = 10 * time.Second

	// senderUsername is the display name shown in the Discord channel.
	senderUsername = "CrisisPilot • Critical Alert System"

	// senderAvatarURL is the icon shown next to delivered messages.
	senderAvatarURL = "https://cdn-icons-png.flaticon.com/512/564/564619.png"

	// userAgent identifies the sender to Discord.
	userAgent = "CrisisPilot-CriticalAlert-Bot/1.0"
)

// webhookPayload is the JSON body posted to the webhook.
type webhookPayload struct {
	Content   string `json:"content"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Notifier posts messages to a single configured Discord webhook.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *zap.SugaredLogger
	sleep      func(time.Duration)
	validate   func(string) bool
}

// New creates a new notifier for the given webhook URL. An empty URL is
// allowed; delivery is then disabled and Deliver always returns false.
func New(webhookURL string, logger *zap.SugaredLogger) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger:   logger,
		sleep:    time.Sleep,
		validate: ValidateWebhookURL,
	}
}

// SetSleep sets a custom sleep function (useful for testing).
func (n *Notifier) SetSleep(sleep func(time.Duration)) {
	n.sleep = sleep
}

// SetValidate sets a custom endpoint validator (useful for testing against
// local servers).
func (n *Notifier) SetValidate(validate func(string) bool) {
	n.validate = validate
}

// ValidateWebhookURL performs the structural endpoint check: non-empty,
// Discord webhook prefix, and a minimum path-segment count.
func ValidateWebhookURL(url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}
	if !strings.HasPrefix(url, WebhookPrefix) {
		return false
	}
	return len(strings.Split(url, "/")) >= minWebhookSegments
}

// Deliver posts a message to the configured webhook. It attempts delivery
// up to 3 times: HTTP 204 succeeds immediately, HTTP 429 waits out the
// provider-directed Retry-After (not counted as backoff), and anything
// else backs off exponentially. Returns whether delivery succeeded; an
// invalid endpoint returns false without any network I/O.
func (n *Notifier) Deliver(ctx context.Context, message string) bool {
	if !n.validate(n.webhookURL) {
		n.logger.Warnw("Webhook URL is invalid or not configured, skipping delivery")
		return false
	}

	body, err := json.Marshal(webhookPayload{
		Content:   message,
		Username:  senderUsername,
		AvatarURL: senderAvatarURL,
	})
	if err != nil {
		n.logger.Errorw("Failed to encode webhook payload", "error", err)
		return false
	}

	backoff := baseBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, retryAfter, err := n.post(ctx, body)

		switch {
		case err != nil:
			n.logger.Warnw("Webhook request failed", "attempt", attempt, "error", err)
		case status == http.StatusNoContent:
			n.logger.Infow("Alert delivered", "attempt", attempt)
			return true
		case status == http.StatusTooManyRequests:
			if attempt == maxAttempts {
				n.logger.Warnw("Rate limited by webhook on final attempt", "attempt", attempt)
				break
			}
			n.logger.Warnw("Rate limited by webhook, waiting", "retryAfter", retryAfter)
			n.sleep(retryAfter)
			// Directed wait, does not consume the exponential backoff
			continue
		default:
			n.logger.Warnw("Webhook returned unexpected status", "attempt", attempt, "status", status)
		}

		if attempt < maxAttempts {
			n.sleep(backoff)
			backoff *= 2
		}
	}

	n.logger.Errorw("Alert delivery failed after retries", "attempts", maxAttempts)
	return false
}

// TestConnection sends a fixed connectivity-test message.
func (n *Notifier) TestConnection(ctx context.Context) bool {
	return n.Deliver(ctx, "🧪 Automated System Test – Operational integrity confirmed! ✅")
}

// post executes one webhook request and returns the status code plus the
// parsed Retry-After duration for rate-limit responses.
func (n *Notifier) post(ctx context.Context, body []byte) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	retryAfter := defaultRetryAfter
	if resp.StatusCode == http.StatusTooManyRequests {
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}

	return resp.StatusCode, retryAfter, nil
}
