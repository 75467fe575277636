package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skribe/internal/shared/metrics"
	"skribe/internal/shared/telemetry"
	"skribe/internal/shared/util"
)

// Client sends a single user prompt to a hosted chat-completion model and
// returns the text of the first returned message.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// Provider is the display name used in user-facing error text.
	Provider() string
}

// ErrNotConfigured is returned by UnconfiguredClient.
var ErrNotConfigured = errors.New("llm client not configured")

// ErrorText formats a failed completion as the content shown to the user.
func ErrorText(provider string, err error) string {
	return fmt.Sprintf("Error calling %s: %v", provider, err)
}

// CallCompletion runs one completion and never fails: any error, including a
// panic inside the client, comes back as ErrorText in place of the content.
func CallCompletion(ctx context.Context, client Client, prompt string) (text string) {
	provider := client.Provider()
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)
			metrics.ObserveCompletion(provider, time.Since(start), err)
			telemetry.Error("llm.complete.panic", map[string]any{
				"provider": provider,
				"error":    err,
			})
			text = ErrorText(provider, err)
		}
	}()

	out, err := client.Complete(ctx, prompt)
	elapsed := time.Since(start)
	metrics.ObserveCompletion(provider, elapsed, err)
	if err != nil {
		telemetry.Error("llm.complete.failed", map[string]any{
			"provider":      provider,
			"prompt_sha256": util.Fingerprint(prompt),
			"duration_ms":   float64(elapsed.Microseconds()) / 1000.0,
			"error":         err,
		})
		return ErrorText(provider, err)
	}
	return out
}

// UnconfiguredClient stands in when no API key is available. Every call
// fails with Reason, which then surfaces through ErrorText.
type UnconfiguredClient struct {
	Name   string
	Reason error
}

// Complete always returns the configured reason.
func (c UnconfiguredClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	if c.Reason != nil {
		return "", c.Reason
	}
	return "", ErrNotConfigured
}

// Provider returns the display name of the missing provider.
func (c UnconfiguredClient) Provider() string {
	return c.Name
}
