package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// resilience bundles the HTTP client, backoff settings and circuit breaker
// shared by one provider's outbound calls.
type resilience struct {
	client  *http.Client
	backoff BackoffConfig
	circuit *gobreaker.CircuitBreaker
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// newResilience builds the standard per-provider resilience bundle.
func newResilience(name string, client *http.Client) resilience {
	return resilience{
		client: client,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// getJSON fetches the URL with retries, exponential backoff and the circuit
// breaker, then decodes the response body into out.
func (r resilience) getJSON(ctx context.Context, url string, out any) error {
	if r.client == nil {
		return errNoHTTPClient
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		result, err := r.circuit.Execute(func() (any, error) {
			resp, execErr := r.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, errServerError
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}

			return resp, nil
		})

		if err == nil {
			resp := result.(*http.Response)
			decodeErr := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if decodeErr != nil {
				return fmt.Errorf("decoding response: %w", decodeErr)
			}
			return nil
		}

		// An open circuit means the provider is down; do not keep hammering it.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= r.backoff.MaxRetries {
			return lastErr
		}

		delay := r.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if r.backoff.MaxInterval > 0 && delay > r.backoff.MaxInterval {
			delay = r.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
