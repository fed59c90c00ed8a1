// Package remote executes outbound HTTP calls to the weather and geocoding
// collaborators with retries, exponential backoff and a circuit breaker.
package remote

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// RetryPolicy controls exponential backoff behaviour.
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy mirrors the retry parameters the collaborators are
// tuned for: a handful of quick attempts, capped.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// ErrCircuitOpen is returned when the breaker refuses a call. Callers can
// detect it with errors.Is and back off instead of retrying.
var ErrCircuitOpen = errors.New("circuit breaker open")

var (
	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidPolicy = errors.New("invalid retry policy")
)

// Caller issues requests for one collaborator. Transient failures (network
// errors, 429, 5xx) are retried with backoff behind a circuit breaker; any
// other response, success or not, is returned to the caller to interpret.
type Caller struct {
	client  *http.Client
	policy  RetryPolicy
	breaker *gobreaker.CircuitBreaker
}

// NewCaller creates a Caller named after the collaborator it fronts.
func NewCaller(name string, client *http.Client, policy RetryPolicy) *Caller {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Caller{client: client, policy: policy, breaker: cb}
}

// Do builds and executes the request, retrying transient failures. The
// request is rebuilt on every attempt so bodies and URLs stay fresh.
func (c *Caller) Do(ctx context.Context, buildRequest func() (*http.Request, error)) (*http.Response, error) {
	if c.client == nil {
		return nil, errNoHTTPClient
	}
	if c.policy.MaxRetries < 0 || c.policy.InitialInterval <= 0 {
		return nil, errInvalidPolicy
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)

		result, err := c.breaker.Execute(func() (interface{}, error) {
			resp, execErr := c.client.Do(req)
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

			// Other statuses, including client errors, are for the
			// caller to interpret.
			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		lastErr = err
		if attempt >= c.policy.MaxRetries {
			return nil, lastErr
		}

		delay := c.policy.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.policy.MaxInterval > 0 && delay > c.policy.MaxInterval {
			delay = c.policy.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
