package embedding

import (
	"context"
	"errors"
	"time"
)

// Backoff schedule for transient failures: 1s, 2s, 4s, then capped at 5s.
const (
	backoffBase = time.Second
	backoffCap  = 5 * time.Second
)

// backoffDelay returns the wait before retry number attempt (1-based):
// min(backoffBase * 2^(attempt-1), backoffCap).
func backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := backoffBase << uint(attempt-1)
	if d > backoffCap || d <= 0 {
		d = backoffCap
	}
	return d
}

// retryable reports whether err is a transient failure worth retrying.
// Connection refusals, missing models, contract mismatches, and local
// validation failures are terminal; everything else (timeouts, 5xx,
// truncated bodies) is transient.
func retryable(err error) bool {
	var (
		connErr     *ConnectionError
		notFound    *ModelNotFoundError
		invalidResp *InvalidResponseError
		validation  *ValidationError
	)
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &notFound),
		errors.As(err, &invalidResp),
		errors.As(err, &validation):
		return false
	}
	return true
}

// sleepFn waits for d or until ctx is done. Injectable so that the attempt
// machine is testable without driving real timers.
type sleepFn func(ctx context.Context, d time.Duration) error

// defaultSleep is the production sleepFn.
func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// attemptFn performs one backend attempt. attempt is 1-based.
type attemptFn func(attempt int) ([]float64, error)

// runAttempts drives the retry state machine for one request:
//
//	attempting(n) -> success
//	             -> terminal error            (not retryable, surfaced as-is)
//	             -> retryable, n <= maxRetries -> backoff -> attempting(n+1)
//	             -> retryable, n >  maxRetries -> exhausted
//
// It returns the vector, the total number of attempts issued, and the
// terminal error. Exhaustion yields *RetryExhaustedError carrying the last
// underlying failure. A cancelled context aborts between attempts.
func runAttempts(ctx context.Context, maxRetries int, sleep sleepFn, fn attemptFn) ([]float64, int, error) {
	attempts := 0
	var lastErr error

	for {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return nil, attempts, &RetryExhaustedError{Attempts: attempts, LastErr: lastErr}
			}
			return nil, attempts, err
		}

		attempts++
		vec, err := fn(attempts)
		if err == nil {
			return vec, attempts, nil
		}
		if !retryable(err) {
			return nil, attempts, err
		}

		lastErr = err
		retry := attempts // retry number n after attempt n
		if retry > maxRetries {
			return nil, attempts, &RetryExhaustedError{Attempts: attempts, LastErr: lastErr}
		}
		if err := sleep(ctx, backoffDelay(retry)); err != nil {
			return nil, attempts, &RetryExhaustedError{Attempts: attempts, LastErr: lastErr}
		}
	}
}
