package embedding

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestBackoffDelaySchedule(t *testing.T) {
	want := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		5 * time.Second,
		5 * time.Second,
	}
	for i, expected := range want {
		if got := backoffDelay(i + 1); got != expected {
			t.Errorf("retry %d: expected %v, got %v", i+1, expected, got)
		}
	}
}

func TestRetryableClassification(t *testing.T) {
	terminal := []error{
		&ConnectionError{Endpoint: "http://localhost:11434"},
		&ModelNotFoundError{Model: "missing"},
		&InvalidResponseError{Reason: "empty embeddings"},
		&ValidationError{Position: -1, Reason: "empty input"},
	}
	for _, err := range terminal {
		if retryable(err) {
			t.Errorf("%T must not be retried", err)
		}
	}
	transient := []error{
		errors.New("request timed out"),
		&statusError{code: 500, body: "internal"},
		fmt.Errorf("wrapped: %w", &statusError{code: 503, body: "busy"}),
	}
	for _, err := range transient {
		if !retryable(err) {
			t.Errorf("%v must be retried", err)
		}
	}
}

func TestRunAttemptsSuccessFirstTry(t *testing.T) {
	vec, attempts, err := runAttempts(context.Background(), 2, noSleep(t, nil), func(int) ([]float64, error) {
		return []float64{1, 2, 3}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
	if len(vec) != 3 {
		t.Fatalf("unexpected vector %v", vec)
	}
}

func TestRunAttemptsExhaustsRetryBudget(t *testing.T) {
	transient := errors.New("upstream overloaded")
	var delays []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	_, attempts, err := runAttempts(context.Background(), 2, sleep, func(int) ([]float64, error) {
		return nil, transient
	})

	// maxRetries=2 means the initial attempt plus two retries.
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	var exhausted *RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *RetryExhaustedError, got %T (%v)", err, err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("expected 3 recorded attempts, got %d", exhausted.Attempts)
	}
	if !errors.Is(exhausted, transient) {
		t.Error("exhausted error must wrap the last underlying failure")
	}
	if len(delays) != 2 || delays[0] != time.Second || delays[1] != 2*time.Second {
		t.Errorf("unexpected backoff sequence %v", delays)
	}
}

func TestRunAttemptsZeroRetries(t *testing.T) {
	_, attempts, err := runAttempts(context.Background(), 0, noSleep(t, nil), func(int) ([]float64, error) {
		return nil, errors.New("flaky")
	})
	if attempts != 1 {
		t.Fatalf("expected a single attempt with zero retries, got %d", attempts)
	}
	var exhausted *RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *RetryExhaustedError, got %T", err)
	}
}

func TestRunAttemptsTerminalErrorStopsImmediately(t *testing.T) {
	notFound := &ModelNotFoundError{Model: "ghost"}
	_, attempts, err := runAttempts(context.Background(), 3, noSleep(t, nil), func(int) ([]float64, error) {
		return nil, notFound
	})
	if attempts != 1 {
		t.Fatalf("terminal error must not be retried, got %d attempts", attempts)
	}
	var target *ModelNotFoundError
	if !errors.As(err, &target) {
		t.Fatalf("expected *ModelNotFoundError surfaced as-is, got %T", err)
	}
}

func TestRunAttemptsRecoversAfterTransientFailure(t *testing.T) {
	calls := 0
	vec, attempts, err := runAttempts(context.Background(), 2, func(context.Context, time.Duration) error { return nil }, func(int) ([]float64, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("transient")
		}
		return []float64{0.5}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 3 {
		t.Fatalf("expected success on attempt 3, got %d", attempts)
	}
	if len(vec) != 1 {
		t.Fatalf("unexpected vector %v", vec)
	}
}

func TestRunAttemptsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, attempts, err := runAttempts(ctx, 2, noSleep(t, nil), func(int) ([]float64, error) {
		t.Fatal("attempt must not run after cancellation")
		return nil, nil
	})
	if attempts != 0 {
		t.Fatalf("expected 0 attempts, got %d", attempts)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunAttemptsCancelledDuringBackoff(t *testing.T) {
	sleep := func(context.Context, time.Duration) error { return context.Canceled }
	_, attempts, err := runAttempts(context.Background(), 3, sleep, func(int) ([]float64, error) {
		return nil, errors.New("transient")
	})
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
	var exhausted *RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *RetryExhaustedError on aborted backoff, got %T", err)
	}
}

// noSleep returns a sleepFn that fails the test if invoked.
func noSleep(t *testing.T, _ error) sleepFn {
	return func(context.Context, time.Duration) error {
		t.Fatal("unexpected backoff sleep")
		return nil
	}
}
