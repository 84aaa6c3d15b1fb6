package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Text: "recovered"},
	)
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "recovered" {
		t.Errorf("text = %q, want recovered", resp.Text)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("calls = %d, want 2", len(mock.Calls))
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider() // empty queue: every call fails
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("calls = %d, want 3", len(mock.Calls))
	}
}

func TestRetry_ContextErrorNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: context.Canceled})
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", len(mock.Calls))
	}
}

func TestRetry_EmptyResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrEmptyResponse{}},
		MockResponse{Err: &ErrEmptyResponse{}},
		MockResponse{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("got %v, want ErrEmptyResponse", err)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("calls = %d, want 2 (one retry only)", len(mock.Calls))
	}
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetry(3)}
	wait := r.backoff(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("backoff = %v, want the rate-limit hint", wait)
	}
}

func TestRetry_BackoffBounded(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		MaxAttempts: 5,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  10.0,
	}}
	for attempt := 0; attempt < 5; attempt++ {
		wait := r.backoff(attempt, &ErrProviderUnavailable{})
		if wait < 0 {
			t.Errorf("attempt %d: negative backoff %v", attempt, wait)
		}
		// MaxWait plus 20% jitter headroom.
		if wait > 360*time.Millisecond {
			t.Errorf("attempt %d: backoff %v exceeds cap", attempt, wait)
		}
	}
}

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	resp, err := mock.Generate(context.Background(), Request{Prompt: "a"})
	if err != nil || resp.Text != "first" {
		t.Fatalf("got (%v, %v), want first", resp, err)
	}
	resp, err = mock.Generate(context.Background(), Request{Prompt: "b"})
	if err != nil || resp.Text != "second" {
		t.Fatalf("got (%v, %v), want second", resp, err)
	}
	if _, err = mock.Generate(context.Background(), Request{Prompt: "c"}); err == nil {
		t.Fatal("exhausted mock should error")
	}
	if len(mock.Calls) != 3 {
		t.Errorf("calls = %d, want 3", len(mock.Calls))
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "study-plan")
	if got := PurposeFrom(ctx); got != "study-plan" {
		t.Errorf("purpose = %q, want study-plan", got)
	}
}
