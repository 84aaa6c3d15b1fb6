package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/barristerapp/barrister/internal/store"
)

type captureRecorder struct {
	events []store.GenerationEventData
	err    error
}

func (r *captureRecorder) AppendGenerationEvent(_ context.Context, data store.GenerationEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	rec := &captureRecorder{}
	mock := NewMockProvider(MockResponse{
		Text:  "answer",
		Usage: Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, rec)

	ctx := WithPurpose(context.Background(), "explain-concept")
	if _, err := p.Generate(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	e := rec.events[0]
	if !e.Success {
		t.Error("event should record success")
	}
	if e.Purpose != "explain-concept" {
		t.Errorf("purpose = %q, want explain-concept", e.Purpose)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", e.InputTokens, e.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	rec := &captureRecorder{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	p := WithLogging(mock, rec)

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	if rec.events[0].Success {
		t.Error("event should record failure")
	}
	if rec.events[0].ErrorMessage == "" {
		t.Error("event should carry the error message")
	}
}

func TestLogging_RecorderFailureDoesNotFailRequest(t *testing.T) {
	rec := &captureRecorder{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "answer"})
	p := WithLogging(mock, rec)

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("request must not fail on logging error: %v", err)
	}
	if resp.Text != "answer" {
		t.Errorf("text = %q, want answer", resp.Text)
	}
}
