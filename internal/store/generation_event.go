package store

import (
	"context"
	"fmt"
	"time"
)

// GenerationEventData captures one call to the generative-text
// collaborator, successful or not. The audit trail is diagnostic only;
// a failed append never fails the generation call.
type GenerationEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AppendGenerationEvent records a text-generation call.
func (s *Store) AppendGenerationEvent(ctx context.Context, data GenerationEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_events
		(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, success, data.ErrorMessage,
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("append generation event: %w", err)
	}
	return nil
}
