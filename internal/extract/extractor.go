// Package extract turns posting HTML into a validated JobRecord by way of a
// completion service, allowing one corrective follow-up for malformed output.
package extract

import (
	"context"
	"fmt"

	"github.com/jimezsa/jobextract/internal/llm"
	"github.com/jimezsa/jobextract/internal/models"
	"github.com/jimezsa/jobextract/internal/schema"
	"github.com/rs/zerolog"
)

// maxAttempts is the initial request plus one corrective follow-up.
const maxAttempts = 2

// ExtractionError is returned when no valid record could be produced after
// the follow-up. Raw holds the last reply exactly as the model sent it.
type ExtractionError struct {
	Attempts int
	Raw      string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

type Extractor struct {
	completer llm.Completer
	logger    zerolog.Logger
}

func New(completer llm.Completer, logger zerolog.Logger) *Extractor {
	return &Extractor{completer: completer, logger: logger}
}

// Extract asks the completion service for a record describing html.
func (e *Extractor) Extract(ctx context.Context, html string) (models.JobRecord, error) {
	prompt := BuildPrompt(html)
	history := []llm.Message{{Role: llm.RoleUser, Text: prompt}}
	e.logger.Debug().Int("prompt_bytes", len(prompt)).Msg("requesting extraction")

	var (
		raw string
		err error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		reply, callErr := e.completer.Complete(ctx, history)
		if callErr != nil {
			return models.JobRecord{}, callErr
		}

		raw = reply
		var record models.JobRecord
		record, err = schema.Decode(NormalizeResponse(reply))
		if err == nil {
			e.logger.Debug().Int("attempt", attempt).Msg("extraction validated")
			return record, nil
		}

		e.logger.Debug().Int("attempt", attempt).Err(err).Msg("reply rejected")
		history = append(history,
			llm.Message{Role: llm.RoleModel, Text: reply},
			llm.Message{Role: llm.RoleUser, Text: FollowUp},
		)
	}

	return models.JobRecord{}, &ExtractionError{Attempts: maxAttempts, Raw: raw, Err: err}
}
