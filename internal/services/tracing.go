package services

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/observability"
)

var tracer = observability.Tracer("services")

// endSpan ends span, flagging it as failed only for unexpected errors.
// Client errors (validation, not found, bad identifiers) are normal outcomes.
func endSpan(span trace.Span, err error) {
	if err != nil && domain.Classify(err) == domain.KindUnexpected {
		observability.EndSpan(span, err)
		return
	}
	span.End()
}
