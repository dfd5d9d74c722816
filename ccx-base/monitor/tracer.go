package monitor

import (
	"context"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/ext"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// SpanTags is tags of span.
type SpanTags map[string]interface{}

func setSpanTags(span tracer.Span, tags SpanTags) {
	for k, v := range tags {
		span.SetTag(k, v)
	}
}

// StartDDSpan starts a datadog span as a child of whatever span ctx carries.
// It is a no-op span unless the tracer was started.
func StartDDSpan(ctx context.Context, operationName, resource string, tags SpanTags) (tracer.Span, context.Context) {
	span, ctx := tracer.StartSpanFromContext(ctx, operationName,
		tracer.ResourceName(resource),
		tracer.SpanType(ext.SpanTypeHTTP),
	)
	setSpanTags(span, tags)
	return span, ctx
}

// FinishDDSpan finishes a datadog span.
func FinishDDSpan(span tracer.Span, tags SpanTags, err error) {
	setSpanTags(span, tags)
	span.Finish(tracer.WithError(err))
}
