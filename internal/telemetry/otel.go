package telemetry

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the name of the tracer used by the site and the playground.
const TracerName = "elements"

// Tracer returns the tracer from the global provider. Until a provider is
// installed with otel.SetTracerProvider, spans are no-ops.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartInteraction starts a span for a playground action on the element
// with id target.
func StartInteraction(ctx context.Context, session, action, target string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "elements."+action,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("elements.session_id", session),
			attribute.String("elements.action", action),
			attribute.String("elements.target", target),
		),
	)
}

// End records err on span and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// TraceRequests starts a server span for each HTTP request and makes it
// available to handlers through the request context.
func TraceRequests(next http.Handler) http.Handler {
	tracer := Tracer()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "elements "+r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
		span.SetAttributes(attribute.String("http.route", routePattern(r)))
	})
}
