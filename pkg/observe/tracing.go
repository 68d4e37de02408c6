package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vrange/pkg/vdom"
)

// Default tracer name.
const defaultTracerName = "vrange"

// Tracing emits one span per finished pass. Spans carry the pass start time
// and duration, so they are created after the fact.
type Tracing struct {
	vdom.NopObserver

	tracer trace.Tracer
	ctx    context.Context
}

// TracingOption configures Tracing.
type TracingOption func(*Tracing)

// WithTracerProvider uses tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(t *Tracing) {
		t.tracer = tp.Tracer(defaultTracerName)
	}
}

// WithParentContext makes every span a child of the span in ctx.
func WithParentContext(ctx context.Context) TracingOption {
	return func(t *Tracing) {
		t.ctx = ctx
	}
}

// NewTracing creates a Tracing observer.
func NewTracing(opts ...TracingOption) *Tracing {
	t := &Tracing{ctx: context.Background()}
	for _, opt := range opts {
		opt(t)
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer(defaultTracerName)
	}
	return t
}

// PassFinished records p as a span named "vrange.<phase>".
func (t *Tracing) PassFinished(p vdom.Pass) {
	_, span := t.tracer.Start(t.ctx, "vrange."+p.Phase,
		trace.WithTimestamp(p.Start),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("vrange.phase", p.Phase),
			attribute.String("vrange.component", p.Component),
			attribute.Int("vrange.mounted", p.Mounted),
			attribute.Int("vrange.reused", p.Reused),
			attribute.Int("vrange.replaced", p.Replaced),
			attribute.Int("vrange.appended", p.Appended),
		),
	)
	span.End(trace.WithTimestamp(p.Start.Add(p.Duration)))
}
