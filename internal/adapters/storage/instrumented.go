// Package storage holds what is shared by the todo store adapters.
package storage

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoRepository = (*Instrumented)(nil)

// Instrumented wraps a TodoRepository with a span and a duration metric per
// call. Not-found and validation outcomes are expected results and do not
// mark the span as failed.
type Instrumented struct {
	next    ports.TodoRepository
	system  string
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// Instrument wraps next. system names the backing store ("mongo",
// "badger") in span and metric attributes. metrics may be nil.
func Instrument(next ports.TodoRepository, system string, metrics *telemetry.Metrics) *Instrumented {
	return &Instrumented{
		next:    next,
		system:  system,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer(telemetry.ScopeName + "/storage"),
	}
}

func (i *Instrumented) List(ctx context.Context, q todo.ListQuery) ([]todo.Todo, int64, error) {
	ctx, done := i.start(ctx, "List",
		attribute.String("todo.filter", q.Filter),
		attribute.String("todo.status", q.Status.String()),
		attribute.Int("todo.page", q.Page),
	)
	items, total, err := i.next.List(ctx, q)
	done(err)
	return items, total, err
}

func (i *Instrumented) Get(ctx context.Context, id string) (*todo.Todo, error) {
	ctx, done := i.start(ctx, "Get", attribute.String("todo.id", id))
	t, err := i.next.Get(ctx, id)
	done(err)
	return t, err
}

func (i *Instrumented) Create(ctx context.Context, title string) (*todo.Todo, error) {
	ctx, done := i.start(ctx, "Create")
	t, err := i.next.Create(ctx, title)
	done(err)
	return t, err
}

func (i *Instrumented) UpdateTitle(ctx context.Context, id, title string) (*todo.Todo, error) {
	ctx, done := i.start(ctx, "UpdateTitle", attribute.String("todo.id", id))
	t, err := i.next.UpdateTitle(ctx, id, title)
	done(err)
	return t, err
}

func (i *Instrumented) UpdateStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error) {
	ctx, done := i.start(ctx, "UpdateStatus",
		attribute.String("todo.id", id),
		attribute.Bool("todo.completed", completed),
	)
	t, err := i.next.UpdateStatus(ctx, id, completed)
	done(err)
	return t, err
}

func (i *Instrumented) Delete(ctx context.Context, id string) error {
	ctx, done := i.start(ctx, "Delete", attribute.String("todo.id", id))
	err := i.next.Delete(ctx, id)
	done(err)
	return err
}

func (i *Instrumented) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	begin := time.Now()
	attrs = append(attrs, attribute.String("db.system", i.system))
	ctx, span := i.tracer.Start(ctx, "todo.store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, func(err error) {
		if err != nil && !expected(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		i.metrics.RecordStoreOp(ctx, i.system, op, begin, err)
	}
}

func expected(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation)
}
