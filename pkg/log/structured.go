package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/solarbi/savvy-planner/pkg/requestid"
)

// StructuredLogger emits operation traces at debug level. Errors are always
// emitted at error level.
type StructuredLogger struct {
	name string
	ctx  context.Context
}

func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name}
}

func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	return &StructuredLogger{name: l.name, ctx: ctx}
}

func (l *StructuredLogger) Operation(op string) *OperationBuilder {
	b := &OperationBuilder{logger: l, operation: op}
	if l.ctx != nil {
		if id := requestid.FromContext(l.ctx); id != "" {
			b.fields = append(b.fields, zap.String("request_id", id))
		}
	}
	return b
}

type OperationBuilder struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithStringPtr(key string, value *string) *OperationBuilder {
	if value == nil {
		b.fields = append(b.fields, zap.Skip())
		return b
	}
	return b.WithString(key, *value)
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

func (b *OperationBuilder) WithParam(key string, value any) *OperationBuilder {
	b.fields = append(b.fields, zap.Any(key, value))
	return b
}

func (b *OperationBuilder) Build() *Tracer {
	return &Tracer{
		logger:    zap.L().Named(b.logger.name).WithOptions(zap.AddCallerSkip(1)),
		operation: b.operation,
		fields:    b.fields,
		start:     time.Now(),
	}
}

// Tracer logs the steps and the outcome of one operation.
type Tracer struct {
	logger    *zap.Logger
	operation string
	fields    []zap.Field
	start     time.Time
}

func (t *Tracer) Step(name string) *Entry {
	return t.entry(zapcore.DebugLevel, "step", zap.String("step", name))
}

func (t *Tracer) Error(err error) *Entry {
	return t.entry(zapcore.ErrorLevel, "failed", zap.Error(err))
}

func (t *Tracer) Success() *Entry {
	return t.entry(zapcore.DebugLevel, "succeeded", zap.Duration("duration", time.Since(t.start)))
}

func (t *Tracer) entry(lvl zapcore.Level, msg string, fields ...zap.Field) *Entry {
	all := make([]zap.Field, 0, len(t.fields)+len(fields)+1)
	all = append(all, zap.String("operation", t.operation))
	all = append(all, t.fields...)
	all = append(all, fields...)
	return &Entry{logger: t.logger, level: lvl, msg: t.operation + " " + msg, fields: all}
}

type Entry struct {
	logger *zap.Logger
	level  zapcore.Level
	msg    string
	fields []zap.Field
}

func (e *Entry) WithString(key, value string) *Entry {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *Entry) WithInt(key string, value int) *Entry {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *Entry) WithBool(key string, value bool) *Entry {
	e.fields = append(e.fields, zap.Bool(key, value))
	return e
}

func (e *Entry) WithParam(key string, value any) *Entry {
	e.fields = append(e.fields, zap.Any(key, value))
	return e
}

func (e *Entry) Log() {
	if ce := e.logger.Check(e.level, e.msg); ce != nil {
		ce.Write(e.fields...)
	}
}
