package logger

import (
	"context"
	"time"

	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextLogBuilder accumulates fields for a single log entry, pre-seeded
// with request tracking fields extracted from the context.
type ContextLogBuilder struct {
	level   zapcore.Level
	message string
	fields  []zap.Field
}

func newContextBuilder(ctx context.Context, level zapcore.Level, message string) *ContextLogBuilder {
	builder := &ContextLogBuilder{
		level:   level,
		message: message,
		fields:  make([]zap.Field, 0, 12),
	}
	builder.extractContextFields(ctx)
	return builder
}

func (clb *ContextLogBuilder) extractContextFields(ctx context.Context) {
	if ctx == nil {
		return
	}

	if requestID := ctxutil.GetRequestID(ctx); requestID != "" {
		clb.fields = append(clb.fields, zap.String("request_id", requestID))
	}
	if clientIP := ctxutil.GetClientIP(ctx); clientIP != "" {
		clb.fields = append(clb.fields, zap.String("client_ip", clientIP))
	}
	if module := ctxutil.GetModule(ctx); module != "" {
		clb.fields = append(clb.fields, zap.String("module", module))
	}
	if function := ctxutil.GetFunction(ctx); function != "" {
		clb.fields = append(clb.fields, zap.String("function", function))
	}
	if userID := ctxutil.GetUserID(ctx); userID != nil {
		clb.fields = append(clb.fields, zap.Any("user_id", userID))
	}
}

// DebugWithContext starts a debug entry with context fields
func DebugWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.DebugLevel, message)
}

// InfoWithContext starts an info entry with context fields
func InfoWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.InfoLevel, message)
}

// WarnWithContext starts a warn entry with context fields
func WarnWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.WarnLevel, message)
}

// ErrorWithContext starts an error entry with context fields
func ErrorWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.ErrorLevel, message)
}

// Field methods

func (clb *ContextLogBuilder) String(key, value string) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.String(key, value))
	return clb
}

func (clb *ContextLogBuilder) Int(key string, value int) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Int(key, value))
	return clb
}

func (clb *ContextLogBuilder) Int64(key string, value int64) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Int64(key, value))
	return clb
}

func (clb *ContextLogBuilder) Float64(key string, value float64) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Float64(key, value))
	return clb
}

func (clb *ContextLogBuilder) Bool(key string, value bool) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Bool(key, value))
	return clb
}

func (clb *ContextLogBuilder) Duration(value time.Duration) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Duration("duration", value))
	return clb
}

func (clb *ContextLogBuilder) Err(err error) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Error(err))
	return clb
}

func (clb *ContextLogBuilder) Any(key string, value any) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Any(key, value))
	return clb
}

// Log emits the accumulated entry at the chosen level
func (clb *ContextLogBuilder) Log() {
	log := GetLogger()

	switch clb.level {
	case zapcore.DebugLevel:
		log.Debug(clb.message, clb.fields...)
	case zapcore.InfoLevel:
		log.Info(clb.message, clb.fields...)
	case zapcore.WarnLevel:
		log.Warn(clb.message, clb.fields...)
	case zapcore.ErrorLevel:
		log.Error(clb.message, clb.fields...)
	}
}
