package log

import (
	"context"

	"go.uber.org/zap"
)

type logCtxKey int

// New builds the process logger: human readable development output when debug is set,
// JSON production output otherwise.
func New(app string, debug bool) *zap.Logger {
	var logger *zap.Logger
	if debug {
		logger = zap.Must(zap.NewDevelopment())
	} else {
		logger = zap.Must(zap.NewProduction())
	}
	return logger.With(zap.String("app", app))
}

func IntoContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey(0), logger)
}

func FromContext(ctx context.Context) *zap.Logger {
	val := ctx.Value(logCtxKey(0))
	if val != nil {
		return val.(*zap.Logger)
	}
	return zap.L()
}
