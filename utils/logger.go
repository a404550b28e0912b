package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

type runIDKey struct{}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

// WithRunID tags every log line produced under ctx with the sequencing run id.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

func GetLogger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if runID, ok := ctx.Value(runIDKey{}).(string); ok && runID != "" {
		return zap.L().With(zap.String("run_id", runID))
	}
	return zap.L()
}

func GetPanicInfo() string {
	buf := make([]byte, 16384)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
