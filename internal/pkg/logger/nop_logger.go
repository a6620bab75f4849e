package logger

import "go.uber.org/zap"

// NewNopLogger returns an ILogger that discards everything. Intended for tests.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}
