package nosandbox

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger.
// It uses a no-op logger that aborts the process on Fatal by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = defaultLogger()
		}
	})
	return logger
}

// SetLogger configures the package logger.
// This must be called before generated code starts running. Loggers built
// without AbortOnFatal terminate traps with zap's default os.Exit(1).
// A nil logger restores the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	logger = l
}

func defaultLogger() *zap.Logger {
	return zap.NewNop().WithOptions(AbortOnFatal())
}

// AbortOnFatal makes Fatal entries abort the process after they are written.
func AbortOnFatal() zap.Option {
	return zap.WithFatalHook(abortHook{})
}

type abortHook struct{}

func (abortHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {
	abort()
}
