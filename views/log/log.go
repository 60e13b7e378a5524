package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level defines the severity a Zap sink logs at.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events that might still allow the application to continue running.
	LevelError Level = "error"

	// LevelDebug is used for debugging messages with detailed internal information.
	LevelDebug Level = "debug"
)

// Sink receives one diagnostic message per call.
type Sink func(message string)

// Zap returns a Sink writing every message to logger at the given level.
// Unknown levels log at info.
func Zap(logger *zap.Logger, level Level) Sink {
	return func(message string) {
		switch level {
		case LevelInfo:
			logger.Info(message)
		case LevelWarn:
			logger.Warn(message)
		case LevelError:
			logger.Error(message)
		case LevelDebug:
			logger.Debug(message)
		default:
			logger.Info(message)
		}
	}
}

// Writer returns a Sink writing bare message lines to w, one per message,
// with no timestamp or level prefix.
func Writer(w io.Writer) Sink {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeDuration: zapcore.StringDurationEncoder,
		}),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return Zap(zap.New(core), LevelInfo)
}

// Stdout is the default Sink: bare message lines on standard output.
func Stdout() Sink {
	return Writer(os.Stdout)
}

// Nop discards every message.
func Nop() Sink {
	return func(string) {}
}
