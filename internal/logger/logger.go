package logger

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"
)

var logg = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	return l
}

// Get returns the process-wide logger.
func Get() *logrus.Logger {
	return logg
}

// Setup configures the process-wide logger. Unknown levels fall back to info.
func Setup(level, format string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logg.SetLevel(lvl)
	if format == "text" {
		logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logg.SetFormatter(&logrus.JSONFormatter{})
	}
	return logg
}

func LogError(module, op string, data any, err error) {
	fields := logrus.Fields{
		"module": module,
		"op":     op,
	}
	if data != nil {
		fields["data"] = data
	}
	logg.WithFields(fields).Error(err.Error())
}

// SQLTracer routes pgx query logs to logrus at debug level.
func SQLTracer(l *logrus.Logger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
			entry := l.WithFields(logrus.Fields(data))
			switch level {
			case tracelog.LogLevelError:
				entry.Error(msg)
			case tracelog.LogLevelWarn:
				entry.Warn(msg)
			case tracelog.LogLevelInfo:
				entry.Info(msg)
			default:
				entry.Debug(msg)
			}
		}),
		LogLevel: tracelog.LogLevelDebug,
	}
}
