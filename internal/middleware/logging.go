package middleware

import (
	"fmt"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request through l.
func RequestLogger(l *logrus.Logger) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&logrusFormatter{l: l})
}

type logrusFormatter struct {
	l *logrus.Logger
}

func (f *logrusFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &logrusEntry{entry: f.l.WithFields(logrus.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"remote":     r.RemoteAddr,
		"request_id": chimw.GetReqID(r.Context()),
	})}
}

type logrusEntry struct {
	entry *logrus.Entry
}

func (e *logrusEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	entry := e.entry.WithFields(logrus.Fields{
		"status":     status,
		"bytes":      bytes,
		"elapsed_ms": elapsed.Milliseconds(),
	})
	switch {
	case status >= 500:
		entry.Error("request")
	case status >= 400:
		entry.Warn("request")
	default:
		entry.Info("request")
	}
}

func (e *logrusEntry) Panic(v interface{}, stack []byte) {
	e.entry.WithFields(logrus.Fields{
		"panic": fmt.Sprint(v),
		"stack": string(stack),
	}).Error("panic recovered")
}
