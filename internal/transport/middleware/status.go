package middleware

import (
	"context"
	"net/http"
)

// statusWriter captures the response status and size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	inner       context.Context
}

// wrapStatus reuses an existing statusWriter so that nested middleware share it.
func wrapStatus(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// ctx returns the innermost request context recorded by Auth, or r's own.
func (w *statusWriter) ctx(r *http.Request) context.Context {
	if w.inner != nil {
		return w.inner
	}
	return r.Context()
}
