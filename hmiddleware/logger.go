package hmiddleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/promroute/promroute/hcontext"
)

// PreRequestLogger is a middleware for the github.com/sirupsen/logrus to log
// requests as they arrive, before the downstream handler runs.
func PreRequestLogger(l logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}
			logRequest(l, r, 0, 0, 0, "start")
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// PostRequestLogger is a middleware for the github.com/sirupsen/logrus to log
// requests once they complete, including status, bytes written, and
// service time.
func PostRequestLogger(l logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}

			t0 := time.Now()
			defer func() {
				logRequest(l, r, ww.Status(), ww.BytesWritten(), time.Since(t0), "finish")
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func logRequest(l logrus.FieldLogger, r *http.Request, status int, bytes int, service time.Duration, at string) {
	log := l.WithFields(logrus.Fields{
		"request_id":  requestID(r),
		"method":      r.Method,
		"host":        r.Host,
		"path":        r.URL.RequestURI(),
		"remote_addr": r.RemoteAddr,
		"user_agent":  r.UserAgent(),
		"protocol":    r.URL.Scheme,
		"at":          at,
	})

	if r.Context().Value(chi.RouteCtxKey) != nil {
		if pattern := chi.RouteContext(r.Context()).RoutePattern(); pattern != "" {
			log = log.WithField("route", pattern)
		}
	}

	if status > 0 {
		log = log.WithField("status", status)
	}

	if bytes > 0 {
		log = log.WithField("bytes", bytes)
	}

	if service > 0 {
		log = log.WithField("service", fmt.Sprintf("%dms", service/time.Millisecond))
	}

	log.Info()
}

func requestID(r *http.Request) string {
	if id, ok := hcontext.RequestIDFromContext(r.Context()); ok {
		return id
	}
	id, _ := hcontext.FromRequest(r)
	return id
}
