package hmiddleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// PanicHandler recovers panics raised anywhere downstream, logs them as
// errors with logger, and responds 500 if nothing has been written yet.
//
// It belongs at the outermost position in a middleware stack so that
// instrumentation layers below it still observe the panic before it is
// swallowed here.
func PanicHandler(logger logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer handleCrash(func(v interface{}) {
				if v == http.ErrAbortHandler {
					// The connection is gone, let net/http deal with it.
					panic(v)
				}

				logger.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  v,
				}).Error("http handler panic")

				w.WriteHeader(http.StatusInternalServerError)
			})

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func handleCrash(handler func(interface{})) {
	if v := recover(); v != nil {
		handler(v)
	}
}
