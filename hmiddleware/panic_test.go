package hmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promroute/promroute/testing/testlog"
)

func TestPanicHandler(t *testing.T) {
	logger, hook := testlog.New()

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	PanicHandler(logger)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %v, want %v", w.Code, http.StatusInternalServerError)
	}

	hook.CheckAllContained(t,
		"http handler panic",
		"panic=kaboom",
		"path=/x",
		"method=GET",
	)
}

func TestPanicHandlerPassthrough(t *testing.T) {
	logger, hook := testlog.New()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	PanicHandler(logger)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %v, want %v", w.Code, http.StatusTeapot)
	}
	if e := hook.LastEntry(); e != nil {
		t.Errorf("expected no log entries, got %v", e.Message)
	}
}

func TestPanicHandlerAbortHandler(t *testing.T) {
	logger, _ := testlog.New()

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler to propagate", v)
		}
	}()

	PanicHandler(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}
