// Command promroute-demo runs a small instrumented web service
// demonstrating the httpmetrics middleware stack. Scrape /metrics to
// watch the request instruments move.
package main

import (
	"context"
	"fmt"
	"net/http"
	"syscall"

	"github.com/go-chi/chi"
	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/promroute/promroute/cmdutil"
	"github.com/promroute/promroute/cmdutil/signals"
	"github.com/promroute/promroute/cmdutil/svclog"
	"github.com/promroute/promroute/hmiddleware"
	"github.com/promroute/promroute/httpmetrics"
)

type config struct {
	Logger svclog.Config

	Port                 int    `env:"PORT,default=8080"`
	MetricPrefix         string `env:"METRIC_PREFIX"`
	FilterUnhandledPaths bool   `env:"FILTER_UNHANDLED_PATHS,default=false"`
}

func main() {
	var cfg config
	envdecode.MustStrictDecode(&cfg)

	logger := svclog.NewLogger(cfg.Logger)

	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(hmiddleware.PanicHandler(logger))
	r.Use(hmiddleware.RequestID)
	r.Use(hmiddleware.PostRequestLogger(logger))

	opts := []httpmetrics.Option{httpmetrics.WithPrefix(cfg.MetricPrefix)}
	if cfg.FilterUnhandledPaths {
		opts = append(opts, httpmetrics.FilterUnhandledPaths())
	}
	mw := httpmetrics.New(reg, httpmetrics.RouteResolver(r), opts...)
	r.Use(mw.Handler)

	r.Method("GET", "/metrics", httpmetrics.Handler(reg))

	r.Get("/foo/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "Foo")
	})
	r.Get("/foo/{bar}/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Foo: %s\n", chi.URLParam(r, "bar"))
	})
	r.Get("/boom/", func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	})

	httpServer := cmdutil.NewHTTPServer(logger, &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	})

	ms := cmdutil.MultiServer(
		httpServer,
		signals.NewServer(logger, syscall.SIGINT, syscall.SIGTERM),
	)

	if err := ms.Run(); err != nil && err != context.Canceled {
		logger.WithError(err).Fatal()
	}
}
