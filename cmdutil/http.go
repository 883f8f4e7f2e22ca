package cmdutil

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const shutdownGrace = 30 * time.Second

// NewHTTPServer adapts an http.Server to a Server. Stop drains in-flight
// requests for up to 30 seconds before giving up.
func NewHTTPServer(l logrus.FieldLogger, srv *http.Server) Server {
	return ServerFuncs{
		RunFunc: func() error {
			l.WithFields(logrus.Fields{
				"at":   "binding",
				"addr": srv.Addr,
			}).Info()

			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errors.Wrap(err, "listening to tcp addr")
			}
			defer ln.Close()

			if err := srv.Serve(ln); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
		StopFunc: func(error) {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				l.WithError(err).Error("error shutting down http server")
			}
		},
	}
}
