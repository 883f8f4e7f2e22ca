package signals

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/promroute/promroute/testing/testlog"
)

func TestWithNotifyCancel(t *testing.T) {
	notified := make(chan os.Signal, 1)
	ctx := notifyContext(context.Background(), notified, syscall.SIGINT)

	notified <- syscall.SIGINT
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected ctx to be canceled")
	}
}

// Ensure Run returns when Stop is called, even if no signal
// has been received.
func TestNewServerNoSignal(t *testing.T) {
	logger, _ := testlog.New()

	sv := NewServer(logger, syscall.SIGWINCH)

	var runErr error
	done := make(chan struct{})

	go func() {
		runErr = sv.Run()
		close(done)
	}()

	sv.Stop(nil)
	<-done

	if runErr != nil {
		t.Fatalf("got Run error %+v, want no error", runErr)
	}
}
