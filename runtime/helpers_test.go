package runtime

import (
	"chat-relay/domain/event"
	"chat-relay/observability"
	"chat-relay/sink"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func testLog() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func testMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.NewRegistry())
}

// next waits for the next event delivered to s.
func next(t *testing.T, s *sink.SessionSink) event.Outbound {
	t.Helper()
	select {
	case e := <-s.Events():
		return e
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no event received")
		return nil
	}
}

// silent checks nothing reaches s for a short while.
func silent(t *testing.T, s *sink.SessionSink) {
	t.Helper()
	select {
	case e := <-s.Events():
		require.FailNow(t, "unexpected event", "%#v", e)
	case <-time.After(100 * time.Millisecond):
	}
}
