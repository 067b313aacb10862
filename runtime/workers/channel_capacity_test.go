package workers

import (
	"chat-relay/observability"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestChannelCapacityWorker_Sample(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	// Given a queue holding 3 items out of 10
	queue := make(chan int, 10)
	for i := range 3 {
		queue <- i
	}

	worker := NewChannelCapacityWorker(log, metrics, []NamedChannel{
		{Name: "queue", Channel: queue},
		{Name: "not-a-channel", Channel: 42},
	}, time.Second)

	// When sampled
	worker.Sample()

	// Then gauges reflect the queue, the invalid entry is ignored
	req.Equal(float64(3), testutil.ToFloat64(metrics.QueueLength.WithLabelValues("queue")))
	req.Equal(float64(10), testutil.ToFloat64(metrics.QueueCapacity.WithLabelValues("queue")))
	req.Equal(1, testutil.CollectAndCount(metrics.QueueLength))
}
