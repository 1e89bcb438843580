package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mkarpushin/shopfront/pkg/metrics"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("shop.events"))
	metrics.KafkaMessagesConsumed.WithLabelValues("shop.events").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("shop.events")); got != before+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, before+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("products", "hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("products", "miss"))

	metrics.CacheOps.WithLabelValues("products", "hit").Inc()
	metrics.CacheOps.WithLabelValues("products", "hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("products", "hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(products,hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("products", "miss")); got != missBefore {
		t.Fatalf("CacheOps(products,miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize.WithLabelValues("orders"))

	metrics.CacheSize.WithLabelValues("orders").Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize.WithLabelValues("orders")); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.WithLabelValues("orders").Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize.WithLabelValues("orders")); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}

func TestUpstreamRequests_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("GET", "2xx"))
	metrics.UpstreamRequests.WithLabelValues("GET", "2xx").Inc()

	if got := testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("GET", "2xx")); got != before+1 {
		t.Fatalf("UpstreamRequests: got=%v want=%v", got, before+1)
	}
}
