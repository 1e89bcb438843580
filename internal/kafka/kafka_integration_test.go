//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	cachemem "github.com/mkarpushin/shopfront/internal/cache/memory"
	"github.com/mkarpushin/shopfront/internal/domain"
	ikafka "github.com/mkarpushin/shopfront/internal/kafka"
	"github.com/mkarpushin/shopfront/internal/testutil"
	"github.com/mkarpushin/shopfront/internal/usecase"
	"github.com/mkarpushin/shopfront/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// Событие изменения товара из топика должно сбросить кэш каталога.
func TestKafka_ProductEvent_InvalidatesCatalogCache_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "shop-events-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	products := cachemem.NewProductQueryCache(100, time.Minute)
	orders := cachemem.NewOrderListCache(100, time.Minute)
	inv := usecase.NewCacheInvalidator(products, orders, logg)

	// предварительно заполняем кэш каталога
	products.Set(ctx, "warm", []domain.Product{{ID: "p1", Name: "Tee"}})
	if _, found := products.Get(ctx, "warm"); !found {
		t.Fatal("expected warm cache entry")
	}

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, inv, logg)
	t.Cleanup(func() { _ = consumer.Close() })

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе
	time.Sleep(1500 * time.Millisecond)

	raw, err := json.Marshal(domain.ChangeEvent{
		Entity: domain.EventEntityProduct,
		Action: domain.EventActionUpdated,
		ID:     "p1",
	})
	require.NoError(t, err)

	w := &kafka.Writer{
		Addr:         kafka.TCP(kf.Brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: raw}))

	// ждём, пока событие доедет и кэш будет сброшен
	require.Eventually(t, func() bool {
		_, found := products.Get(ctx, "warm")
		return !found
	}, 30*time.Second, 200*time.Millisecond, "catalog cache was not invalidated")
}
