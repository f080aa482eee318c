package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpapi "overcooked-analytics/analytics-svc/internal/api/http"
	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/engine"
	"overcooked-analytics/analytics-svc/internal/report"
	"overcooked-analytics/analytics-svc/internal/service"
	"overcooked-analytics/analytics-svc/internal/storage"
	"overcooked-analytics/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache service.SnapshotCache
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.RedisTTL)
	}

	var publisher service.SnapshotPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaSnapshotTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	eng := engine.New(engine.Options{MaxOrders: cfg.MaxOrders, MaxVertices: cfg.MaxVertices})
	svc := service.NewAnalyticsService(eng, cache, publisher, service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL})

	if _, err := loadOrders(ctx, cfg, svc); err != nil {
		log.Printf("Error loading orders: %v", err)
	}
	if err := writeSorted(cfg.SortedOutputFile, svc); err != nil {
		log.Printf("Error writing %s: %v", cfg.SortedOutputFile, err)
	}

	fmt.Printf("First %d orders:\n", report.PreviewSize)
	if err := report.WritePreview(os.Stdout, svc.Orders(report.PreviewSize)); err != nil {
		log.Printf("Error printing preview: %v", err)
	}

	if cfg.KafkaBroker != "" {
		reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.KafkaOrdersTopic, cfg.KafkaGroupID)
		defer reader.Close()
		go service.NewConsumer(reader, svc).Start(ctx)
	}

	router := httpapi.NewRouter(httpapi.NewHandler(svc))
	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}

// loadOrders fills the service from Postgres when it is configured, otherwise from the
// orders file.
func loadOrders(ctx context.Context, cfg config.Config, svc *service.AnalyticsService) (domain.LoadResult, error) {
	if cfg.PostgresDSN != "" {
		db := config.MustInitPostgres(cfg.PostgresDSN)
		defer db.Close()
		return svc.LoadRecords(ctx, storage.NewPostgresSource(db), cfg.PostgresLimit)
	}

	f, err := os.Open(cfg.OrdersFile)
	if err != nil {
		return domain.LoadResult{}, err
	}
	defer f.Close()
	return svc.Load(ctx, "file", f)
}

func writeSorted(path string, svc *service.AnalyticsService) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svc.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
