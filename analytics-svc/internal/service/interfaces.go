package service

import (
	"context"
	"io"

	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/storage"
)

//go:generate mockery --all --output ../mocks

type AnalyticsInterface interface {
	Load(ctx context.Context, source string, r io.Reader) (domain.LoadResult, error)
	IngestLine(ctx context.Context, source, line string) error
	Rebuild(ctx context.Context) error

	FilterByDate(start, end string, summary bool) (*domain.RangeResult, error)
	Orders(limit int) []domain.Order
	Export(w io.Writer) error

	MostOrdered() []domain.Dish
	TopN(n int) []domain.Dish
	DishBuckets(descending bool) []domain.DishBucket
	TreeStats() domain.TreeStats
	Leaderboard(ctx context.Context, n int) ([]domain.Dish, error)

	RestaurantsForDish(name string) (*domain.DishRestaurants, error)
	DishQRCode(name string) ([]byte, error)
	MostConnectedDish() (*domain.DishConnectivity, bool)
	GraphStats(ctx context.Context) domain.GraphStats
	GraphStructure() []domain.VertexAdjacency
	BFS(name string) (*domain.Traversal, error)
	DFS(name string) (*domain.Traversal, error)
}

type OrderSource interface {
	ListOrderRecords(ctx context.Context, limit int) ([]domain.OrderRecord, error)
}

type SnapshotCache interface {
	StoreLeaderboard(ctx context.Context, dishes []domain.Dish) error
	Leaderboard(ctx context.Context, n int) ([]domain.Dish, error)
	StoreGraphStats(ctx context.Context, stats domain.GraphStats) error
	GraphStats(ctx context.Context) (domain.GraphStats, error)
}

type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, msg domain.KafkaMessage) error
}

type OrderIngester interface {
	IngestLine(ctx context.Context, source, line string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessMessage(ctx context.Context, msg domain.KafkaMessage)
}

var (
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ OrderIngester      = (*AnalyticsService)(nil)
	_ ConsumerInterface  = (*Consumer)(nil)
	_ OrderSource        = (*storage.PostgresSource)(nil)
	_ SnapshotCache      = (*storage.RedisCache)(nil)
	_ SnapshotPublisher  = (*storage.KafkaPublisher)(nil)
	_ QRGenerator        = DefaultQRGenerator{}
)
