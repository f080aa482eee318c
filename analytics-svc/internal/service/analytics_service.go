package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/engine"
	"overcooked-analytics/analytics-svc/internal/metrics"
	"overcooked-analytics/analytics-svc/internal/orderlog"
)

// AnalyticsService guards an engine with a read/write lock. Ingestion marks the
// snapshot stale; the first read after that rebuilds it.
//
// cache and publisher are optional.
type AnalyticsService struct {
	mu        sync.RWMutex
	engine    *engine.Engine
	cache     SnapshotCache
	publisher SnapshotPublisher
	qr        QRGenerator
	ctx       context.Context
}

func NewAnalyticsService(eng *engine.Engine, cache SnapshotCache, publisher SnapshotPublisher, qr QRGenerator) *AnalyticsService {
	return &AnalyticsService{
		engine:    eng,
		cache:     cache,
		publisher: publisher,
		qr:        qr,
		ctx:       context.Background(),
	}
}

func (s *AnalyticsService) Load(ctx context.Context, source string, r io.Reader) (domain.LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.engine.Load(r)
	metrics.ObserveLoad(source, res)
	log.Printf("Loaded orders from %s: %d accepted, %d malformed, %d dropped", source, res.Accepted, res.Malformed, res.Dropped)
	if err != nil {
		return res, err
	}
	return res, s.rebuildLocked(ctx)
}

// LoadRecords pulls up to limit order records from src and rebuilds the snapshot.
func (s *AnalyticsService) LoadRecords(ctx context.Context, src OrderSource, limit int) (domain.LoadResult, error) {
	records, err := src.ListOrderRecords(ctx, limit)
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("list order records: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res domain.LoadResult
	for _, rec := range records {
		err := s.engine.Ingest(orderlog.FromRecord(rec))
		switch {
		case err == nil:
			res.Accepted++
		case errors.Is(err, domain.ErrCapacity):
			res.Dropped++
		default:
			res.Malformed++
		}
	}
	metrics.ObserveLoad("postgres", res)
	log.Printf("Loaded orders from postgres: %d accepted, %d malformed, %d dropped", res.Accepted, res.Malformed, res.Dropped)
	return res, s.rebuildLocked(ctx)
}

func (s *AnalyticsService) IngestLine(ctx context.Context, source, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.engine.IngestLine(line)
	metrics.ObserveIngest(source, err)
	return err
}

func (s *AnalyticsService) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuildLocked(ctx)
}

func (s *AnalyticsService) rebuildLocked(ctx context.Context) error {
	start := time.Now()
	buildErr := s.engine.Build()
	if buildErr != nil {
		log.Printf("Snapshot rebuilt with errors: %v", buildErr)
	}
	metrics.ObserveRebuild(start, s.engine.OrderCount())

	if err := s.engine.ValidateTree(); err != nil {
		log.Printf("Popularity tree failed validation: %v", err)
	}

	s.syncCache(ctx)
	s.publishSnapshot(ctx)
	return buildErr
}

func (s *AnalyticsService) syncCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.StoreLeaderboard(ctx, flatten(s.engine.DishesDescending())); err != nil {
		log.Printf("Error caching leaderboard: %v", err)
	}
	if err := s.cache.StoreGraphStats(ctx, s.engine.GraphStats()); err != nil {
		log.Printf("Error caching graph stats: %v", err)
	}
}

func (s *AnalyticsService) publishSnapshot(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	stats := s.engine.GraphStats()
	msg := domain.KafkaMessage{
		Type:      domain.MessageTypeSnapshot,
		Orders:    s.engine.OrderCount(),
		Dishes:    s.engine.DishCount(),
		Vertices:  stats.Vertices,
		Edges:     stats.Edges,
		Timestamp: time.Now(),
	}
	if top := s.engine.MostOrdered(); len(top) > 0 {
		msg.TopDish = top[0].Name
	}
	if err := s.publisher.PublishSnapshot(ctx, msg); err != nil {
		log.Printf("Error publishing snapshot: %v", err)
	}
}

func flatten(buckets []domain.DishBucket) []domain.Dish {
	var dishes []domain.Dish
	for _, b := range buckets {
		dishes = append(dishes, b.Dishes...)
	}
	return dishes
}

// refresh rebuilds the snapshot if orders arrived since the last build.
func (s *AnalyticsService) refresh() {
	s.mu.RLock()
	stale := s.engine.Stale()
	s.mu.RUnlock()
	if !stale {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.Stale() {
		_ = s.rebuildLocked(s.ctx)
	}
}

// read runs fn against a fresh snapshot under the read lock.
func (s *AnalyticsService) read(fn func(e *engine.Engine)) {
	s.refresh()
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.engine)
}

func (s *AnalyticsService) FilterByDate(start, end string, summary bool) (*domain.RangeResult, error) {
	var (
		res *domain.RangeResult
		err error
	)
	s.read(func(e *engine.Engine) {
		res, err = e.FilterByDate(start, end, summary)
	})
	metrics.RangeQueries.WithLabelValues(metrics.Outcome(err)).Inc()
	return res, err
}

func (s *AnalyticsService) Orders(limit int) []domain.Order {
	var orders []domain.Order
	s.read(func(e *engine.Engine) { orders = e.Orders(limit) })
	return orders
}

func (s *AnalyticsService) Export(w io.Writer) error {
	var err error
	s.read(func(e *engine.Engine) { err = e.Export(w) })
	return err
}

func (s *AnalyticsService) MostOrdered() []domain.Dish {
	var dishes []domain.Dish
	s.read(func(e *engine.Engine) { dishes = e.MostOrdered() })
	return dishes
}

func (s *AnalyticsService) TopN(n int) []domain.Dish {
	var dishes []domain.Dish
	s.read(func(e *engine.Engine) { dishes = e.TopN(n) })
	return dishes
}

func (s *AnalyticsService) DishBuckets(descending bool) []domain.DishBucket {
	var buckets []domain.DishBucket
	s.read(func(e *engine.Engine) {
		if descending {
			buckets = e.DishesDescending()
		} else {
			buckets = e.DishesAscending()
		}
	})
	return buckets
}

func (s *AnalyticsService) TreeStats() domain.TreeStats {
	var stats domain.TreeStats
	s.read(func(e *engine.Engine) { stats = e.TreeStats() })
	return stats
}

// Leaderboard serves from the cache when it has entries and falls back to the tree,
// where dishes tied with the n-th one are kept.
func (s *AnalyticsService) Leaderboard(ctx context.Context, n int) ([]domain.Dish, error) {
	if n <= 0 {
		return []domain.Dish{}, nil
	}
	s.refresh()

	if s.cache != nil {
		dishes, err := s.cache.Leaderboard(ctx, n)
		if err == nil && len(dishes) > 0 {
			return dishes, nil
		}
		if err != nil {
			log.Printf("Leaderboard cache unavailable, using in-memory tree: %v", err)
		}
	}

	var dishes []domain.Dish
	s.read(func(e *engine.Engine) { dishes = e.TopN(n) })
	return dishes, nil
}

func (s *AnalyticsService) RestaurantsForDish(name string) (*domain.DishRestaurants, error) {
	var (
		res *domain.DishRestaurants
		err error
	)
	s.read(func(e *engine.Engine) { res, err = e.RestaurantsForDish(name) })
	return res, err
}

// DishQRCode encodes a link to the restaurant report of a known dish.
func (s *AnalyticsService) DishQRCode(name string) ([]byte, error) {
	if _, err := s.RestaurantsForDish(name); err != nil {
		return nil, err
	}
	return s.qr.Generate(name)
}

func (s *AnalyticsService) MostConnectedDish() (*domain.DishConnectivity, bool) {
	var (
		res *domain.DishConnectivity
		ok  bool
	)
	s.read(func(e *engine.Engine) { res, ok = e.MostConnectedDish() })
	return res, ok
}

// GraphStats prefers the copy cached by the last rebuild and computes the figures
// from the graph when the cache is missing or unreachable.
func (s *AnalyticsService) GraphStats(ctx context.Context) domain.GraphStats {
	s.refresh()

	if s.cache != nil {
		stats, err := s.cache.GraphStats(ctx)
		if err == nil {
			return stats
		}
		log.Printf("Graph stats cache miss, computing from graph: %v", err)
	}

	var stats domain.GraphStats
	s.read(func(e *engine.Engine) { stats = e.GraphStats() })
	return stats
}

func (s *AnalyticsService) GraphStructure() []domain.VertexAdjacency {
	var structure []domain.VertexAdjacency
	s.read(func(e *engine.Engine) { structure = e.GraphStructure() })
	return structure
}

func (s *AnalyticsService) BFS(name string) (*domain.Traversal, error) {
	var (
		res *domain.Traversal
		err error
	)
	s.read(func(e *engine.Engine) { res, err = e.BFS(name) })
	return res, err
}

func (s *AnalyticsService) DFS(name string) (*domain.Traversal, error) {
	var (
		res *domain.Traversal
		err error
	)
	s.read(func(e *engine.Engine) { res, err = e.DFS(name) })
	return res, err
}
