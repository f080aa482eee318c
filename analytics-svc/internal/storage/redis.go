package storage

import (
	"context"
	"strconv"
	"time"

	"overcooked-analytics/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	LeaderboardKey = "analytics:leaderboard"
	GraphStatsKey  = "analytics:graph"
)

// RedisCache keeps a copy of the latest snapshot's dish leaderboard (a sorted set of
// dish name by order count) and graph statistics (a hash).
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// StoreLeaderboard replaces the leaderboard with dishes.
func (c *RedisCache) StoreLeaderboard(ctx context.Context, dishes []domain.Dish) error {
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, LeaderboardKey)
		if len(dishes) == 0 {
			return nil
		}
		members := make([]redis.Z, len(dishes))
		for i, d := range dishes {
			members[i] = redis.Z{Score: float64(d.TotalOrders), Member: d.Name}
		}
		pipe.ZAdd(ctx, LeaderboardKey, members...)
		if c.TTL > 0 {
			pipe.Expire(ctx, LeaderboardKey, c.TTL)
		}
		return nil
	})
	return err
}

// Leaderboard returns the n most ordered dishes, highest first. Dishes with equal
// counts come back in reverse lexicographic order.
func (c *RedisCache) Leaderboard(ctx context.Context, n int) ([]domain.Dish, error) {
	if n <= 0 {
		return []domain.Dish{}, nil
	}
	result, err := c.Client.ZRevRangeWithScores(ctx, LeaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	dishes := make([]domain.Dish, 0, len(result))
	for _, member := range result {
		name, _ := member.Member.(string)
		dishes = append(dishes, domain.Dish{Name: name, TotalOrders: int(member.Score)})
	}
	return dishes, nil
}

func (c *RedisCache) StoreGraphStats(ctx context.Context, stats domain.GraphStats) error {
	if err := c.Client.HSet(ctx, GraphStatsKey, map[string]interface{}{
		"vertices":                  stats.Vertices,
		"dishes":                    stats.Dishes,
		"restaurants":               stats.Restaurants,
		"edges":                     stats.Edges,
		"total_weight":              stats.TotalWeight,
		"average_weight":            strconv.FormatFloat(stats.AverageWeight, 'f', -1, 64),
		"most_connected_dish":       stats.MostConnectedDish,
		"dish_degree":               stats.DishDegree,
		"most_connected_restaurant": stats.MostConnectedRestaurant,
		"restaurant_degree":         stats.RestaurantDegree,
		"last_updated":              time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	if c.TTL > 0 {
		return c.Client.Expire(ctx, GraphStatsKey, c.TTL).Err()
	}
	return nil
}

// GraphStats reads back the cached statistics. A missing hash is reported as
// redis.Nil.
func (c *RedisCache) GraphStats(ctx context.Context) (domain.GraphStats, error) {
	fields, err := c.Client.HGetAll(ctx, GraphStatsKey).Result()
	if err != nil {
		return domain.GraphStats{}, err
	}
	if len(fields) == 0 {
		return domain.GraphStats{}, redis.Nil
	}

	atoi := func(key string) int {
		n, _ := strconv.Atoi(fields[key])
		return n
	}
	avg, _ := strconv.ParseFloat(fields["average_weight"], 64)
	return domain.GraphStats{
		Vertices:                atoi("vertices"),
		Dishes:                  atoi("dishes"),
		Restaurants:             atoi("restaurants"),
		Edges:                   atoi("edges"),
		TotalWeight:             atoi("total_weight"),
		AverageWeight:           avg,
		MostConnectedDish:       fields["most_connected_dish"],
		DishDegree:              atoi("dish_degree"),
		MostConnectedRestaurant: fields["most_connected_restaurant"],
		RestaurantDegree:        atoi("restaurant_degree"),
	}, nil
}
