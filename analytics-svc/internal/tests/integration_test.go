package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "overcooked-analytics/analytics-svc/internal/api/http"
	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/engine"
	"overcooked-analytics/analytics-svc/internal/service"
	"overcooked-analytics/analytics-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullOrderFlow drives the real service through the router with Redis backed by
// miniredis.
func TestFullOrderFlow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	svc := service.NewAnalyticsService(
		engine.New(engine.Options{}),
		storage.NewRedisCache(rdb, time.Hour),
		nil,
		service.DefaultQRGenerator{BaseURL: "http://localhost:8084"},
	)
	srv := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(svc)))
	t.Cleanup(srv.Close)

	get := func(t *testing.T, path string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	t.Run("IngestOrders", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/orders", "text/plain", strings.NewReader(sampleLog))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res domain.LoadResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, domain.LoadResult{Accepted: 3}, res)
	})

	t.Run("FilterByDate", func(t *testing.T) {
		resp, body := get(t, "/api/orders?start=Jun+1&end=Jun+2&format=text&summary=true")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "2 results found\nJun 1 10:00:00 A Pizza 10\nJun 2 10:00:00 B Pizza 12\n", body)

		resp, _ = get(t, "/api/orders?start=Jun+5&end=Jun+1")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("LeaderboardFromRedis", func(t *testing.T) {
		score, err := mr.ZScore(storage.LeaderboardKey, "Pizza")
		require.NoError(t, err)
		assert.Equal(t, float64(2), score)

		resp, body := get(t, "/api/dishes/leaderboard?n=1")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[{"name":"Pizza","total_orders":2}]`, body)
	})

	t.Run("GraphReports", func(t *testing.T) {
		resp, body := get(t, "/api/graph/bfs?from=Pizza&format=text")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "BFS from: Pizza (P)")

		resp, body = get(t, "/api/dishes/Taco/restaurants")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"name":"A"`)

		resp, _ = get(t, "/api/dishes/Sushi/restaurants")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("GraphStatsFromRedis", func(t *testing.T) {
		require.True(t, mr.Exists(storage.GraphStatsKey))
		mr.HSet(storage.GraphStatsKey, "most_connected_restaurant", "cached")

		resp, body := get(t, "/api/graph/stats")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"edges":3`)
		assert.Contains(t, body, `"most_connected_restaurant":"cached"`)

		mr.Del(storage.GraphStatsKey)
		_, body = get(t, "/api/graph/stats")
		assert.Contains(t, body, `"most_connected_restaurant":"A"`)
	})

	t.Run("Rebuild", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/snapshot/rebuild", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, mr.Exists(storage.GraphStatsKey))
	})

	t.Run("QRCode", func(t *testing.T) {
		resp, body := get(t, "/api/dishes/Pizza/qrcode")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		assert.True(t, strings.HasPrefix(body, "\x89PNG"))
	})

	t.Run("Metrics", func(t *testing.T) {
		resp, body := get(t, "/metrics")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "overcooked_analytics_orders_ingested_total")
	})
}
