package tests

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "overcooked-analytics/analytics-svc/internal/api/http"
	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(mockSvc *mocks.AnalyticsInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func serve(router *mux.Router, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupTestRouter(mocks.NewAnalyticsInterface(t))

	w := serve(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetOrdersHandler(t *testing.T) {
	orders := []domain.Order{
		{DateText: "Jun 1 10:00:00", Restaurant: "A", Dish: "Pizza", Price: 10},
		{DateText: "Jun 2 10:00:00", Restaurant: "B", Dish: "Pizza", Price: 12},
	}

	tests := []struct {
		name         string
		target       string
		prepareMocks func(*mocks.AnalyticsInterface)
		wantCode     int
		wantBody     string
	}{
		{
			name:   "range",
			target: "/api/orders?start=Jun+1&end=Jun+2",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("FilterByDate", "Jun 1", "Jun 2", false).
					Return(&domain.RangeResult{Orders: orders}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"restaurant":"B"`,
		},
		{
			name:   "range as text with summary",
			target: "/api/orders?start=Jun+1&end=Jun+2&summary=true&format=text",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("FilterByDate", "Jun 1", "Jun 2", true).
					Return(&domain.RangeResult{Orders: orders}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "2 results found\nJun 1 10:00:00 A Pizza 10\n",
		},
		{
			name:   "invalid date",
			target: "/api/orders?start=x&end=Jun+10",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("FilterByDate", "x", "Jun 10", false).
					Return(nil, fmt.Errorf("start date: %w", domain.ErrInvalidDate)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "empty store",
			target: "/api/orders?start=Jun+1&end=Jun+2",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("FilterByDate", "Jun 1", "Jun 2", false).
					Return(nil, domain.ErrEmptyIndex).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:         "missing end",
			target:       "/api/orders?start=Jun+1",
			prepareMocks: func(*mocks.AnalyticsInterface) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:   "list with limit",
			target: "/api/orders?limit=1",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("Orders", 1).Return(orders[:1]).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"dish":"Pizza"`,
		},
		{
			name:         "bad limit",
			target:       "/api/orders?limit=ten",
			prepareMocks: func(*mocks.AnalyticsInterface) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodGet, testCase.target, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestPostOrdersHandler(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.LoadResult
		err      error
		wantCode int
	}{
		{
			name:     "accepted",
			result:   domain.LoadResult{Accepted: 2},
			wantCode: http.StatusOK,
		},
		{
			name:     "graph full still reports counts",
			result:   domain.LoadResult{Accepted: 2},
			err:      domain.ErrGraphFull,
			wantCode: http.StatusOK,
		},
		{
			name:     "nothing parsed",
			result:   domain.LoadResult{Malformed: 1},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "read error",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			mockSvc.On("Load", mock.Anything, "http", mock.Anything).
				Return(testCase.result, testCase.err).Once()
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodPost, "/api/orders", strings.NewReader("Jun 1 10:00:00 R:A O:Pizza(10)\n"))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestExportHandler(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("Export", mock.Anything).
		Run(func(args mock.Arguments) {
			io.WriteString(args.Get(0).(io.Writer), "Jun 1 10:00:00 R:A O:Pizza(10)\n")
		}).
		Return(nil).Once()
	router := setupTestRouter(mockSvc)

	w := serve(router, http.MethodGet, "/api/orders/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jun 1 10:00:00 R:A O:Pizza(10)\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestRebuildHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "rebuilt",
			wantCode: http.StatusOK,
			wantBody: `{"status":"rebuilt"}`,
		},
		{
			name:     "vertex table full",
			err:      fmt.Errorf("%w (limit 3)", domain.ErrGraphFull),
			wantCode: http.StatusOK,
			wantBody: `{"status":"rebuilt","warning":"capacity exceeded: graph vertex table is full (limit 3)"}`,
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			mockSvc.On("Rebuild", mock.Anything).Return(testCase.err).Once()
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodPost, "/api/snapshot/rebuild", nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestTopNHandler(t *testing.T) {
	dishes := []domain.Dish{
		{Name: "Pizza", TotalOrders: 3},
		{Name: "Taco", TotalOrders: 2},
		{Name: "Ramen", TotalOrders: 2},
	}

	tests := []struct {
		name         string
		target       string
		prepareMocks func(*mocks.AnalyticsInterface)
		wantCode     int
		wantBody     string
	}{
		{
			name:   "default n",
			target: "/api/dishes/top",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopN", 5).Return(dishes).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"rank":2,"name":"Ramen","total_orders":2}`,
		},
		{
			name:   "text ranking",
			target: "/api/dishes/top?n=2&format=text",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopN", 2).Return(dishes).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "2. Ramen (2 orders)",
		},
		{
			name:         "zero",
			target:       "/api/dishes/top?n=0",
			prepareMocks: func(*mocks.AnalyticsInterface) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodGet, testCase.target, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestTreeHandlers(t *testing.T) {
	buckets := []domain.DishBucket{
		{OrderCount: 2, Dishes: []domain.Dish{{Name: "Pizza", TotalOrders: 2}}},
		{OrderCount: 1, Dishes: []domain.Dish{{Name: "Taco", TotalOrders: 1}}},
	}

	tests := []struct {
		name         string
		target       string
		prepareMocks func(*mocks.AnalyticsInterface)
		wantCode     int
		wantBody     string
	}{
		{
			name:   "descending by default",
			target: "/api/dishes/tree?format=text",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("DishBuckets", true).Return(buckets).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "Orders: 2 | Dishes (1): Pizza\n",
		},
		{
			name:   "ascending",
			target: "/api/dishes/tree?order=asc",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("DishBuckets", false).Return(buckets).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"order_count":2`,
		},
		{
			name:         "bad order",
			target:       "/api/dishes/tree?order=sideways",
			prepareMocks: func(*mocks.AnalyticsInterface) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:   "stats",
			target: "/api/dishes/tree/stats?format=text",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TreeStats").Return(domain.TreeStats{Height: 2, NodeCount: 2, DishCount: 2, BalanceFactor: 1}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "Balance factor: 1\n",
		},
		{
			name:   "most ordered",
			target: "/api/dishes/most-ordered",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("MostOrdered").Return([]domain.Dish{{Name: "Pizza", TotalOrders: 2}}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[{"name":"Pizza","total_orders":2}]`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodGet, testCase.target, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestLeaderboardHandler(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("Leaderboard", mock.Anything, 3).
		Return([]domain.Dish{{Name: "Pizza", TotalOrders: 9}}, nil).Once()
	mockSvc.On("Leaderboard", mock.Anything, 10).
		Return(nil, errors.New("boom")).Once()
	router := setupTestRouter(mockSvc)

	w := serve(router, http.MethodGet, "/api/dishes/leaderboard?n=3", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Dish
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, []domain.Dish{{Name: "Pizza", TotalOrders: 9}}, got)

	w = serve(router, http.MethodGet, "/api/dishes/leaderboard", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDishRestaurantsHandler(t *testing.T) {
	tests := []struct {
		name     string
		dish     string
		result   *domain.DishRestaurants
		err      error
		wantCode int
	}{
		{
			name: "found",
			dish: "Pizza",
			result: &domain.DishRestaurants{
				Dish:        "Pizza",
				Restaurants: []domain.Neighbor{{VertexRef: domain.VertexRef{ID: 1, Name: "A", Kind: domain.KindRestaurant}, Weight: 1}},
				TotalOrders: 1,
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown dish",
			dish:     "Sushi",
			err:      fmt.Errorf("%w: %q", domain.ErrDishNotFound, "Sushi"),
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			mockSvc.On("RestaurantsForDish", testCase.dish).Return(testCase.result, testCase.err).Once()
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodGet, "/api/dishes/"+testCase.dish+"/restaurants", nil)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDishQRCodeHandler(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("DishQRCode", "Pizza").Return([]byte("\x89PNG"), nil).Once()
	mockSvc.On("DishQRCode", "Sushi").Return(nil, domain.ErrDishNotFound).Once()
	router := setupTestRouter(mockSvc)

	w := serve(router, http.MethodGet, "/api/dishes/Pizza/qrcode", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())

	w = serve(router, http.MethodGet, "/api/dishes/Sushi/qrcode", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGraphHandlers(t *testing.T) {
	pizza := domain.VertexRef{ID: 0, Name: "Pizza", Kind: domain.KindDish}
	a := domain.VertexRef{ID: 1, Name: "A", Kind: domain.KindRestaurant}

	tests := []struct {
		name         string
		target       string
		prepareMocks func(*mocks.AnalyticsInterface)
		wantCode     int
		wantBody     string
	}{
		{
			name:   "stats",
			target: "/api/graph/stats",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("GraphStats", mock.Anything).Return(domain.GraphStats{Vertices: 2, Dishes: 1, Restaurants: 1, Edges: 1, TotalWeight: 1, AverageWeight: 1}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"edges":1`,
		},
		{
			name:   "structure",
			target: "/api/graph/structure?format=text",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("GraphStructure").Return([]domain.VertexAdjacency{
					{VertexRef: pizza, Neighbors: []domain.Neighbor{{VertexRef: a, Weight: 1}}},
					{VertexRef: a, Neighbors: []domain.Neighbor{{VertexRef: pizza, Weight: 1}}},
				}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "Summary: 1 dishes, 1 restaurants",
		},
		{
			name:   "most connected",
			target: "/api/graph/most-connected",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("MostConnectedDish").Return(&domain.DishConnectivity{Dish: "Pizza", Degree: 1, TotalOrders: 1}, true).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"dish":"Pizza"`,
		},
		{
			name:   "most connected on empty graph",
			target: "/api/graph/most-connected",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("MostConnectedDish").Return(nil, false).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "bfs",
			target: "/api/graph/bfs?from=Pizza&format=text",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("BFS", "Pizza").Return(&domain.Traversal{
					Start:  pizza,
					Order:  []domain.VertexRef{pizza, a},
					Levels: [][]domain.VertexRef{{pizza}, {a}},
				}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "  Level 1: A(R)\n",
		},
		{
			name:   "dfs from unknown vertex",
			target: "/api/graph/dfs?from=Nope",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("DFS", "Nope").Return(nil, domain.ErrVertexNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:         "traversal without start",
			target:       "/api/graph/dfs",
			prepareMocks: func(*mocks.AnalyticsInterface) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			w := serve(router, http.MethodGet, testCase.target, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestNewRouterAllowsCORS(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	handler := httpapi.NewRouter(httpapi.NewHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
