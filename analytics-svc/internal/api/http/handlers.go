package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/report"
	"overcooked-analytics/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultTopN        = 5
	defaultLeaderboard = 10
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.postOrders).Methods("POST")
	r.HandleFunc("/api/orders/export", h.exportOrders).Methods("GET")
	r.HandleFunc("/api/snapshot/rebuild", h.postRebuild).Methods("POST")

	r.HandleFunc("/api/dishes/most-ordered", h.getMostOrdered).Methods("GET")
	r.HandleFunc("/api/dishes/top", h.getTopN).Methods("GET")
	r.HandleFunc("/api/dishes/tree", h.getTree).Methods("GET")
	r.HandleFunc("/api/dishes/tree/stats", h.getTreeStats).Methods("GET")
	r.HandleFunc("/api/dishes/leaderboard", h.getLeaderboard).Methods("GET")
	r.HandleFunc("/api/dishes/{name}/restaurants", h.getDishRestaurants).Methods("GET")
	r.HandleFunc("/api/dishes/{name}/qrcode", h.getDishQRCode).Methods("GET")

	r.HandleFunc("/api/graph/stats", h.getGraphStats).Methods("GET")
	r.HandleFunc("/api/graph/structure", h.getGraphStructure).Methods("GET")
	r.HandleFunc("/api/graph/most-connected", h.getMostConnected).Methods("GET")
	r.HandleFunc("/api/graph/bfs", h.getBFS).Methods("GET")
	r.HandleFunc("/api/graph/dfs", h.getDFS).Methods("GET")
}

// getOrders lists stored orders in date order, or the orders between start and end
// when both are given.
func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")

	if start == "" && end == "" {
		limit, err := intParam(r, "limit", 0)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		orders := h.Analytics.Orders(limit)
		if isText(r) {
			writeText(w, func() error { return report.WriteOrders(w, orders, false) })
			return
		}
		writeJSON(w, orders)
		return
	}
	if start == "" || end == "" {
		http.Error(w, "Both start and end are required", http.StatusBadRequest)
		return
	}

	summary := q.Get("summary") == "true"
	res, err := h.Analytics.FilterByDate(start, end, summary)
	if err != nil {
		writeError(w, err)
		return
	}
	if isText(r) {
		writeText(w, func() error { return report.WriteOrders(w, res.Orders, summary) })
		return
	}
	writeJSON(w, res)
}

func (h *Handler) postOrders(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	res, err := h.Analytics.Load(r.Context(), "http", r.Body)
	if err != nil && !errors.Is(err, domain.ErrCapacity) {
		writeError(w, err)
		return
	}
	if res.Accepted == 0 && res.Malformed > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(res)
		return
	}
	writeJSON(w, res)
}

// postRebuild forces a snapshot rebuild. A full vertex table still leaves a usable
// snapshot, so it is reported as a warning.
func (h *Handler) postRebuild(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "rebuilt"}
	if err := h.Analytics.Rebuild(r.Context()); err != nil {
		if !errors.Is(err, domain.ErrCapacity) {
			writeError(w, err)
			return
		}
		resp["warning"] = err.Error()
	}
	writeJSON(w, resp)
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	writeText(w, func() error { return h.Analytics.Export(w) })
}

func (h *Handler) getMostOrdered(w http.ResponseWriter, r *http.Request) {
	dishes := h.Analytics.MostOrdered()
	if isText(r) {
		writeText(w, func() error { return report.WriteMostOrdered(w, dishes) })
		return
	}
	writeJSON(w, dishes)
}

type rankedDish struct {
	Rank int `json:"rank"`
	domain.Dish
}

func (h *Handler) getTopN(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "n", defaultTopN)
	if err != nil || n <= 0 {
		http.Error(w, "n must be a positive integer", http.StatusBadRequest)
		return
	}

	dishes := h.Analytics.TopN(n)
	if isText(r) {
		writeText(w, func() error { return report.WriteTopN(w, n, dishes) })
		return
	}

	ranks := report.Ranks(dishes)
	ranked := make([]rankedDish, len(dishes))
	for i, d := range dishes {
		ranked[i] = rankedDish{Rank: ranks[i], Dish: d}
	}
	writeJSON(w, ranked)
}

func (h *Handler) getTree(w http.ResponseWriter, r *http.Request) {
	var descending bool
	switch r.URL.Query().Get("order") {
	case "", "desc":
		descending = true
	case "asc":
	default:
		http.Error(w, "order must be asc or desc", http.StatusBadRequest)
		return
	}

	buckets := h.Analytics.DishBuckets(descending)
	if isText(r) {
		writeText(w, func() error { return report.WriteBuckets(w, buckets, descending) })
		return
	}
	writeJSON(w, buckets)
}

func (h *Handler) getTreeStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Analytics.TreeStats()
	if isText(r) {
		writeText(w, func() error { return report.WriteTreeStats(w, stats) })
		return
	}
	writeJSON(w, stats)
}

func (h *Handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "n", defaultLeaderboard)
	if err != nil || n <= 0 {
		http.Error(w, "n must be a positive integer", http.StatusBadRequest)
		return
	}

	dishes, err := h.Analytics.Leaderboard(r.Context(), n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, dishes)
}

func (h *Handler) getDishRestaurants(w http.ResponseWriter, r *http.Request) {
	res, err := h.Analytics.RestaurantsForDish(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	if isText(r) {
		writeText(w, func() error { return report.WriteRestaurantsForDish(w, res) })
		return
	}
	writeJSON(w, res)
}

func (h *Handler) getDishQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Analytics.DishQRCode(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getGraphStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Analytics.GraphStats(r.Context())
	if isText(r) {
		writeText(w, func() error { return report.WriteGraphStats(w, stats) })
		return
	}
	writeJSON(w, stats)
}

func (h *Handler) getGraphStructure(w http.ResponseWriter, r *http.Request) {
	structure := h.Analytics.GraphStructure()
	if isText(r) {
		writeText(w, func() error { return report.WriteGraphStructure(w, structure) })
		return
	}
	writeJSON(w, structure)
}

func (h *Handler) getMostConnected(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Analytics.MostConnectedDish()
	if isText(r) {
		writeText(w, func() error { return report.WriteMostConnected(w, res) })
		return
	}
	if !ok {
		http.Error(w, "No dishes in the graph", http.StatusNotFound)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) getBFS(w http.ResponseWriter, r *http.Request) {
	h.traverse(w, r, "BFS", h.Analytics.BFS)
}

func (h *Handler) getDFS(w http.ResponseWriter, r *http.Request) {
	h.traverse(w, r, "DFS", h.Analytics.DFS)
}

func (h *Handler) traverse(w http.ResponseWriter, r *http.Request, name string, fn func(string) (*domain.Traversal, error)) {
	from := r.URL.Query().Get("from")
	if from == "" {
		http.Error(w, "from is required", http.StatusBadRequest)
		return
	}

	res, err := fn(from)
	if err != nil {
		writeError(w, err)
		return
	}
	if isText(r) {
		writeText(w, func() error { return report.WriteTraversal(w, name, res) })
		return
	}
	writeJSON(w, res)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidReference):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCapacity):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, fn func() error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := fn(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func isText(r *http.Request) bool {
	return r.URL.Query().Get("format") == "text"
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
