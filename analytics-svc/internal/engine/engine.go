// Package engine ties the order store to its three derived views: the chronological
// index, the dish popularity tree and the dish-restaurant graph. Views are snapshots;
// they only reflect orders ingested before the last Build.
//
// An Engine is not safe for concurrent use.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"overcooked-analytics/analytics-svc/internal/dishgraph"
	"overcooked-analytics/analytics-svc/internal/dishtree"
	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/index"
	"overcooked-analytics/analytics-svc/internal/orderlog"
	"overcooked-analytics/analytics-svc/internal/store"
)

type Options struct {
	MaxOrders   int
	MaxVertices int
}

type Engine struct {
	opts    Options
	records *store.Records
	index   *index.Sorted
	tree    *dishtree.Tree
	graph   *dishgraph.Graph
	stale   bool
}

func New(opts Options) *Engine {
	if opts.MaxOrders <= 0 {
		opts.MaxOrders = store.DefaultMaxOrders
	}
	if opts.MaxVertices <= 0 {
		opts.MaxVertices = dishgraph.DefaultMaxVertices
	}
	return &Engine{
		opts:    opts,
		records: store.New(opts.MaxOrders),
		index:   index.New(nil),
		tree:    dishtree.New(),
		graph:   dishgraph.New(opts.MaxVertices),
	}
}

// Load ingests every line of r. Malformed lines are skipped and counted; once the
// store is full the remaining lines are counted as dropped. Only read errors are
// returned.
func (e *Engine) Load(r io.Reader) (domain.LoadResult, error) {
	var res domain.LoadResult
	err := orderlog.Scan(r, func(lineNo int, line string) error {
		if e.records.Full() {
			if res.Dropped == 0 {
				log.Printf("Order store full (%d orders), dropping the rest of the input from line %d", e.records.Cap(), lineNo)
			}
			res.Dropped++
			return nil
		}

		err := e.IngestLine(line)
		switch {
		case err == nil:
			res.Accepted++
		case errors.Is(err, domain.ErrInvalidInput):
			log.Printf("Skipping line %d: %v", lineNo, err)
			res.Malformed++
		default:
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return nil
	})
	return res, err
}

// IngestLine parses and stores one log line.
func (e *Engine) IngestLine(line string) error {
	order, err := orderlog.ParseLine(line)
	if err != nil {
		return err
	}
	return e.Ingest(order)
}

func (e *Engine) Ingest(order domain.Order) error {
	if err := e.records.Add(order); err != nil {
		return err
	}
	e.stale = true
	return nil
}

// Stale reports whether orders were ingested since the last Build.
func (e *Engine) Stale() bool { return e.stale }

// Build sorts the index and rebuilds the tree and the graph from scratch. An order
// whose dish or restaurant no longer fits in the graph is left out of it and the build
// goes on, so pairs that already have both vertices keep counting; the first
// ErrGraphFull is returned. The index and the tree are complete either way.
func (e *Engine) Build() error {
	e.index = index.New(e.records.Orders())
	e.index.Sort()

	e.tree = dishtree.New()
	for _, d := range e.records.Dishes() {
		e.tree.Insert(d)
	}

	e.graph.Reset()
	var (
		graphErr error
		skipped  int
	)
	for _, o := range e.index.Orders() {
		if err := e.addSale(o); err != nil {
			if graphErr == nil {
				graphErr = err
			}
			skipped++
		}
	}
	if skipped > 0 {
		log.Printf("Graph vertex table full, %d orders left out of the graph: %v", skipped, graphErr)
	}

	e.stale = false
	return graphErr
}

// addSale links the order's dish and restaurant, creating their vertices on first
// sight. A dish created just before the restaurant overflowed stays without edges.
func (e *Engine) addSale(o domain.Order) error {
	dish, err := e.graph.GetOrCreateVertex(o.Dish, domain.KindDish)
	if err != nil {
		return err
	}
	restaurant, err := e.graph.GetOrCreateVertex(o.Restaurant, domain.KindRestaurant)
	if err != nil {
		return err
	}
	e.graph.AddEdge(dish, restaurant)
	return nil
}

// FilterByDate returns the orders stamped between start and end, both inclusive. A
// start without a time means the first second of that day, an end without a time the
// last one.
func (e *Engine) FilterByDate(start, end string, wantSummary bool) (*domain.RangeResult, error) {
	if e.index.Len() == 0 {
		return nil, domain.ErrEmptyIndex
	}

	startKey, err := orderlog.ParseDateKey(start, false)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	endKey, err := orderlog.ParseDateKey(end, true)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	orders, err := e.index.Range(startKey, endKey)
	if err != nil {
		return nil, err
	}

	res := &domain.RangeResult{
		StartKey: startKey,
		EndKey:   endKey,
		Orders:   append([]domain.Order{}, orders...),
	}
	if wantSummary {
		res.Summary = summarize(res.Orders)
	}
	return res, nil
}

func summarize(orders []domain.Order) *domain.RangeSummary {
	s := &domain.RangeSummary{Count: len(orders)}
	for _, o := range orders {
		s.TotalRevenue += o.Price
	}
	if len(orders) > 0 {
		s.FirstDate = orders[0].DateText
		s.LastDate = orders[len(orders)-1].DateText
	}
	return s
}

// Export writes the indexed orders as log lines, oldest first.
func (e *Engine) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, o := range e.index.Orders() {
		if _, err := fmt.Fprintln(bw, orderlog.FormatLine(o)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Orders returns up to limit indexed orders from the oldest; limit <= 0 means all.
func (e *Engine) Orders(limit int) []domain.Order {
	all := e.index.Orders()
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return append([]domain.Order{}, all...)
}

func (e *Engine) OrderCount() int { return e.records.Len() }
func (e *Engine) DishCount() int  { return e.records.DishCount() }

func (e *Engine) MostOrdered() []domain.Dish            { return e.tree.MostOrdered() }
func (e *Engine) TopN(n int) []domain.Dish              { return e.tree.TopN(n) }
func (e *Engine) DishesAscending() []domain.DishBucket  { return e.tree.Ascending() }
func (e *Engine) DishesDescending() []domain.DishBucket { return e.tree.Descending() }
func (e *Engine) TreeStats() domain.TreeStats           { return e.tree.Stats() }

// ValidateTree checks the popularity tree invariants.
func (e *Engine) ValidateTree() error { return e.tree.Validate() }

func (e *Engine) RestaurantsForDish(name string) (*domain.DishRestaurants, error) {
	return e.graph.RestaurantsForDish(name)
}

func (e *Engine) MostConnectedDish() (*domain.DishConnectivity, bool) {
	return e.graph.MostConnectedDish()
}

func (e *Engine) GraphStats() domain.GraphStats            { return e.graph.Stats() }
func (e *Engine) GraphStructure() []domain.VertexAdjacency { return e.graph.Structure() }

// BFS starts a breadth-first traversal at the first vertex called name.
func (e *Engine) BFS(name string) (*domain.Traversal, error) {
	id, ok := e.graph.FindVertex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrVertexNotFound, name)
	}
	return e.graph.BFS(id)
}

// DFS starts a depth-first traversal at the first vertex called name.
func (e *Engine) DFS(name string) (*domain.Traversal, error) {
	id, ok := e.graph.FindVertex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrVertexNotFound, name)
	}
	return e.graph.DFS(id)
}
