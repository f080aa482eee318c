// Package dishgraph links dishes to the restaurants that sold them. Every observed
// (dish, restaurant) pair is an undirected edge weighted by how many orders it saw,
// stored as two reciprocal adjacency entries.
package dishgraph

import (
	"fmt"

	"overcooked-analytics/analytics-svc/internal/domain"
)

const (
	DefaultMaxVertices = 15000

	noEdge = -1
)

type vertex struct {
	name string
	kind domain.VertexKind
	head int
}

// edge is one direction of an undirected edge. Entries of a vertex form a singly
// linked list through next, newest first.
type edge struct {
	target int
	weight int
	next   int
}

type vertexKey struct {
	name string
	kind domain.VertexKind
}

type Graph struct {
	maxVertices int
	vertices    []vertex
	edges       []edge
	byKey       map[vertexKey]int
}

// New returns an empty graph holding at most maxVertices vertices. A non-positive
// limit selects DefaultMaxVertices.
func New(maxVertices int) *Graph {
	if maxVertices <= 0 {
		maxVertices = DefaultMaxVertices
	}
	return &Graph{
		maxVertices: maxVertices,
		byKey:       make(map[vertexKey]int),
	}
}

// GetOrCreateVertex returns the id of the (name, kind) vertex, creating it if needed.
// Ids are dense and never reused.
func (g *Graph) GetOrCreateVertex(name string, kind domain.VertexKind) (int, error) {
	key := vertexKey{name: name, kind: kind}
	if id, ok := g.byKey[key]; ok {
		return id, nil
	}
	if len(g.vertices) >= g.maxVertices {
		return 0, fmt.Errorf("%w (limit %d, adding %s %q)", domain.ErrGraphFull, g.maxVertices, kind, name)
	}

	id := len(g.vertices)
	g.vertices = append(g.vertices, vertex{name: name, kind: kind, head: noEdge})
	g.byKey[key] = id
	return id, nil
}

// AddEdge records one more observation of the a-b pair, creating the edge with weight
// 1 on first sight. Unknown ids and self loops are ignored.
func (g *Graph) AddEdge(a, b int) {
	if !g.valid(a) || !g.valid(b) || a == b {
		return
	}
	g.link(a, b)
	g.link(b, a)
}

func (g *Graph) link(from, to int) {
	if e := g.find(from, to); e != noEdge {
		g.edges[e].weight++
		return
	}
	g.edges = append(g.edges, edge{target: to, weight: 1, next: g.vertices[from].head})
	g.vertices[from].head = len(g.edges) - 1
}

func (g *Graph) find(from, to int) int {
	for e := g.vertices[from].head; e != noEdge; e = g.edges[e].next {
		if g.edges[e].target == to {
			return e
		}
	}
	return noEdge
}

func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// FindVertex returns the lowest id carrying name, whatever its kind.
func (g *Graph) FindVertex(name string) (int, bool) {
	for id, v := range g.vertices {
		if v.name == name {
			return id, true
		}
	}
	return 0, false
}

func (g *Graph) FindVertexOfKind(name string, kind domain.VertexKind) (int, bool) {
	id, ok := g.byKey[vertexKey{name: name, kind: kind}]
	return id, ok
}

func (g *Graph) ref(id int) domain.VertexRef {
	return domain.VertexRef{ID: id, Name: g.vertices[id].name, Kind: g.vertices[id].kind}
}

// Len is the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// EdgeCount is the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) / 2 }

// Neighbors lists the adjacency of id, newest edge first.
func (g *Graph) Neighbors(id int) []domain.Neighbor {
	out := []domain.Neighbor{}
	if !g.valid(id) {
		return out
	}
	for e := g.vertices[id].head; e != noEdge; e = g.edges[e].next {
		out = append(out, domain.Neighbor{VertexRef: g.ref(g.edges[e].target), Weight: g.edges[e].weight})
	}
	return out
}

// degree returns the number of neighbours of id and the sum of its edge weights.
func (g *Graph) degree(id int) (int, int) {
	n, w := 0, 0
	for e := g.vertices[id].head; e != noEdge; e = g.edges[e].next {
		n++
		w += g.edges[e].weight
	}
	return n, w
}

// BFS visits every vertex reachable from start, grouped by hop distance.
func (g *Graph) BFS(start int) (*domain.Traversal, error) {
	if !g.valid(start) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidStart, start)
	}

	visited := make([]bool, len(g.vertices))
	visited[start] = true
	queue := []int{start}
	result := &domain.Traversal{Start: g.ref(start)}

	for len(queue) > 0 {
		level := make([]domain.VertexRef, 0, len(queue))
		var next []int
		for _, id := range queue {
			level = append(level, g.ref(id))
			for e := g.vertices[id].head; e != noEdge; e = g.edges[e].next {
				if target := g.edges[e].target; !visited[target] {
					visited[target] = true
					next = append(next, target)
				}
			}
		}
		result.Levels = append(result.Levels, level)
		result.Order = append(result.Order, level...)
		queue = next
	}
	return result, nil
}

// DFS visits every vertex reachable from start in depth-first pre-order. Each stack
// frame keeps its position in the adjacency list, so the order is the same as the
// recursive formulation.
func (g *Graph) DFS(start int) (*domain.Traversal, error) {
	if !g.valid(start) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidStart, start)
	}

	type frame struct {
		vertex int
		cursor int
	}

	visited := make([]bool, len(g.vertices))
	visited[start] = true
	result := &domain.Traversal{Start: g.ref(start), Order: []domain.VertexRef{g.ref(start)}}
	stack := []frame{{vertex: start, cursor: g.vertices[start].head}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		for top.cursor != noEdge && visited[g.edges[top.cursor].target] {
			top.cursor = g.edges[top.cursor].next
		}
		if top.cursor == noEdge {
			stack = stack[:len(stack)-1]
			continue
		}

		target := g.edges[top.cursor].target
		top.cursor = g.edges[top.cursor].next
		visited[target] = true
		result.Order = append(result.Order, g.ref(target))
		stack = append(stack, frame{vertex: target, cursor: g.vertices[target].head})
	}
	return result, nil
}

// RestaurantsForDish lists the restaurants adjacent to the dish vertex called name,
// with the number of orders each one served.
func (g *Graph) RestaurantsForDish(name string) (*domain.DishRestaurants, error) {
	id, ok := g.FindVertexOfKind(name, domain.KindDish)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrDishNotFound, name)
	}

	result := &domain.DishRestaurants{Dish: name, Restaurants: g.Neighbors(id)}
	for _, n := range result.Restaurants {
		result.TotalOrders += n.Weight
	}
	return result, nil
}

// MostConnectedDish picks the dish sold by the most restaurants, breaking ties on the
// total number of orders and then on the lowest id. A dish with no edges never wins,
// so ok is false until some dish has been sold.
func (g *Graph) MostConnectedDish() (*domain.DishConnectivity, bool) {
	best, bestDegree, bestWeight := -1, 0, 0
	for id, v := range g.vertices {
		if v.kind != domain.KindDish {
			continue
		}
		d, w := g.degree(id)
		if d > bestDegree || (d == bestDegree && w > bestWeight) {
			best, bestDegree, bestWeight = id, d, w
		}
	}
	if best == -1 {
		return nil, false
	}
	return &domain.DishConnectivity{
		Dish:        g.vertices[best].name,
		Degree:      bestDegree,
		TotalOrders: bestWeight,
		Restaurants: g.Neighbors(best),
	}, true
}

// Stats summarises the graph. Each undirected edge is stored twice, so the weight sum
// over all adjacency entries is halved.
func (g *Graph) Stats() domain.GraphStats {
	stats := domain.GraphStats{Vertices: len(g.vertices), Edges: g.EdgeCount()}
	weight := 0
	for id, v := range g.vertices {
		d, w := g.degree(id)
		weight += w

		switch v.kind {
		case domain.KindDish:
			stats.Dishes++
			if d > stats.DishDegree {
				stats.DishDegree, stats.MostConnectedDish = d, v.name
			}
		case domain.KindRestaurant:
			stats.Restaurants++
			if d > stats.RestaurantDegree {
				stats.RestaurantDegree, stats.MostConnectedRestaurant = d, v.name
			}
		}
	}

	stats.TotalWeight = weight / 2
	if stats.Edges > 0 {
		stats.AverageWeight = float64(stats.TotalWeight) / float64(stats.Edges)
	}
	return stats
}

// Structure dumps every vertex with its adjacency, dishes before restaurants, each
// group in id order.
func (g *Graph) Structure() []domain.VertexAdjacency {
	out := make([]domain.VertexAdjacency, 0, len(g.vertices))
	for _, kind := range []domain.VertexKind{domain.KindDish, domain.KindRestaurant} {
		for id, v := range g.vertices {
			if v.kind == kind {
				out = append(out, domain.VertexAdjacency{VertexRef: g.ref(id), Neighbors: g.Neighbors(id)})
			}
		}
	}
	return out
}

// Reset drops all vertices and edges. Ids handed out before are no longer valid.
func (g *Graph) Reset() {
	g.vertices = nil
	g.edges = nil
	g.byKey = make(map[vertexKey]int)
}
