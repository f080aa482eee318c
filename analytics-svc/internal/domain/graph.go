package domain

import "fmt"

// VertexKind tags a graph vertex; a dish and a restaurant may share a name.
type VertexKind int

const (
	KindDish VertexKind = iota
	KindRestaurant
)

func (k VertexKind) String() string {
	switch k {
	case KindDish:
		return "dish"
	case KindRestaurant:
		return "restaurant"
	default:
		return "unknown"
	}
}

// Tag is the one-letter marker used in traversal traces.
func (k VertexKind) Tag() string {
	if k == KindRestaurant {
		return "R"
	}
	return "P"
}

func (k VertexKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *VertexKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dish":
		*k = KindDish
	case "restaurant":
		*k = KindRestaurant
	default:
		return fmt.Errorf("unknown vertex kind %q", text)
	}
	return nil
}

type VertexRef struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Kind VertexKind `json:"kind"`
}

type Neighbor struct {
	VertexRef
	Weight int `json:"weight"`
}

// VertexAdjacency is one vertex together with its adjacency list, in list order.
type VertexAdjacency struct {
	VertexRef
	Neighbors []Neighbor `json:"neighbors"`
}

// Traversal holds a BFS or DFS result. BFS fills Levels (hop distance from Start);
// both fill Order with the visiting sequence.
type Traversal struct {
	Start  VertexRef     `json:"start"`
	Order  []VertexRef   `json:"order"`
	Levels [][]VertexRef `json:"levels,omitempty"`
}

type DishRestaurants struct {
	Dish        string     `json:"dish"`
	Restaurants []Neighbor `json:"restaurants"`
	TotalOrders int        `json:"total_orders"`
}

type DishConnectivity struct {
	Dish        string     `json:"dish"`
	Degree      int        `json:"degree"`
	TotalOrders int        `json:"total_orders"`
	Restaurants []Neighbor `json:"restaurants"`
}

type GraphStats struct {
	Vertices                int     `json:"vertices"`
	Dishes                  int     `json:"dishes"`
	Restaurants             int     `json:"restaurants"`
	Edges                   int     `json:"edges"`
	TotalWeight             int     `json:"total_weight"`
	AverageWeight           float64 `json:"average_weight"`
	MostConnectedDish       string  `json:"most_connected_dish"`
	DishDegree              int     `json:"dish_degree"`
	MostConnectedRestaurant string  `json:"most_connected_restaurant"`
	RestaurantDegree        int     `json:"restaurant_degree"`
}
