package domain

import "time"

// Order is a single line of the order log. DateKey is derived from DateText once,
// when the line is parsed, and is only used for ordering and range comparison.
type Order struct {
	DateText   string `json:"date"`
	Restaurant string `json:"restaurant"`
	Dish       string `json:"dish"`
	Price      int    `json:"price"`
	DateKey    int64  `json:"date_key"`
}

// Dish is the running aggregate for one distinct dish name.
type Dish struct {
	Name        string `json:"name"`
	TotalOrders int    `json:"total_orders"`
}

// DishBucket groups every dish that shares the same order count.
type DishBucket struct {
	OrderCount int    `json:"order_count"`
	Dishes     []Dish `json:"dishes"`
}

// TreeNodeInfo describes one popularity tree node; children without a node are -1.
type TreeNodeInfo struct {
	OrderCount int `json:"order_count"`
	Left       int `json:"left"`
	Right      int `json:"right"`
}

type TreeStats struct {
	BalanceFactor int            `json:"balance_factor"`
	Height        int            `json:"height"`
	NodeCount     int            `json:"node_count"`
	DishCount     int            `json:"dish_count"`
	MaxOrderCount int            `json:"max_order_count"`
	Nodes         []TreeNodeInfo `json:"nodes"`
}

type RangeSummary struct {
	Count        int    `json:"count"`
	TotalRevenue int    `json:"total_revenue"`
	FirstDate    string `json:"first_date,omitempty"`
	LastDate     string `json:"last_date,omitempty"`
}

// RangeResult is the answer to a date-range query. Summary is only set when requested.
type RangeResult struct {
	StartKey int64         `json:"start_key"`
	EndKey   int64         `json:"end_key"`
	Orders   []Order       `json:"orders"`
	Summary  *RangeSummary `json:"summary,omitempty"`
}

// OrderRecord is an order as stored in the relational schema, before it is turned
// into a log line.
type OrderRecord struct {
	CreatedAt  time.Time
	Restaurant string
	Dish       string
	Price      float64
}

type LoadResult struct {
	Accepted  int `json:"accepted"`
	Malformed int `json:"malformed"`
	Dropped   int `json:"dropped"`
}

// KafkaMessage is exchanged on the order and snapshot topics.
type KafkaMessage struct {
	Type      string    `json:"type"`
	Line      string    `json:"line,omitempty"`
	Orders    int       `json:"orders,omitempty"`
	Dishes    int       `json:"dishes,omitempty"`
	Vertices  int       `json:"vertices,omitempty"`
	Edges     int       `json:"edges,omitempty"`
	TopDish   string    `json:"top_dish,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	MessageTypeOrderLine = "order_line"
	MessageTypeSnapshot  = "snapshot_rebuilt"
)
