// Package report renders analytics results as plain text, one line per item. The
// HTTP API serves it when a client asks for format=text, and the binary prints it at
// start-up.
package report

import (
	"fmt"
	"io"
	"strings"

	"overcooked-analytics/analytics-svc/internal/domain"
)

const (
	PreviewSize = 10
	rule        = "---------------------------------------------------"
)

func flush(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteOrders lists orders as "<date> <restaurant> <dish> <price>", preceded by a
// result count when details is set.
func WriteOrders(w io.Writer, orders []domain.Order, details bool) error {
	var b strings.Builder
	if details {
		fmt.Fprintf(&b, "%d results found\n", len(orders))
	}
	for _, o := range orders {
		fmt.Fprintf(&b, "%s %s %s %d\n", o.DateText, o.Restaurant, o.Dish, o.Price)
	}
	return flush(w, &b)
}

// WritePreview prints the first PreviewSize orders with their date keys.
func WritePreview(w io.Writer, orders []domain.Order) error {
	var b strings.Builder
	for i, o := range orders {
		if i == PreviewSize {
			break
		}
		fmt.Fprintf(&b, "Order %d:\n", i+1)
		fmt.Fprintf(&b, "  Date: %s\n", o.DateText)
		fmt.Fprintf(&b, "  Restaurant: %s\n", o.Restaurant)
		fmt.Fprintf(&b, "  Dish: %s\n", o.Dish)
		fmt.Fprintf(&b, "  Price: %d\n", o.Price)
		fmt.Fprintf(&b, "  Date (comparable): %d\n", o.DateKey)
		b.WriteString("----------------------------------------\n")
	}
	return flush(w, &b)
}

// WriteBuckets prints one line per order count. Descending output also shows how many
// dishes share the count.
func WriteBuckets(w io.Writer, buckets []domain.DishBucket, descending bool) error {
	var b strings.Builder
	for _, bucket := range buckets {
		names := dishNames(bucket.Dishes)
		if descending {
			fmt.Fprintf(&b, "Orders: %d | Dishes (%d): %s\n", bucket.OrderCount, len(names), strings.Join(names, ", "))
			continue
		}
		fmt.Fprintf(&b, "Orders: %d | Dishes: %s\n", bucket.OrderCount, strings.Join(names, ", "))
	}
	return flush(w, &b)
}

func WriteTreeStats(w io.Writer, stats domain.TreeStats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Balance factor: %d\n", stats.BalanceFactor)
	fmt.Fprintf(&b, "Height: %d\n", stats.Height)
	fmt.Fprintf(&b, "Nodes: %d, dishes: %d\n", stats.NodeCount, stats.DishCount)
	for _, n := range stats.Nodes {
		fmt.Fprintf(&b, "%d | left: %d | right: %d\n", n.OrderCount, n.Left, n.Right)
	}
	return flush(w, &b)
}

func WriteMostOrdered(w io.Writer, dishes []domain.Dish) error {
	var b strings.Builder
	switch len(dishes) {
	case 0:
		b.WriteString("No dishes recorded.\n")
	case 1:
		fmt.Fprintf(&b, "Order count: %d\n", dishes[0].TotalOrders)
		fmt.Fprintf(&b, "Most ordered dish: %s\n", dishes[0].Name)
	default:
		fmt.Fprintf(&b, "Order count: %d\n", dishes[0].TotalOrders)
		fmt.Fprintf(&b, "These %d dishes share the highest order count:\n", len(dishes))
		for i, d := range dishes {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, d.Name)
		}
	}
	return flush(w, &b)
}

// WriteTopN prints a ranking in which tied dishes share the rank of the first of them
// ("1, 2, 2, 4").
func WriteTopN(w io.Writer, n int, dishes []domain.Dish) error {
	var b strings.Builder
	if len(dishes) == 0 {
		b.WriteString("No dishes recorded.\n")
		return flush(w, &b)
	}

	fmt.Fprintf(&b, "Top %d most ordered dishes\n", n)
	fmt.Fprintf(&b, "%d dishes found\n", len(dishes))
	b.WriteString(rule + "\n")
	for i, rank := range Ranks(dishes) {
		fmt.Fprintf(&b, "%d. %s (%d orders)\n", rank, dishes[i].Name, dishes[i].TotalOrders)
	}
	return flush(w, &b)
}

// Ranks assigns competition ranks to dishes sorted by descending order count.
func Ranks(dishes []domain.Dish) []int {
	ranks := make([]int, len(dishes))
	for i, d := range dishes {
		if i > 0 && d.TotalOrders == dishes[i-1].TotalOrders {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}

func WriteGraphStructure(w io.Writer, vertices []domain.VertexAdjacency) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total vertices: %d\n", len(vertices))

	dishes, restaurants := 0, 0
	section := domain.VertexKind(-1)
	for _, v := range vertices {
		if v.Kind != section {
			section = v.Kind
			if section == domain.KindDish {
				b.WriteString("\n--- DISHES ---\n")
			} else {
				b.WriteString("\n--- RESTAURANTS ---\n")
			}
		}

		if v.Kind == domain.KindDish {
			dishes++
			fmt.Fprintf(&b, "[DISH] %s (ID: %d)\n", v.Name, v.ID)
		} else {
			restaurants++
			fmt.Fprintf(&b, "[RESTAURANT] %s (ID: %d)\n", v.Name, v.ID)
		}
		if len(v.Neighbors) == 0 {
			b.WriteString("    (no connections)\n")
		}
		for _, n := range v.Neighbors {
			fmt.Fprintf(&b, "    <-> %s (orders: %d)\n", n.Name, n.Weight)
		}
	}

	fmt.Fprintf(&b, "\nSummary: %d dishes, %d restaurants\n", dishes, restaurants)
	return flush(w, &b)
}

func WriteGraphStats(w io.Writer, stats domain.GraphStats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Vertices: %d\n", stats.Vertices)
	fmt.Fprintf(&b, "  - Dishes: %d\n", stats.Dishes)
	fmt.Fprintf(&b, "  - Restaurants: %d\n", stats.Restaurants)
	fmt.Fprintf(&b, "Edges: %d\n", stats.Edges)
	fmt.Fprintf(&b, "Total weight (orders): %d\n", stats.TotalWeight)
	if stats.Edges > 0 {
		fmt.Fprintf(&b, "Average weight per edge: %.2f\n", stats.AverageWeight)
	}
	fmt.Fprintf(&b, "Most connected dish: %s (%d restaurants)\n", stats.MostConnectedDish, stats.DishDegree)
	fmt.Fprintf(&b, "Most connected restaurant: %s (%d dishes)\n", stats.MostConnectedRestaurant, stats.RestaurantDegree)
	return flush(w, &b)
}

func WriteRestaurantsForDish(w io.Writer, res *domain.DishRestaurants) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurants selling %s\n", res.Dish)
	for _, r := range res.Restaurants {
		fmt.Fprintf(&b, "  %s - %d orders\n", r.Name, r.Weight)
	}
	if len(res.Restaurants) == 0 {
		b.WriteString("  (no restaurants)\n")
	} else {
		fmt.Fprintf(&b, "Total: %d restaurants, %d orders\n", len(res.Restaurants), res.TotalOrders)
	}
	return flush(w, &b)
}

// WriteTraversal prints a BFS result level by level, or a DFS result on one line when
// the traversal has no levels.
func WriteTraversal(w io.Writer, name string, t *domain.Traversal) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s from: %s (%s)\n", name, t.Start.Name, t.Start.Kind.Tag())
	if len(t.Levels) > 0 {
		for i, level := range t.Levels {
			fmt.Fprintf(&b, "  Level %d: %s\n", i, strings.Join(tagged(level), ", "))
		}
	} else {
		fmt.Fprintf(&b, "  %s\n", strings.Join(tagged(t.Order), " "))
	}
	return flush(w, &b)
}

func WriteMostConnected(w io.Writer, res *domain.DishConnectivity) error {
	var b strings.Builder
	if res == nil {
		b.WriteString("No dishes in the graph.\n")
		return flush(w, &b)
	}
	fmt.Fprintf(&b, "Name: %s\n", res.Dish)
	fmt.Fprintf(&b, "Restaurants: %d\n", res.Degree)
	fmt.Fprintf(&b, "Total orders: %d\n", res.TotalOrders)
	for _, r := range res.Restaurants {
		fmt.Fprintf(&b, "  -> %s (%d orders)\n", r.Name, r.Weight)
	}
	return flush(w, &b)
}

func tagged(refs []domain.VertexRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name + "(" + r.Kind.Tag() + ")"
	}
	return out
}

func dishNames(dishes []domain.Dish) []string {
	out := make([]string, len(dishes))
	for i, d := range dishes {
		out[i] = d.Name
	}
	return out
}
