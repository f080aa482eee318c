// Package dishtree ranks dishes by how often they were ordered. It is a height-balanced
// binary search tree keyed by order count; every node carries the bucket of dishes that
// share its count, so a popularity tie never produces two nodes.
//
// Nodes live in an arena and refer to each other by index, -1 meaning no child. After
// every insertion the whole tree is rebalanced bottom-up, which keeps it AVL-shaped
// whatever the insertion order.
package dishtree

import (
	"fmt"

	"overcooked-analytics/analytics-svc/internal/domain"
)

const nilNode = -1

type node struct {
	count  int
	bucket []domain.Dish
	left   int
	right  int
	height int
}

type Tree struct {
	nodes  []node
	root   int
	dishes int
}

func New() *Tree {
	return &Tree{root: nilNode}
}

// Insert files dish under its TotalOrders, appending to an existing bucket when the
// count is already present, and rebalances the tree.
func (t *Tree) Insert(dish domain.Dish) {
	t.dishes++

	link := &t.root
	for *link != nilNode {
		n := &t.nodes[*link]
		switch {
		case dish.TotalOrders == n.count:
			n.bucket = append(n.bucket, dish)
			return
		case dish.TotalOrders < n.count:
			link = &n.left
		default:
			link = &n.right
		}
	}

	// link may point into t.nodes, so take the index before growing the arena.
	id := len(t.nodes)
	*link = id
	t.nodes = append(t.nodes, node{
		count:  dish.TotalOrders,
		bucket: []domain.Dish{dish},
		left:   nilNode,
		right:  nilNode,
		height: 1,
	})

	t.rebalance()
}

// rebalance walks every subtree in post-order and rotates any node whose children
// differ in height by more than one. Links are addressed through pointers into the
// arena, which does not grow during the walk.
func (t *Tree) rebalance() {
	type frame struct {
		link     *int
		expanded bool
	}

	stack := []frame{{link: &t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := *f.link
		if id == nilNode {
			continue
		}
		if !f.expanded {
			stack = append(stack,
				frame{link: f.link, expanded: true},
				frame{link: &t.nodes[id].right},
				frame{link: &t.nodes[id].left},
			)
			continue
		}

		t.fixHeight(id)
		switch bf := t.balanceOf(id); {
		case bf > 1:
			if left := t.nodes[id].left; t.balanceOf(left) < 0 {
				t.rotateLeft(&t.nodes[id].left)
			}
			t.rotateRight(f.link)
		case bf < -1:
			if right := t.nodes[id].right; t.balanceOf(right) > 0 {
				t.rotateRight(&t.nodes[id].right)
			}
			t.rotateLeft(f.link)
		}
	}
}

func (t *Tree) rotateLeft(link *int) {
	top := *link
	pivot := t.nodes[top].right
	t.nodes[top].right = t.nodes[pivot].left
	t.nodes[pivot].left = top
	*link = pivot
	t.fixHeight(top)
	t.fixHeight(pivot)
}

func (t *Tree) rotateRight(link *int) {
	top := *link
	pivot := t.nodes[top].left
	t.nodes[top].left = t.nodes[pivot].right
	t.nodes[pivot].right = top
	*link = pivot
	t.fixHeight(top)
	t.fixHeight(pivot)
}

func (t *Tree) heightOf(id int) int {
	if id == nilNode {
		return 0
	}
	return t.nodes[id].height
}

func (t *Tree) fixHeight(id int) {
	n := &t.nodes[id]
	n.height = 1 + max(t.heightOf(n.left), t.heightOf(n.right))
}

func (t *Tree) balanceOf(id int) int {
	if id == nilNode {
		return 0
	}
	return t.heightOf(t.nodes[id].left) - t.heightOf(t.nodes[id].right)
}

// MostOrdered returns every dish with the highest order count, in insertion order.
func (t *Tree) MostOrdered() []domain.Dish {
	if t.root == nilNode {
		return []domain.Dish{}
	}
	id := t.root
	for t.nodes[id].right != nilNode {
		id = t.nodes[id].right
	}
	return clone(t.nodes[id].bucket)
}

// MaxOrderCount is the highest order count in the tree, 0 when empty.
func (t *Tree) MaxOrderCount() int {
	if t.root == nilNode {
		return 0
	}
	id := t.root
	for t.nodes[id].right != nilNode {
		id = t.nodes[id].right
	}
	return t.nodes[id].count
}

// TopN collects dishes from the most ordered down. Buckets are taken whole, so the
// result may exceed n when a tie straddles the cutoff.
func (t *Tree) TopN(n int) []domain.Dish {
	out := []domain.Dish{}
	if n <= 0 {
		return out
	}
	remaining := n
	t.walk(true, func(id int) bool {
		if remaining <= 0 {
			return false
		}
		out = append(out, t.nodes[id].bucket...)
		remaining -= len(t.nodes[id].bucket)
		return true
	})
	return out
}

// Ascending lists the buckets from the least to the most ordered.
func (t *Tree) Ascending() []domain.DishBucket {
	return t.buckets(false)
}

// Descending lists the buckets from the most to the least ordered.
func (t *Tree) Descending() []domain.DishBucket {
	return t.buckets(true)
}

func (t *Tree) buckets(reverse bool) []domain.DishBucket {
	out := make([]domain.DishBucket, 0, len(t.nodes))
	t.walk(reverse, func(id int) bool {
		out = append(out, domain.DishBucket{OrderCount: t.nodes[id].count, Dishes: clone(t.nodes[id].bucket)})
		return true
	})
	return out
}

// walk visits nodes in order (descending when reverse is set) until fn returns false.
func (t *Tree) walk(reverse bool, fn func(id int) bool) {
	near := func(id int) int {
		if reverse {
			return t.nodes[id].right
		}
		return t.nodes[id].left
	}
	far := func(id int) int {
		if reverse {
			return t.nodes[id].left
		}
		return t.nodes[id].right
	}

	var stack []int
	cur := t.root
	for cur != nilNode || len(stack) > 0 {
		for cur != nilNode {
			stack = append(stack, cur)
			cur = near(cur)
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		cur = far(cur)
	}
}

// Len is the number of dishes stored across all buckets.
func (t *Tree) Len() int { return t.dishes }

// NodeCount is the number of distinct order counts.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// Height is 0 for an empty tree and 1 for a single node.
func (t *Tree) Height() int { return t.heightOf(t.root) }

// BalanceFactor of the root: height(left) - height(right).
func (t *Tree) BalanceFactor() int { return t.balanceOf(t.root) }

// Nodes dumps the tree in pre-order with the counts of each node's children.
func (t *Tree) Nodes() []domain.TreeNodeInfo {
	out := make([]domain.TreeNodeInfo, 0, len(t.nodes))
	if t.root == nilNode {
		return out
	}
	stack := []int{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[id]
		out = append(out, domain.TreeNodeInfo{OrderCount: n.count, Left: t.countOf(n.left), Right: t.countOf(n.right)})
		if n.right != nilNode {
			stack = append(stack, n.right)
		}
		if n.left != nilNode {
			stack = append(stack, n.left)
		}
	}
	return out
}

func (t *Tree) countOf(id int) int {
	if id == nilNode {
		return -1
	}
	return t.nodes[id].count
}

// Stats gathers the figures shown by the tree statistics report.
func (t *Tree) Stats() domain.TreeStats {
	return domain.TreeStats{
		BalanceFactor: t.BalanceFactor(),
		Height:        t.Height(),
		NodeCount:     t.NodeCount(),
		DishCount:     t.Len(),
		MaxOrderCount: t.MaxOrderCount(),
		Nodes:         t.Nodes(),
	}
}

// Validate checks search order, cached heights, balance and bucket contents of every
// node reachable from the root.
func (t *Tree) Validate() error {
	type frame struct {
		id       int
		min, max int
		bounded  [2]bool
	}

	seen := 0
	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.id == nilNode {
			continue
		}
		seen++

		n := t.nodes[f.id]
		if f.bounded[0] && n.count <= f.min {
			return fmt.Errorf("node %d: count %d not above %d", f.id, n.count, f.min)
		}
		if f.bounded[1] && n.count >= f.max {
			return fmt.Errorf("node %d: count %d not below %d", f.id, n.count, f.max)
		}
		if want := 1 + max(t.heightOf(n.left), t.heightOf(n.right)); n.height != want {
			return fmt.Errorf("node %d: cached height %d, actual %d", f.id, n.height, want)
		}
		if bf := t.balanceOf(f.id); bf < -1 || bf > 1 {
			return fmt.Errorf("node %d: balance factor %d", f.id, bf)
		}
		if len(n.bucket) == 0 {
			return fmt.Errorf("node %d: empty bucket", f.id)
		}
		for _, d := range n.bucket {
			if d.TotalOrders != n.count {
				return fmt.Errorf("node %d: dish %q has %d orders, node holds %d", f.id, d.Name, d.TotalOrders, n.count)
			}
		}

		stack = append(stack,
			frame{id: n.left, min: f.min, max: n.count, bounded: [2]bool{f.bounded[0], true}},
			frame{id: n.right, min: n.count, max: f.max, bounded: [2]bool{true, f.bounded[1]}},
		)
	}

	if seen != len(t.nodes) {
		return fmt.Errorf("%d of %d nodes reachable from the root", seen, len(t.nodes))
	}
	return nil
}

func clone(dishes []domain.Dish) []domain.Dish {
	out := make([]domain.Dish, len(dishes))
	copy(out, dishes)
	return out
}
