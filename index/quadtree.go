package index

import (
	"sync"

	"github.com/paulmach/orb"

	"geocell/models"
)

const (
	nodeCapacity = 4
	// maxDepth stops subdivision for clusters of identical coordinates.
	maxDepth     = 32
)

var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// quadtreeNode represents a node in the quadtree. X is longitude, Y latitude.
type quadtreeNode struct {
	bounds   orb.Bound
	depth    int
	points   []models.Point
	children [4]*quadtreeNode
}

type quadtree struct {
	precision int

	mu   sync.RWMutex
	root *quadtreeNode
	size int
}

func newQuadtree(precision int, bounds orb.Bound) *quadtree {
	return &quadtree{
		precision: precision,
		root:      &quadtreeNode{bounds: bounds},
	}
}

func (qt *quadtree) Insert(p models.Point) error {
	p, err := stamp(p, qt.precision)
	if err != nil {
		return err
	}

	qt.mu.Lock()
	defer qt.mu.Unlock()
	if qt.root.insert(p) {
		qt.size++
	}
	return nil
}

// insert adds a point to the node, subdividing once it holds nodeCapacity points.
// A point on a shared edge goes to the first child that contains it.
func (node *quadtreeNode) insert(p models.Point) bool {
	if !node.bounds.Contains(orb.Point{p.Longitude, p.Latitude}) {
		return false
	}
	if node.children[0] == nil {
		if len(node.points) < nodeCapacity || node.depth >= maxDepth {
			node.points = append(node.points, p)
			return true
		}
		node.subdivide()
	}
	for _, child := range node.children {
		if child.insert(p) {
			return true
		}
	}
	return false
}

// subdivide splits the node into four child nodes
func (node *quadtreeNode) subdivide() {
	b := node.bounds
	mid := b.Center()
	depth := node.depth + 1
	node.children[0] = &quadtreeNode{depth: depth, bounds: orb.Bound{Min: b.Min, Max: mid}}
	node.children[1] = &quadtreeNode{depth: depth, bounds: orb.Bound{Min: orb.Point{mid.X(), b.Min.Y()}, Max: orb.Point{b.Max.X(), mid.Y()}}}
	node.children[2] = &quadtreeNode{depth: depth, bounds: orb.Bound{Min: orb.Point{b.Min.X(), mid.Y()}, Max: orb.Point{mid.X(), b.Max.Y()}}}
	node.children[3] = &quadtreeNode{depth: depth, bounds: orb.Bound{Min: mid, Max: b.Max}}
}

func (qt *quadtree) Search(box orb.Bound) []models.Point {
	qt.mu.RLock()
	defer qt.mu.RUnlock()
	return qt.root.search(box, nil)
}

// search appends the points of the subtree that lie inside box.
func (node *quadtreeNode) search(box orb.Bound, result []models.Point) []models.Point {
	if !node.bounds.Intersects(box) {
		return result
	}
	for _, p := range node.points {
		if box.Contains(orb.Point{p.Longitude, p.Latitude}) {
			result = append(result, p)
		}
	}
	if node.children[0] != nil {
		for _, child := range node.children {
			result = child.search(box, result)
		}
	}
	return result
}

func (qt *quadtree) Len() int {
	qt.mu.RLock()
	defer qt.mu.RUnlock()
	return qt.size
}
