package index

import (
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"geocell/models"
)

// pointTolerance is the half-size of the rectangle stored for each point.
const pointTolerance = 1e-9

// spatialPoint wraps a point to satisfy the rtreego.Spatial interface
type spatialPoint struct {
	models.Point
	rect rtreego.Rect
}

func (p *spatialPoint) Bounds() rtreego.Rect {
	return p.rect
}

type rtree struct {
	precision int

	mu   sync.RWMutex
	tree *rtreego.Rtree
}

func newRTree(precision int) *rtree {
	return &rtree{
		precision: precision,
		tree:      rtreego.NewTree(2, 25, 50),
	}
}

func (t *rtree) Insert(p models.Point) error {
	p, err := stamp(p, t.precision)
	if err != nil {
		return err
	}
	sp := &spatialPoint{
		Point: p,
		rect:  rtreego.Point{p.Longitude, p.Latitude}.ToRect(pointTolerance),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Insert(sp)
	return nil
}

func (t *rtree) Search(box orb.Bound) []models.Point {
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{box.Min.X(), box.Min.Y()},
		rtreego.Point{box.Max.X(), box.Max.Y()},
	)
	if err != nil {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []models.Point
	for _, s := range t.tree.SearchIntersect(rect) {
		p := s.(*spatialPoint).Point
		// the stored rectangles are padded by pointTolerance
		if box.Contains(orb.Point{p.Longitude, p.Latitude}) {
			result = append(result, p)
		}
	}
	return result
}

func (t *rtree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Size()
}
