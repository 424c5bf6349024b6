package index

import (
	"sync"

	"github.com/paulmach/orb"

	"geocell/geohash"
	"geocell/models"
)

type bucket struct {
	bound  orb.Bound
	points []models.Point
}

// buckets groups points by their geohash; a search scans the cells whose
// rectangle meets the box.
type buckets struct {
	precision int

	mu    sync.RWMutex
	cells map[string]*bucket
	size  int
}

func newBuckets(precision int) *buckets {
	return &buckets{
		precision: precision,
		cells:     make(map[string]*bucket),
	}
}

func (b *buckets) Insert(p models.Point) error {
	p, err := stamp(p, b.precision)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	bk, ok := b.cells[p.Geohash]
	if !ok {
		cell, err := geohash.Decode(p.Geohash)
		if err != nil {
			return err
		}
		bk = &bucket{bound: cell.Bound()}
		b.cells[p.Geohash] = bk
	}
	bk.points = append(bk.points, p)
	b.size++
	return nil
}

func (b *buckets) Search(box orb.Bound) []models.Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var result []models.Point
	for _, bk := range b.cells {
		if !bk.bound.Intersects(box) {
			continue
		}
		for _, p := range bk.points {
			if box.Contains(orb.Point{p.Longitude, p.Latitude}) {
				result = append(result, p)
			}
		}
	}
	return result
}

func (b *buckets) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}
