package index

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"geocell/geohash"
	"geocell/logging"
	"geocell/models"
)

type GeoIndexingTechnique string

const (
	GeohashingTechnique GeoIndexingTechnique = "geohashing"
	RTreeTechnique      GeoIndexingTechnique = "rtree"
	QuadtreeTechnique   GeoIndexingTechnique = "quadtree"
)

var (
	ErrUnsupportedTechnique = errors.New("unsupported geo-indexing technique")
	ErrNoNearbyPoints       = errors.New("no nearby points found after maximum retries")
)

var defaultTechnique = GeohashingTechnique

var log logrus.FieldLogger = logging.Discard()

// Index stores points and answers box queries. Implementations are safe for
// concurrent use.
type Index interface {
	Insert(p models.Point) error
	// Search returns the points inside box, edges included, in no particular order.
	Search(box orb.Bound) []models.Point
	Len() int
}

// SetDefaultTechnique sets the technique New uses when given an empty one
func SetDefaultTechnique(technique GeoIndexingTechnique) {
	defaultTechnique = technique
}

// SetLogger replaces the package logger, which discards by default.
func SetLogger(l logrus.FieldLogger) {
	log = l
}

// New returns an empty index. precision is the geohash length recorded on each
// inserted point and, for the geohashing technique, the bucket size.
func New(technique GeoIndexingTechnique, precision int) (Index, error) {
	if technique == "" {
		technique = defaultTechnique
	}
	if precision < geohash.MinPrecision || precision > geohash.MaxPrecision {
		precision = geohash.DefaultPrecision
	}
	switch technique {
	case GeohashingTechnique:
		return newBuckets(precision), nil
	case RTreeTechnique:
		return newRTree(precision), nil
	case QuadtreeTechnique:
		return newQuadtree(precision, world), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedTechnique, technique)
}

// stamp validates p and sets its geohash at the given precision.
func stamp(p models.Point, precision int) (models.Point, error) {
	hash, err := geohash.Encode(p.Latitude, p.Longitude, precision)
	if err != nil {
		return p, fmt.Errorf("point %q: %w", p.ID, err)
	}
	p.Geohash = hash
	return p, nil
}

// Nearby returns the points in the cell holding (lat, lon) at the given
// precision and in its eight neighbors. Neighbors past a pole or the
// antimeridian are left out.
func Nearby(idx Index, lat, lon float64, precision int) (*models.SearchResult, error) {
	hash, err := geohash.Encode(lat, lon, precision)
	if err != nil {
		return nil, err
	}
	cell, err := geohash.Decode(hash)
	if err != nil {
		return nil, err
	}

	box := cell.Bound()
	cells := []string{hash}
	for _, d := range geohash.Directions {
		nh, err := geohash.Neighbor(hash, d)
		if err != nil {
			log.WithFields(logging.Fields{"geohash": hash, "direction": d.String()}).
				Debugf("skipping neighbor: %v", err)
			continue
		}
		nc, err := geohash.Decode(nh)
		if err != nil {
			return nil, err
		}
		box = box.Union(nc.Bound())
		cells = append(cells, nh)
	}

	points := idx.Search(box)
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })

	return &models.SearchResult{
		Latitude:  lat,
		Longitude: lon,
		Precision: len(hash),
		Geohash:   hash,
		Cells:     cells,
		Points:    points,
	}, nil
}

// SearchNearbyWithRetries calls Nearby, dropping one character of precision
// (a larger cell) after every empty attempt.
func SearchNearbyWithRetries(idx Index, lat, lon float64, precision, maxRetries int) (*models.SearchResult, error) {
	if precision < geohash.MinPrecision || precision > geohash.MaxPrecision {
		precision = geohash.DefaultPrecision
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	for i := 0; i < maxRetries && precision >= geohash.MinPrecision; i++ {
		result, err := Nearby(idx, lat, lon, precision)
		if err != nil {
			return nil, err
		}
		if len(result.Points) > 0 {
			return result, nil
		}
		log.WithFields(logging.Fields{"geohash": result.Geohash, "attempt": i + 1}).
			Debug("no points nearby, widening search")
		precision--
	}

	return nil, ErrNoNearbyPoints
}
