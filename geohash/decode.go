package geohash

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Interval is a closed range [Low, High] on one axis.
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 {
	return (iv.Low + iv.High) / 2
}

// Width returns High - Low.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

// Contains reports whether v lies within the interval, bounds included.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Low && v <= iv.High
}

// Cell is the rectangle denoted by a geohash. Lat and Lon are its center.
type Cell struct {
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	LatInterval Interval `json:"latInterval"`
	LonInterval Interval `json:"lonInterval"`
}

// Center returns the cell center as an orb point (longitude first).
func (c Cell) Center() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Bound returns the cell rectangle.
func (c Cell) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.LonInterval.Low, c.LatInterval.Low},
		Max: orb.Point{c.LonInterval.High, c.LatInterval.High},
	}
}

// Contains reports whether the coordinate lies inside the cell, edges included.
func (c Cell) Contains(lat, lon float64) bool {
	return c.LatInterval.Contains(lat) && c.LonInterval.Contains(lon)
}

// Decode returns the cell denoted by hash.
func Decode(hash string) (Cell, error) {
	if hash == "" {
		return Cell{}, fmt.Errorf("%w: empty geohash", ErrInvalidArgument)
	}

	latInterval := Interval{Low: -90.0, High: 90.0}
	lonInterval := Interval{Low: -180.0, High: 180.0}

	even := true
	for i := 0; i < len(hash); i++ {
		ch := decodeMap[hash[i]]
		if ch < 0 {
			return Cell{}, fmt.Errorf("%w: geohash %q has invalid character %q at %d",
				ErrInvalidArgument, hash, hash[i], i)
		}
		for _, mask := range bits {
			if even {
				lonInterval = refineInterval(lonInterval, int(ch), mask)
			} else {
				latInterval = refineInterval(latInterval, int(ch), mask)
			}
			even = !even
		}
	}

	return Cell{
		Lat:         latInterval.Mid(),
		Lon:         lonInterval.Mid(),
		LatInterval: latInterval,
		LonInterval: lonInterval,
	}, nil
}

// refineInterval keeps the upper half of iv when ch&mask is set, the lower half otherwise.
func refineInterval(iv Interval, ch, mask int) Interval {
	if ch&mask != 0 {
		iv.Low = iv.Mid()
	} else {
		iv.High = iv.Mid()
	}
	return iv
}
