// Package geohash encodes coordinates into base-32 geohash strings and back.
//
// A geohash names a rectangular cell: every character refines the cell by five
// binary decisions, alternating between longitude and latitude and starting with
// longitude. Longer strings denote smaller cells.
package geohash

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultPrecision is used when Encode gets a length outside [MinPrecision, MaxPrecision].
	DefaultPrecision = 12
	MinPrecision     = 1
	MaxPrecision     = 20

	bitsPerChar = 5
)

// ErrInvalidArgument is returned for out-of-range coordinates and malformed geohashes.
var ErrInvalidArgument = errors.New("invalid argument")

const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// bits holds the mask for each of the five decisions packed into one symbol.
var bits = [bitsPerChar]int{16, 8, 4, 2, 1}

// decodeMap maps an ASCII byte to its symbol value, -1 when it is not in the alphabet.
var decodeMap = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(base32); i++ {
		m[base32[i]] = int8(i)
	}
	return m
}()

// Encode returns the geohash of the given coordinate with length characters.
// A length outside [MinPrecision, MaxPrecision], zero included, yields
// DefaultPrecision characters.
func Encode(lat, lon float64, length int) (string, error) {
	if math.IsNaN(lat) || lat > 90.0 || lat < -90.0 {
		return "", fmt.Errorf("%w: latitude %v", ErrInvalidArgument, lat)
	}
	if math.IsNaN(lon) || lon > 180.0 || lon < -180.0 {
		return "", fmt.Errorf("%w: longitude %v", ErrInvalidArgument, lon)
	}
	if length < MinPrecision || length > MaxPrecision {
		length = DefaultPrecision
	}

	latInterval := Interval{Low: -90.0, High: 90.0}
	lonInterval := Interval{Low: -180.0, High: 180.0}
	out := make([]byte, 0, length)

	even := true
	for len(out) < length {
		ch := 0
		for _, mask := range bits {
			if even {
				ch = bisect(&lonInterval, lon, ch, mask)
			} else {
				ch = bisect(&latInterval, lat, ch, mask)
			}
			even = !even
		}
		out = append(out, base32[ch])
	}
	return string(out), nil
}

// bisect narrows iv to the half holding v and sets mask in ch for the upper half.
// A value equal to the midpoint falls into the lower half.
func bisect(iv *Interval, v float64, ch, mask int) int {
	mid := iv.Mid()
	if v > mid {
		iv.Low = mid
		return ch | mask
	}
	iv.High = mid
	return ch
}

// Valid reports whether hash is non-empty, at most MaxPrecision long and made
// only of geohash symbols. Decode itself accepts longer strings.
func Valid(hash string) bool {
	if hash == "" || len(hash) > MaxPrecision {
		return false
	}
	for i := 0; i < len(hash); i++ {
		if decodeMap[hash[i]] < 0 {
			return false
		}
	}
	return true
}
