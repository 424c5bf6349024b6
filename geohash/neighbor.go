package geohash

import "fmt"

// Direction is an offset in cells: Lat moves north (+1) or south (-1),
// Lon moves east (+1) or west (-1).
type Direction struct {
	Lat int `json:"lat"`
	Lon int `json:"lon"`
}

var (
	TopRight    = Direction{Lat: 1, Lon: 1}
	Top         = Direction{Lat: 1, Lon: 0}
	TopLeft     = Direction{Lat: 1, Lon: -1}
	Left        = Direction{Lat: 0, Lon: -1}
	BottomLeft  = Direction{Lat: -1, Lon: -1}
	Bottom      = Direction{Lat: -1, Lon: 0}
	BottomRight = Direction{Lat: -1, Lon: 1}
	Right       = Direction{Lat: 0, Lon: 1}
)

// Directions lists the eight neighbor offsets in the order Expand visits them.
var Directions = [8]Direction{TopRight, Top, TopLeft, Left, BottomLeft, Bottom, BottomRight, Right}

var directionNames = map[Direction]string{
	TopRight:    "topRight",
	Top:         "top",
	TopLeft:     "topLeft",
	Left:        "left",
	BottomLeft:  "bottomLeft",
	Bottom:      "bottom",
	BottomRight: "bottomRight",
	Right:       "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("[%d,%d]", d.Lat, d.Lon)
}

// Neighbors holds the eight cells around a geohash, all of the same length.
type Neighbors struct {
	TopRight    string `json:"topRight"`
	Top         string `json:"top"`
	TopLeft     string `json:"topLeft"`
	Left        string `json:"left"`
	BottomLeft  string `json:"bottomLeft"`
	Bottom      string `json:"bottom"`
	BottomRight string `json:"bottomRight"`
	Right       string `json:"right"`
}

// field returns the slot for d, nil for a direction that is not one of the eight.
func (n *Neighbors) field(d Direction) *string {
	switch d {
	case TopRight:
		return &n.TopRight
	case Top:
		return &n.Top
	case TopLeft:
		return &n.TopLeft
	case Left:
		return &n.Left
	case BottomLeft:
		return &n.BottomLeft
	case Bottom:
		return &n.Bottom
	case BottomRight:
		return &n.BottomRight
	case Right:
		return &n.Right
	}
	return nil
}

// Get returns the neighbor in direction d.
func (n Neighbors) Get(d Direction) (string, bool) {
	f := n.field(d)
	if f == nil {
		return "", false
	}
	return *f, true
}

// All returns the eight neighbors in Directions order.
func (n Neighbors) All() []string {
	out := make([]string, 0, len(Directions))
	for _, d := range Directions {
		out = append(out, *n.field(d))
	}
	return out
}

// Neighbor returns the geohash of the cell offset from hash by d cell widths on
// each axis, with the same length as hash. Cells past a pole or the antimeridian
// are not wrapped: Encode rejects the shifted coordinate and its error is returned.
func Neighbor(hash string, d Direction) (string, error) {
	cell, err := Decode(hash)
	if err != nil {
		return "", err
	}
	// Encode would fall back to DefaultPrecision.
	if len(hash) > MaxPrecision {
		return "", fmt.Errorf("%w: geohash %q longer than %d", ErrInvalidArgument, hash, MaxPrecision)
	}
	lat := cell.Lat + float64(d.Lat)*cell.LatInterval.Width()
	lon := cell.Lon + float64(d.Lon)*cell.LonInterval.Width()
	return Encode(lat, lon, len(hash))
}

// Expand returns the eight cells surrounding hash.
func Expand(hash string) (Neighbors, error) {
	var n Neighbors
	if hash == "" {
		return n, fmt.Errorf("%w: empty geohash", ErrInvalidArgument)
	}
	for _, d := range Directions {
		h, err := Neighbor(hash, d)
		if err != nil {
			return Neighbors{}, err
		}
		*n.field(d) = h
	}
	return n, nil
}
