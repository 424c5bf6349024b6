package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geocell/geohash"
)

const (
	outputText    = "text"
	outputJSON    = "json"
	outputGeoJSON = "geojson"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// cellFeature returns the cell rectangle as a polygon feature.
func cellFeature(hash string, cell geohash.Cell) *geojson.Feature {
	f := geojson.NewFeature(cell.Bound().ToPolygon())
	f.Properties["geohash"] = hash
	f.Properties["center"] = []float64{cell.Lon, cell.Lat}
	return f
}

func pointFeature(lat, lon float64) *geojson.Feature {
	return geojson.NewFeature(orb.Point{lon, lat})
}

func parseCoordinate(latArg, lonArg string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latArg, err)
	}
	lon, err := strconv.ParseFloat(lonArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lonArg, err)
	}
	return lat, lon, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
