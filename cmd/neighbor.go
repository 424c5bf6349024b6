package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"geocell/geohash"
)

// parseDirection accepts a label such as "topLeft" or a "lat,lon" pair such as "1,-1".
func parseDirection(s string) (geohash.Direction, error) {
	for _, d := range geohash.Directions {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geohash.Direction{}, fmt.Errorf("invalid direction %q", s)
	}
	lat, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geohash.Direction{}, fmt.Errorf("invalid direction %q: %w", s, err)
	}
	lon, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geohash.Direction{}, fmt.Errorf("invalid direction %q: %w", s, err)
	}
	return geohash.Direction{Lat: lat, Lon: lon}, nil
}

func newNeighborCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbor HASH DIRECTION",
		Short: "Print the adjacent geohash in one direction",
		Long: `Print the adjacent geohash in one direction.

DIRECTION is one of topRight, top, topLeft, left, bottomLeft, bottom,
bottomRight, right, or a "lat,lon" pair of cell offsets such as "1,-1".`,
		Example: "  geocell neighbor ww8p1r4t top",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDirection(args[1])
			if err != nil {
				return err
			}
			hash, err := geohash.Neighbor(args[0], d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case outputJSON:
				return writeJSON(out, map[string]interface{}{
					"geohash":   args[0],
					"direction": d,
					"neighbor":  hash,
				})
			case outputGeoJSON:
				cell, err := geohash.Decode(hash)
				if err != nil {
					return err
				}
				f := cellFeature(hash, cell)
				f.Properties["direction"] = d.String()
				fc := geojson.NewFeatureCollection()
				fc.Append(f)
				return writeGeoJSON(out, fc)
			}
			_, err = fmt.Fprintln(out, hash)
			return err
		},
	}
}
