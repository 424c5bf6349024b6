package cmd

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"geocell/geohash"
	"geocell/logging"
)

func newEncodeCmd(a *app) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "encode LAT LON",
		Short: "Encode a coordinate into a geohash",
		Example: `  geocell encode 37.8324 112.5584 --precision 8
  geocell encode -- -33.8688 151.2093`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lon, err := parseCoordinate(args[0], args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Precision
			}

			hash, err := geohash.Encode(lat, lon, precision)
			if err != nil {
				return err
			}
			a.logger.WithFields(logging.Fields{"lat": lat, "lon": lon, "geohash": hash}).Debug("encoded")

			out := cmd.OutOrStdout()
			switch a.output {
			case outputJSON:
				return writeJSON(out, map[string]interface{}{
					"lat":       lat,
					"lon":       lon,
					"precision": len(hash),
					"geohash":   hash,
				})
			case outputGeoJSON:
				cell, err := geohash.Decode(hash)
				if err != nil {
					return err
				}
				fc := geojson.NewFeatureCollection()
				fc.Append(cellFeature(hash, cell))
				fc.Append(pointFeature(lat, lon))
				return writeGeoJSON(out, fc)
			}
			_, err = fmt.Fprintln(out, hash)
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", 0, "geohash length 1-20 (default from config, 12)")
	return cmd
}
