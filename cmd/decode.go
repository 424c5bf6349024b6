package cmd

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"geocell/geohash"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode HASH",
		Short:   "Decode a geohash into its center and bounds",
		Example: "  geocell decode ww8p1r4t8",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := args[0]
			cell, err := geohash.Decode(hash)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case outputJSON:
				return writeJSON(out, struct {
					Geohash string `json:"geohash"`
					geohash.Cell
				}{hash, cell})
			case outputGeoJSON:
				fc := geojson.NewFeatureCollection()
				fc.Append(cellFeature(hash, cell))
				return writeGeoJSON(out, fc)
			}
			_, err = fmt.Fprintf(out, "%s %s\nlat: [%s, %s]\nlon: [%s, %s]\n",
				formatFloat(cell.Lat), formatFloat(cell.Lon),
				formatFloat(cell.LatInterval.Low), formatFloat(cell.LatInterval.High),
				formatFloat(cell.LonInterval.Low), formatFloat(cell.LonInterval.High))
			return err
		},
	}
}
