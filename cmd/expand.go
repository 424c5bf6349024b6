package cmd

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"geocell/geohash"
)

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "expand HASH",
		Short:   "Print the eight geohashes around a cell",
		Example: "  geocell expand ww8p1r4t --output geojson",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := args[0]
			n, err := geohash.Expand(hash)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case outputJSON:
				return writeJSON(out, n)
			case outputGeoJSON:
				fc := geojson.NewFeatureCollection()
				center, err := geohash.Decode(hash)
				if err != nil {
					return err
				}
				fc.Append(cellFeature(hash, center))
				for _, d := range geohash.Directions {
					nh, _ := n.Get(d)
					cell, err := geohash.Decode(nh)
					if err != nil {
						return err
					}
					f := cellFeature(nh, cell)
					f.Properties["direction"] = d.String()
					fc.Append(f)
				}
				return writeGeoJSON(out, fc)
			}
			for _, d := range geohash.Directions {
				nh, _ := n.Get(d)
				if _, err := fmt.Fprintf(out, "%-12s %s\n", d, nh); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
