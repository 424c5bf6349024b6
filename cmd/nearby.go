package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"geocell/geohash"
	"geocell/index"
	"geocell/logging"
	"geocell/models"
)

func loadPoints(path string) ([]models.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var points []models.Point
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return points, nil
}

func newNearbyCmd(a *app) *cobra.Command {
	var (
		pointsFile string
		technique  string
		precision  int
		retries    int
	)

	cmd := &cobra.Command{
		Use:   "nearby LAT LON",
		Short: "List points in the cell of a coordinate and its neighbors",
		Long: `List the points of a JSON file that fall in the geohash cell of LAT LON or
in one of its eight neighbors. When nothing is found the search is retried
with one character less, up to --retries attempts.

The points file holds an array of {"id", "latitude", "longitude"} objects.`,
		Example: "  geocell nearby 37.8324 112.5584 --points drivers.json --technique rtree",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lon, err := parseCoordinate(args[0], args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("technique") {
				technique = a.cfg.Index.Technique
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Index.Precision
			}
			if !cmd.Flags().Changed("retries") {
				retries = a.cfg.Index.MaxRetries
			}

			points, err := loadPoints(pointsFile)
			if err != nil {
				return err
			}
			idx, err := index.New(index.GeoIndexingTechnique(technique), precision)
			if err != nil {
				return err
			}
			for _, p := range points {
				if err := idx.Insert(p); err != nil {
					a.logger.WithField("id", p.ID).Warnf("skipping point: %v", err)
				}
			}
			a.logger.WithFields(logging.Fields{
				"technique": technique,
				"points":    idx.Len(),
			}).Debug("index built")

			result, err := index.SearchNearbyWithRetries(idx, lat, lon, precision, retries)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case outputJSON:
				return writeJSON(out, result)
			case outputGeoJSON:
				fc := geojson.NewFeatureCollection()
				for _, h := range result.Cells {
					cell, err := geohash.Decode(h)
					if err != nil {
						return err
					}
					fc.Append(cellFeature(h, cell))
				}
				for _, p := range result.Points {
					f := pointFeature(p.Latitude, p.Longitude)
					f.Properties["id"] = p.ID
					f.Properties["geohash"] = p.Geohash
					fc.Append(f)
				}
				return writeGeoJSON(out, fc)
			}
			for _, p := range result.Points {
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", p.ID,
					formatFloat(p.Latitude), formatFloat(p.Longitude), p.Geohash); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pointsFile, "points", "", "JSON file with the points to search")
	cmd.Flags().StringVar(&technique, "technique", "", "index technique: geohashing|rtree|quadtree (default from config)")
	cmd.Flags().IntVarP(&precision, "precision", "p", 0, "geohash length of the search cell (default from config, 6)")
	cmd.Flags().IntVar(&retries, "retries", 0, "maximum attempts, each one character coarser (default from config, 3)")
	_ = cmd.MarkFlagRequired("points")
	return cmd
}
