package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geocell/geohash"
	"geocell/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestEncodeCmd(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"precision flag", []string{"encode", "37.8324", "112.5584", "-p", "8"}, "ww8p1r4t\n"},
		{"default precision", []string{"encode", "37.8324", "112.5584"}, "ww8p1r4t8yd0\n"},
		{"negative coordinates", []string{"encode", "-p", "5", "--", "-33.8688", "151.2093"}, "r3gx2\n"},
		{"equator and prime meridian", []string{"encode", "0", "0", "-p", "5"}, "7zzzz\n"},
		{"out of range precision", []string{"encode", "37.8324", "112.5584", "-p", "40"}, "ww8p1r4t8yd0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestEncodeCmdErrors(t *testing.T) {
	chdirForTest(t, t.TempDir())

	_, err := run(t, "encode", "95", "10")
	assert.ErrorIs(t, err, geohash.ErrInvalidArgument)

	_, err = run(t, "encode", "north", "10")
	assert.ErrorContains(t, err, "invalid latitude")

	_, err = run(t, "encode", "10")
	assert.Error(t, err)

	_, err = run(t, "encode", "10", "10", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestEncodeCmdConfigPrecision(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geocell.yaml"), []byte("precision: 5\noutput: json\n"), 0o644))

	out, err := run(t, "encode", "37.8324", "112.5584")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ww8p1", got["geohash"])
	assert.Equal(t, float64(5), got["precision"])
}

func TestDecodeCmd(t *testing.T) {
	chdirForTest(t, t.TempDir())

	out, err := run(t, "decode", "s")
	require.NoError(t, err)
	assert.Equal(t, "22.5 22.5\nlat: [0, 45]\nlon: [0, 45]\n", out)

	out, err = run(t, "decode", "ww8p1r4t8", "-o", "json")
	require.NoError(t, err)
	var got struct {
		Geohash string `json:"geohash"`
		geohash.Cell
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ww8p1r4t8", got.Geohash)
	assert.InDelta(t, 37.8324, got.Lat, 0.0001)
	assert.InDelta(t, 112.5584, got.Lon, 0.0001)
	assert.Less(t, got.LatInterval.Low, got.LatInterval.High)

	_, err = run(t, "decode", "ww8a")
	assert.ErrorIs(t, err, geohash.ErrInvalidArgument)
}

func TestNeighborCmd(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cases := map[string]string{
		"top":     "ww8p1r4w\n",
		"TOPLEFT": "ww8p1r4q\n",
		"1,1":     "ww8p1r4y\n",
		"0, -1":   "ww8p1r4m\n",
	}
	for direction, want := range cases {
		out, err := run(t, "neighbor", "ww8p1r4t", direction)
		require.NoError(t, err, direction)
		assert.Equal(t, want, out, direction)
	}

	_, err := run(t, "neighbor", "ww8p1r4t", "up")
	assert.ErrorContains(t, err, "invalid direction")

	_, err = run(t, "neighbor", "zzzzz", "top")
	assert.ErrorIs(t, err, geohash.ErrInvalidArgument)
}

func TestExpandCmd(t *testing.T) {
	chdirForTest(t, t.TempDir())

	out, err := run(t, "expand", "ww8p1r4t", "-o", "json")
	require.NoError(t, err)
	var n geohash.Neighbors
	require.NoError(t, json.Unmarshal([]byte(out), &n))
	assert.Equal(t, "ww8p1r4y", n.TopRight)
	assert.Equal(t, "ww8p1r4s", n.Bottom)

	out, err = run(t, "expand", "ww8p1r4t")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, []string{"topRight", "ww8p1r4y"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"right", "ww8p1r4v"}, strings.Fields(lines[7]))

	out, err = run(t, "expand", "ww8p1r4t", "-o", "geojson")
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection([]byte(out))
	require.NoError(t, err)
	require.Len(t, fc.Features, 9)
	assert.Equal(t, "ww8p1r4t", fc.Features[0].Properties.MustString("geohash"))
	assert.Equal(t, "top", fc.Features[2].Properties.MustString("direction"))
	assert.Equal(t, "Polygon", fc.Features[1].Geometry.GeoJSONType())
}

func TestNearbyCmd(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	points := []models.Point{
		{ID: "b", Latitude: 37.8330, Longitude: 112.5590},
		{ID: "a", Latitude: 37.8324, Longitude: 112.5584},
		{ID: "far", Latitude: 40.7128, Longitude: -74.0060},
		{ID: "broken", Latitude: 120, Longitude: 0},
	}
	data, err := json.Marshal(points)
	require.NoError(t, err)
	path := filepath.Join(dir, "points.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	for _, technique := range []string{"geohashing", "rtree", "quadtree"} {
		out, err := run(t, "nearby", "37.8324", "112.5584", "--points", path, "--technique", technique)
		require.NoError(t, err, technique)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2, technique)
		assert.Equal(t, []string{"a", "37.8324", "112.5584", "ww8p1r"}, strings.Fields(lines[0]))
		assert.Equal(t, "b", strings.Fields(lines[1])[0])
	}

	out, err := run(t, "nearby", "37.8324", "112.5584", "--points", path, "-o", "json", "-p", "8")
	require.NoError(t, err)
	var result models.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "ww8p1r4t", result.Geohash)
	assert.Len(t, result.Cells, 9)
	require.NotEmpty(t, result.Points)
	assert.Equal(t, "a", result.Points[0].ID)

	_, err = run(t, "nearby", "37.8324", "112.5584", "--points", path, "--technique", "kdtree")
	assert.Error(t, err)

	_, err = run(t, "nearby", "37.8324", "112.5584")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	chdirForTest(t, t.TempDir())
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "geocell dev\n", out)
}
