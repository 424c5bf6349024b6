package models

type SearchResult struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Precision int      `json:"precision"`
	Geohash   string   `json:"geohash"`
	Cells     []string `json:"cells"` // the query cell followed by its neighbors
	Points    []Point  `json:"points"`
}
