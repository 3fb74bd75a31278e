package entity

import "strconv"

// Coordinate represents a geographic coordinate.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String encodes the coordinate the way the directions provider expects it,
// longitude first: "{lng},{lat}".
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// Valid reports whether the coordinate lies within geographic bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
