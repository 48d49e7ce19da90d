// Package layout is the city-layout collaborator: it places connector
// towers on an axial hex grid and emits the growth seeds and occupied
// volumes the building-growth core consumes. The core never imports this
// package; any host producing seeds and obstacle volumes can replace it.
package layout

import "math"

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// HexNeighborDirections defines the six neighbor offsets in axial coordinates.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = HexCoord{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// InRadius reports whether the coordinate lies within a hex grid of the
// given radius: max(|q|, |r|, |s|) <= radius.
func (h HexCoord) InRadius(radius int) bool {
	m := abs(h.Q)
	if r := abs(h.R); r > m {
		m = r
	}
	if s := abs(h.S()); s > m {
		m = s
	}
	return m <= radius
}

// Cartesian converts axial coordinates to world XY with the given hex
// size. Hex axial to cartesian: x = q + r*0.5, y = r * sqrt(3)/2.
func (h HexCoord) Cartesian(size float64) (x, y float64) {
	x = size * (float64(h.Q) + float64(h.R)*0.5)
	y = size * float64(h.R) * math.Sqrt(3.0) / 2.0
	return x, y
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
