// Package geo defines the GeoJSON-style geometry objects the sky map
// renderer consumes: constellation boundary polygons and magnitude-grouped
// star fields. Coordinates follow the map's conventions, not WGS84.
package geo

import "github.com/agentstation/skymap/pkg/compact"

// Geometry type identifiers, matching GeoJSON.
const (
	TypePolygon    = "Polygon"
	TypeMultiPoint = "MultiPoint"
)

// Vertex is a constellation boundary vertex. Both components are exact
// integers: right ascension as a non-negative count of arc-seconds, and
// declination as signed arc-minutes. Integer storage keeps the emitted
// JavaScript compact and removes rounding error from the conversion.
type Vertex [2]int

// RA returns the right ascension component in arc-seconds.
func (v Vertex) RA() int { return v[0] }

// Dec returns the declination component in arc-minutes.
func (v Vertex) Dec() int { return v[1] }

// Polygon is a boundary polygon. The vertex order of the source catalog is
// preserved, since it defines the polygon winding, and the ring is
// implicitly closed: the renderer joins the last vertex back to the first.
// Only a single outer ring is used; boundary polygons have no holes.
type Polygon struct {
	Rings [][]Vertex `json:"coordinates"`
}

// Ring returns the outer ring, or nil for an empty polygon.
func (p Polygon) Ring() []Vertex {
	if len(p.Rings) == 0 {
		return nil
	}
	return p.Rings[0]
}

// Compact renders the polygon as an ordered compact value:
// {'type':'Polygon','coordinates':[[[ra,dec],...]]}.
func (p Polygon) Compact() compact.Object {
	rings := make(compact.Array, 0, len(p.Rings))
	for _, ring := range p.Rings {
		vertices := make(compact.Array, 0, len(ring))
		for _, v := range ring {
			vertices = append(vertices, compact.Array{v[0], v[1]})
		}
		rings = append(rings, vertices)
	}
	return compact.Object{
		{Key: "type", Value: TypePolygon},
		{Key: "coordinates", Value: rings},
	}
}

// StarField is one magnitude/color group of stars rendered as a MultiPoint.
// Coordinates are [-ra, dec] pairs in degrees; right ascension is negated
// for the map projection's east-left convention. Point order follows the
// source catalog.
type StarField struct {
	Coordinates [][2]float64 `json:"coordinates"`
	Magnitude   int          `json:"magnitude"`
	Color       string       `json:"color"`
}

// Compact renders the star field as an ordered compact value:
// {'type':'MultiPoint','coordinates':[...],'magnitude':m,'color':c}.
func (f StarField) Compact() compact.Object {
	coords := make(compact.Array, 0, len(f.Coordinates))
	for _, c := range f.Coordinates {
		coords = append(coords, compact.Array{c[0], c[1]})
	}
	return compact.Object{
		{Key: "type", Value: TypeMultiPoint},
		{Key: "coordinates", Value: coords},
		{Key: "magnitude", Value: f.Magnitude},
		{Key: "color", Value: f.Color},
	}
}
