package hipparcos

import (
	"sort"

	"github.com/agentstation/skymap/pkg/geo"
)

// Color is the rendering color bucket of a star, derived from its B−V
// color index.
type Color string

// Color buckets. The thresholds partition every possible color index:
// hot blue-white stars have a negative index, yellow-white stars sit below
// the solar value, and everything redder falls in the last bucket.
const (
	ColorBlue  Color = "blue"
	ColorWhite Color = "white"
	ColorRed   Color = "red"
)

// Classify maps a B−V color index to its color bucket.
func Classify(colorIndex float64) Color {
	switch {
	case colorIndex < 0.00:
		return ColorBlue
	case colorIndex < 0.59:
		return ColorWhite
	default:
		return ColorRed
	}
}

// Bucket truncates a floating-point magnitude to its integer bucket
// (toward zero, so magnitude 3.9 and 3.2 share bucket 3).
func Bucket(magnitude float64) int {
	return int(magnitude)
}

// GroupKey identifies one magnitude/color group.
type GroupKey struct {
	Magnitude int
	Color     Color
}

// Group consumes the scanner and buckets every star by (magnitude, color).
// Each group's coordinates are [-ra, dec] pairs, right ascension negated for
// the map projection's east-left convention, in catalog order. The returned
// fields are sorted by magnitude, then color name, so serialization is
// deterministic.
func Group(s *Scanner) ([]geo.StarField, error) {
	groups := make(map[GroupKey]*geo.StarField)
	var keys []GroupKey

	for s.Scan() {
		rec := s.Record()
		key := GroupKey{Magnitude: Bucket(rec.Magnitude), Color: Classify(rec.ColorIndex)}

		field, ok := groups[key]
		if !ok {
			field = &geo.StarField{Magnitude: key.Magnitude, Color: string(key.Color)}
			groups[key] = field
			keys = append(keys, key)
		}
		field.Coordinates = append(field.Coordinates, [2]float64{-rec.RA, rec.Dec})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Magnitude != keys[j].Magnitude {
			return keys[i].Magnitude < keys[j].Magnitude
		}
		return keys[i].Color < keys[j].Color
	})

	fields := make([]geo.StarField, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, *groups[key])
	}
	return fields, nil
}
