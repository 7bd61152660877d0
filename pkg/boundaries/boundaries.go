// Package boundaries reads the IAU constellation boundary vertex catalog
// (bound_verts_18.txt) and aggregates its vertices into one closed polygon
// per constellation.
//
// Each input line is five space-separated fields:
//
//	<vertex index> <RA h:m:s> <Dec d:m:s> <code> <constellation list>
//
// The trailing constellation list may itself contain spaces, so a line is
// split at most four times. Angles are converted to exact integers: right
// ascension to arc-seconds and declination to arc-minutes (see the
// conversion functions for the sign rules).
package boundaries

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agentstation/skymap/pkg/compact"
	"github.com/agentstation/skymap/pkg/errors"
	"github.com/agentstation/skymap/pkg/geo"
)

// fieldsPerLine is the field count after the 4-way split: vertex index,
// RA, Dec, constellation code, constellation list.
const fieldsPerLine = 5

// Set holds the parsed boundary polygons keyed by 3-letter constellation
// code. Vertex order within a polygon follows the catalog, which defines
// the polygon winding.
type Set struct {
	polygons map[string]geo.Polygon
}

// ParseFile opens, parses, and closes a boundary catalog file.
func ParseFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads boundary vertices from r. The name is used in error messages.
func Parse(r io.Reader, name string) (*Set, error) {
	vertices := make(map[string][]geo.Vertex)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.SplitN(scanner.Text(), " ", fieldsPerLine)
		if len(fields) != fieldsPerLine {
			return nil, &errors.ParseError{
				Format:  "boundary",
				File:    name,
				Line:    line,
				Message: fmt.Sprintf("expected %d space-separated fields, got %d", fieldsPerLine, len(fields)),
			}
		}

		ra, err := RAToArcsec(fields[1])
		if err != nil {
			return nil, &errors.ParseError{
				Format: "boundary", File: name, Line: line,
				Message: fmt.Sprintf("right ascension %q: %v", fields[1], err),
				Err:     err,
			}
		}
		dec, err := DecToArcmin(fields[2])
		if err != nil {
			return nil, &errors.ParseError{
				Format: "boundary", File: name, Line: line,
				Message: fmt.Sprintf("declination %q: %v", fields[2], err),
				Err:     err,
			}
		}

		code := fields[3]
		vertices[code] = append(vertices[code], geo.Vertex{ra, dec})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError("read", name, err)
	}

	polygons := make(map[string]geo.Polygon, len(vertices))
	for code, ring := range vertices {
		// First (and only) ring; boundary polygons have no holes.
		polygons[code] = geo.Polygon{Rings: [][]geo.Vertex{ring}}
	}
	return &Set{polygons: polygons}, nil
}

// Len returns the number of constellations in the set.
func (s *Set) Len() int {
	return len(s.polygons)
}

// Codes returns all constellation codes in ascending lexicographic order.
func (s *Set) Codes() []string {
	codes := make([]string, 0, len(s.polygons))
	for code := range s.polygons {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Polygon returns the boundary polygon for a constellation code.
func (s *Set) Polygon(code string) (geo.Polygon, error) {
	p, ok := s.polygons[code]
	if !ok {
		return geo.Polygon{}, errors.NewNotFoundError("constellation", code)
	}
	return p, nil
}

// Compact renders the whole set as an ordered compact object mapping each
// code, in sorted order, to its polygon geometry.
func (s *Set) Compact() compact.Object {
	obj := make(compact.Object, 0, len(s.polygons))
	for _, code := range s.Codes() {
		obj = append(obj, compact.Member{Key: code, Value: s.polygons[code].Compact()})
	}
	return obj
}
