// Package decisions reads the constellation label decision table: rectangular
// right-ascension strips, each naming the constellation that owns any sky
// point falling inside it. Record order is significant — lookups scan the
// table top to bottom and the first matching strip wins — so the loader
// preserves input order exactly.
package decisions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/skymap/pkg/compact"
	"github.com/agentstation/skymap/pkg/errors"
)

// fieldsPerLine is the exact whitespace-separated token count of a record:
// RA start, RA end, declination, constellation code.
const fieldsPerLine = 4

// hoursToDegrees converts right ascension hours to degrees.
const hoursToDegrees = 15.0

// Record is one decision strip. RA bounds and declination are in degrees
// (the table stores RA in hours; the loader converts). The code is
// uppercased.
type Record struct {
	RAStart float64
	RAEnd   float64
	Dec     float64
	Code    string
}

// Table is an ordered decision table.
type Table struct {
	Records []Record
}

// ParseFile opens, parses, and closes a decision table file.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.NewIOError("open", path, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads decision records from r in input order. The name is used in
// error messages.
func Parse(r io.Reader, name string) (Table, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) != fieldsPerLine {
			return Table{}, &errors.ParseError{
				Format:  "decision",
				File:    name,
				Line:    line,
				Message: fmt.Sprintf("expected %d whitespace-separated fields, got %d", fieldsPerLine, len(fields)),
			}
		}

		var v [3]float64
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return Table{}, &errors.ParseError{
					Format: "decision", File: name, Line: line,
					Message: fmt.Sprintf("field %q is not a number", fields[i]),
					Err:     err,
				}
			}
			v[i] = f
		}

		records = append(records, Record{
			RAStart: v[0] * hoursToDegrees,
			RAEnd:   v[1] * hoursToDegrees,
			Dec:     v[2],
			Code:    strings.ToUpper(fields[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return Table{}, errors.NewIOError("read", name, err)
	}

	return Table{Records: records}, nil
}

// Find returns the constellation code owning the given sky point, in degrees
// and in the table's coordinate epoch. The scan is first-match-wins: the
// first record whose declination floor lies at or below the point and whose
// RA strip contains it decides. Returns false if no strip matches.
func (t Table) Find(raDeg, decDeg float64) (string, bool) {
	for _, rec := range t.Records {
		if decDeg >= rec.Dec && raDeg >= rec.RAStart && raDeg < rec.RAEnd {
			return rec.Code, true
		}
	}
	return "", false
}

// Compact renders the table as an array of [ra_start, ra_end, dec, code]
// records, preserving table order.
func (t Table) Compact() compact.Array {
	arr := make(compact.Array, 0, len(t.Records))
	for _, rec := range t.Records {
		arr = append(arr, compact.Array{rec.RAStart, rec.RAEnd, rec.Dec, rec.Code})
	}
	return arr
}
