// Package hipparcos reads the Hipparcos main catalog (hip_main.dat), a
// fixed-width text format with one star record per line. Only the four
// fields the sky map needs are extracted: visual magnitude, right ascension,
// declination, and the B−V color index.
//
// The catalog is usually stored gzip-compressed; Open handles both plain
// and compressed sources. Parsing is strict: a record whose fields do not
// parse as numbers fails the whole run. There is no partial-catalog mode.
package hipparcos

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/skymap/pkg/constants"
	"github.com/agentstation/skymap/pkg/errors"
)

// Byte offsets of the extracted fields within a record, as half-open Go
// slice ranges. The format documentation gives 1-indexed inclusive column
// spans: Vmag 42–46, RAdeg 52–63, DEdeg 65–76, B−V 246–251.
const (
	magStart, magEnd = 41, 46
	raStart, raEnd   = 51, 63
	decStart, decEnd = 64, 76
	bvStart, bvEnd   = 245, 251

	// minLineLength is the shortest line that still contains the B−V field.
	minLineLength = bvEnd
)

// Record is one parsed star: position in degrees (J1991.25, ICRS), apparent
// visual magnitude, and B−V color index.
type Record struct {
	RA         float64
	Dec        float64
	Magnitude  float64
	ColorIndex float64
}

// Scanner streams records from a catalog source, one line at a time, in the
// style of bufio.Scanner:
//
//	s := hipparcos.NewScanner(r, "hip_main.dat")
//	for s.Scan() {
//	    rec := s.Record()
//	    ...
//	}
//	if err := s.Err(); err != nil { ... }
//
// The sequence is lazy and single-pass; restarting requires re-opening the
// source.
type Scanner struct {
	scanner *bufio.Scanner
	name    string
	line    int
	record  Record
	err     error
}

// NewScanner returns a Scanner reading catalog lines from r. The name is
// used in error messages only.
func NewScanner(r io.Reader, name string) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 1024), constants.MaxCatalogLineLength)
	return &Scanner{scanner: s, name: name}
}

// Scan advances to the next record. It returns false when the source is
// exhausted or a record fails to parse; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.scanner.Scan() {
		s.err = errors.WrapIO("read", s.name, s.scanner.Err())
		return false
	}
	s.line++

	rec, err := parseLine(s.scanner.Text())
	if err != nil {
		s.err = &errors.ParseError{
			Format:  "hipparcos",
			File:    s.name,
			Line:    s.line,
			Message: err.Error(),
			Err:     err,
		}
		return false
	}
	s.record = rec
	return true
}

// Record returns the record parsed by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the first error encountered, or nil at normal end of input.
func (s *Scanner) Err() error {
	return s.err
}

func parseLine(line string) (Record, error) {
	if len(line) < minLineLength {
		return Record{}, fmt.Errorf("record is %d bytes, want at least %d", len(line), minLineLength)
	}

	mag, err := parseField(line, magStart, magEnd, "magnitude")
	if err != nil {
		return Record{}, err
	}
	ra, err := parseField(line, raStart, raEnd, "right ascension")
	if err != nil {
		return Record{}, err
	}
	dec, err := parseField(line, decStart, decEnd, "declination")
	if err != nil {
		return Record{}, err
	}
	bv, err := parseField(line, bvStart, bvEnd, "color index")
	if err != nil {
		return Record{}, err
	}

	return Record{RA: ra, Dec: dec, Magnitude: mag, ColorIndex: bv}, nil
}

func parseField(line string, start, end int, field string) (float64, error) {
	text := strings.TrimSpace(line[start:end])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s field %q", field, text)
	}
	return v, nil
}

// Open opens a catalog file for reading, transparently decompressing
// sources with a .gz suffix. The returned ReadCloser closes both the
// decompressor and the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.NewIOError("open", path, err)
	}
	return &gzipSource{ReadCloser: zr, file: f}, nil
}

// gzipSource closes the gzip reader and its backing file together.
type gzipSource struct {
	io.ReadCloser
	file *os.File
}

func (g *gzipSource) Close() error {
	zErr := g.ReadCloser.Close()
	fErr := g.file.Close()
	if zErr != nil {
		return zErr
	}
	return fErr
}
