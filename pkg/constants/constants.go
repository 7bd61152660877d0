// Package constants provides shared constants used throughout the skymap
// codebase. This includes default catalog file names, file permissions, and
// other configuration values that should be consistent across the
// application.
package constants

// Default catalog file names define the conventional layout of a skymap
// data directory. All three inputs are local files; the star catalog is
// usually gzip-compressed on disk.
const (
	// DefaultStarCatalogFile is the Hipparcos main catalog, one
	// fixed-width record per line, gzip-compressed.
	DefaultStarCatalogFile = "hip_main.dat.gz"

	// DefaultBoundaryFile holds the IAU constellation boundary vertices
	// (epoch B1875 edition 18), one space-delimited vertex per line.
	DefaultBoundaryFile = "bound_verts_18.txt"

	// DefaultDecisionFile is the constellation label decision table,
	// one whitespace-delimited strip record per line.
	DefaultDecisionFile = "data.dat"

	// DefaultManifestFile optionally overrides the file names above for
	// a given data directory.
	DefaultManifestFile = "skymap.yaml"

	// DefaultDataDir is where catalog files are looked up when no data
	// directory is configured.
	DefaultDataDir = "data"

	// DefaultOutputFile is where the assembled document is written when
	// no output path is configured.
	DefaultOutputFile = "sky.html"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxCatalogLineLength caps the scanner buffer for a single catalog
	// record. Hipparcos main catalog lines are 450 bytes; this leaves
	// generous headroom without letting a corrupt file allocate freely.
	MaxCatalogLineLength = 4096

	// RunIDBytes is the number of random bytes behind a generated run
	// identifier (hex-encoded, so the identifier is twice as long).
	RunIDBytes = 4
)
