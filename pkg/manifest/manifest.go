// Package manifest loads the optional skymap.yaml dataset manifest, which
// lets a data directory override the conventional catalog file names and
// pin a run identifier.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/skymap/pkg/constants"
	"github.com/agentstation/skymap/pkg/errors"
)

// Manifest names the input files of one dataset. Relative paths are
// resolved against the data directory that contains the manifest.
type Manifest struct {
	// Stars is the Hipparcos main catalog file (.gz accepted).
	Stars string `yaml:"stars"`

	// Boundaries is the constellation boundary vertex file.
	Boundaries string `yaml:"boundaries"`

	// Decisions is the constellation label decision table.
	Decisions string `yaml:"decisions"`

	// RunID pins the document's run identifier. Empty means a random
	// identifier is generated per build.
	RunID string `yaml:"run_id"`
}

// Default returns a manifest naming the conventional catalog files.
func Default() Manifest {
	return Manifest{
		Stars:      constants.DefaultStarCatalogFile,
		Boundaries: constants.DefaultBoundaryFile,
		Decisions:  constants.DefaultDecisionFile,
	}
}

// Load reads a manifest file. Fields left empty fall back to the
// conventional file names.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.NewIOError("read", path, err)
	}

	m := Default()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.NewParseError("yaml", path, err.Error(), err)
	}
	m.applyDefaults()
	return m, nil
}

// Resolve returns a copy of the manifest with every relative path joined
// onto the given data directory.
func (m Manifest) Resolve(dataDir string) Manifest {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dataDir, p)
	}
	m.Stars = resolve(m.Stars)
	m.Boundaries = resolve(m.Boundaries)
	m.Decisions = resolve(m.Decisions)
	return m
}

func (m *Manifest) applyDefaults() {
	def := Default()
	if m.Stars == "" {
		m.Stars = def.Stars
	}
	if m.Boundaries == "" {
		m.Boundaries = def.Boundaries
	}
	if m.Decisions == "" {
		m.Decisions = def.Decisions
	}
}
