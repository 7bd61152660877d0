package skymap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/skymap/pkg/errors"
)

// Option is a function that configures a Skymap instance
type Option func(*config) error

// config holds the resolved build configuration. Paths left empty are
// filled from the dataset manifest (or its defaults) when New runs.
type config struct {
	dataDir      string
	manifestPath string

	// Explicit catalog overrides; win over the manifest.
	starsPath      string
	boundariesPath string
	decisionsPath  string

	// Template/script overrides; empty means the embedded assets.
	templatePath string
	scriptPath   string

	runID  string
	logger *zerolog.Logger
}

// WithDataDir sets the directory catalog files are resolved against.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("data_dir", dir, "cannot be empty")
		}
		c.dataDir = dir
		return nil
	}
}

// WithManifest sets an explicit dataset manifest path instead of looking
// for one inside the data directory.
func WithManifest(path string) Option {
	return func(c *config) error {
		c.manifestPath = path
		return nil
	}
}

// WithStarCatalog overrides the star catalog file path.
func WithStarCatalog(path string) Option {
	return func(c *config) error {
		c.starsPath = path
		return nil
	}
}

// WithBoundaryCatalog overrides the boundary vertex file path.
func WithBoundaryCatalog(path string) Option {
	return func(c *config) error {
		c.boundariesPath = path
		return nil
	}
}

// WithDecisionTable overrides the decision table file path.
func WithDecisionTable(path string) Option {
	return func(c *config) error {
		c.decisionsPath = path
		return nil
	}
}

// WithTemplate overrides the embedded HTML template with a file on disk.
func WithTemplate(path string) Option {
	return func(c *config) error {
		c.templatePath = path
		return nil
	}
}

// WithScript overrides the embedded render script with a file on disk.
func WithScript(path string) Option {
	return func(c *config) error {
		c.scriptPath = path
		return nil
	}
}

// WithRunID pins the run identifier instead of generating a random one.
func WithRunID(id string) Option {
	return func(c *config) error {
		if id == "" {
			return errors.NewValidationError("run_id", id, "cannot be empty")
		}
		c.runID = id
		return nil
	}
}

// WithLogger sets the logger used during builds.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
