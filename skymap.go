// Package skymap converts a star catalog, a constellation boundary catalog,
// and a constellation label decision table into a single self-contained HTML
// document rendering an interactive sky map.
//
// The conversion is a one-shot batch pipeline: each input is opened, fully
// consumed, and closed before the next stage begins; the aggregated
// structures are serialized into a compact JSON dialect and substituted into
// the map template. Any error aborts the whole run — there is no partial
// output mode.
package skymap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/skymap/internal/embedded"
	"github.com/agentstation/skymap/pkg/boundaries"
	"github.com/agentstation/skymap/pkg/compact"
	"github.com/agentstation/skymap/pkg/constants"
	"github.com/agentstation/skymap/pkg/decisions"
	"github.com/agentstation/skymap/pkg/errors"
	"github.com/agentstation/skymap/pkg/hipparcos"
	"github.com/agentstation/skymap/pkg/logging"
	"github.com/agentstation/skymap/pkg/manifest"
	"github.com/agentstation/skymap/pkg/render"
)

// Skymap builds sky map documents from a configured dataset.
type Skymap struct {
	config *config

	starsPath      string
	boundariesPath string
	decisionsPath  string
	runID          string

	logger *zerolog.Logger
}

// Bundle holds the serialized data fragments of one build, before template
// assembly. The fragments are compact-dialect text, ready for embedding.
type Bundle struct {
	BoundaryData string
	DecisionData string
	StarData     string
	RunID        string
}

// New creates a Skymap with the given options. Catalog paths not set
// explicitly are resolved through the dataset manifest (skymap.yaml in the
// data directory, if present) and fall back to the conventional file names.
func New(opts ...Option) (*Skymap, error) {
	c := &config{
		dataDir: constants.DefaultDataDir,
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	m, err := resolveManifest(c)
	if err != nil {
		return nil, err
	}

	s := &Skymap{
		config:         c,
		starsPath:      firstNonEmpty(c.starsPath, m.Stars),
		boundariesPath: firstNonEmpty(c.boundariesPath, m.Boundaries),
		decisionsPath:  firstNonEmpty(c.decisionsPath, m.Decisions),
		runID:          firstNonEmpty(c.runID, m.RunID),
		logger:         c.logger,
	}
	if s.runID == "" {
		id, err := newRunID()
		if err != nil {
			return nil, err
		}
		s.runID = id
	}
	return s, nil
}

// resolveManifest loads the dataset manifest. An explicit manifest path
// must exist; the conventional one inside the data directory is optional.
func resolveManifest(c *config) (manifest.Manifest, error) {
	path := c.manifestPath
	if path == "" {
		conventional := filepath.Join(c.dataDir, constants.DefaultManifestFile)
		if _, err := os.Stat(conventional); err != nil {
			return manifest.Default().Resolve(c.dataDir), nil
		}
		path = conventional
	}

	m, err := manifest.Load(path)
	if err != nil {
		return manifest.Manifest{}, err
	}
	return m.Resolve(c.dataDir), nil
}

// RunID returns the identifier stamped into built documents.
func (s *Skymap) RunID() string {
	return s.runID
}

// Boundaries parses and returns the constellation boundary set.
func (s *Skymap) Boundaries(ctx context.Context) (*boundaries.Set, error) {
	logger := s.buildLogger(ctx)

	start := time.Now()
	set, err := boundaries.ParseFile(s.boundariesPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("file", s.boundariesPath).
		Int("constellations", set.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Parsed boundary catalog")
	return set, nil
}

// Decisions parses and returns the label decision table.
func (s *Skymap) Decisions(ctx context.Context) (decisions.Table, error) {
	logger := s.buildLogger(ctx)

	table, err := decisions.ParseFile(s.decisionsPath)
	if err != nil {
		return decisions.Table{}, err
	}
	logger.Debug().
		Str("file", s.decisionsPath).
		Int("records", len(table.Records)).
		Msg("Loaded decision table")
	return table, nil
}

// Bundle runs the three extraction stages and serializes their results.
// Each catalog file is opened, fully consumed, and closed in turn.
func (s *Skymap) Bundle(ctx context.Context) (*Bundle, error) {
	logger := s.buildLogger(ctx)
	start := time.Now()

	set, err := s.Boundaries(ctx)
	if err != nil {
		return nil, err
	}
	boundaryData, err := compact.MarshalString(set.Compact())
	if err != nil {
		return nil, err
	}

	table, err := s.Decisions(ctx)
	if err != nil {
		return nil, err
	}
	decisionData, err := compact.MarshalString(table.Compact())
	if err != nil {
		return nil, err
	}

	starData, err := s.buildStarData(logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Dur("elapsed", time.Since(start)).
		Str("run_id", s.runID).
		Msg("Bundled sky map data")

	return &Bundle{
		BoundaryData: boundaryData,
		DecisionData: decisionData,
		StarData:     starData,
		RunID:        s.runID,
	}, nil
}

// buildStarData parses the star catalog, groups it by magnitude and color,
// and serializes the groups. The source is closed before returning.
func (s *Skymap) buildStarData(logger *zerolog.Logger) (string, error) {
	src, err := hipparcos.Open(s.starsPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	fields, err := hipparcos.Group(hipparcos.NewScanner(src, s.starsPath))
	if err != nil {
		return "", err
	}
	logger.Debug().
		Str("file", s.starsPath).
		Int("groups", len(fields)).
		Msg("Grouped star catalog")

	arr := make(compact.Array, 0, len(fields))
	for _, f := range fields {
		arr = append(arr, f.Compact())
	}
	return compact.MarshalString(arr)
}

// Build runs the full pipeline and returns the assembled HTML document.
func (s *Skymap) Build(ctx context.Context) ([]byte, error) {
	bundle, err := s.Bundle(ctx)
	if err != nil {
		return nil, err
	}

	template, name, err := s.template()
	if err != nil {
		return nil, err
	}
	script, err := s.script()
	if err != nil {
		return nil, err
	}

	doc, err := render.Assemble(template, name, render.Fragments{
		BoundaryData: bundle.BoundaryData,
		DecisionData: bundle.DecisionData,
		StarData:     bundle.StarData,
		Script:       script,
	}, bundle.RunID)
	if err != nil {
		return nil, err
	}

	s.buildLogger(ctx).Info().
		Int("bytes", len(doc)).
		Msg("Assembled sky map document")
	return []byte(doc), nil
}

func (s *Skymap) template() (content, name string, err error) {
	if s.config.templatePath != "" {
		data, err := os.ReadFile(s.config.templatePath)
		if err != nil {
			return "", "", errors.NewIOError("read", s.config.templatePath, err)
		}
		return string(data), s.config.templatePath, nil
	}
	content, err = embedded.Template()
	return content, embedded.TemplatePath, err
}

func (s *Skymap) script() (string, error) {
	if s.config.scriptPath != "" {
		data, err := os.ReadFile(s.config.scriptPath)
		if err != nil {
			return "", errors.NewIOError("read", s.config.scriptPath, err)
		}
		return string(data), nil
	}
	return embedded.Script()
}

// buildLogger prefers a logger carried in the context over the configured one.
func (s *Skymap) buildLogger(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger := logging.FromContext(ctx); logger != logging.Default() {
			return logger
		}
	}
	return s.logger
}

// newRunID generates a short random hex identifier.
func newRunID() (string, error) {
	b := make([]byte, constants.RunIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating run id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
