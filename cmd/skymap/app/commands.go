package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/skymap"
	"github.com/agentstation/skymap/pkg/boundaries"
	"github.com/agentstation/skymap/pkg/compact"
	"github.com/agentstation/skymap/pkg/constants"
	"github.com/agentstation/skymap/pkg/logging"
)

// newSkymap builds a facade instance from the application configuration.
func (a *App) newSkymap() (*skymap.Skymap, error) {
	opts := []skymap.Option{
		skymap.WithDataDir(a.config.DataDir),
		skymap.WithLogger(a.logger),
	}
	if a.config.Manifest != "" {
		opts = append(opts, skymap.WithManifest(a.config.Manifest))
	}
	if a.config.Stars != "" {
		opts = append(opts, skymap.WithStarCatalog(a.config.Stars))
	}
	if a.config.Boundaries != "" {
		opts = append(opts, skymap.WithBoundaryCatalog(a.config.Boundaries))
	}
	if a.config.Decisions != "" {
		opts = append(opts, skymap.WithDecisionTable(a.config.Decisions))
	}
	if a.config.RunID != "" {
		opts = append(opts, skymap.WithRunID(a.config.RunID))
	}
	return skymap.New(opts...)
}

// NewBuildCommand creates the build command, which runs the full conversion
// pipeline and writes the assembled document.
func (a *App) NewBuildCommand() *cobra.Command {
	var output string
	var runID string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert the catalogs into a sky map HTML document",
		Long: `Build parses the star catalog, the constellation boundary catalog, and the
label decision table, serializes the aggregated structures, and writes one
self-contained HTML document. Any parse failure aborts the run; nothing is
written on failure.`,
		Example: `  skymap build
  skymap build --data ./catalogs -o sky.html
  skymap build --run-id abcd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runID != "" {
				a.config.RunID = runID
			}
			sm, err := a.newSkymap()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), a.logger)
			doc, err := sm.Build(ctx)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(output, doc, constants.FilePermissions); err != nil {
				return err
			}
			a.logger.Info().Str("path", output).Msg("Wrote sky map document")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", a.config.Output, "output path, or - for stdout")
	cmd.Flags().StringVar(&runID, "run-id", "", "pin the document run identifier")

	return cmd
}

// NewInspectCommand creates the inspect command, a smoke check that prints
// one constellation's boundary polygon.
func (a *App) NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [code]",
		Short: "Print a constellation's boundary polygon",
		Long: `Inspect parses the boundary catalog and prints the vertex ring of one
constellation as [RA arc-seconds, Dec arc-minutes] pairs. With no argument it
prints Cepheus, a quick smoke check that the catalog parses.`,
		Example: `  skymap inspect
  skymap inspect UMI`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := "CEP"
			if len(args) == 1 {
				code = strings.ToUpper(args[0])
			}

			sm, err := a.newSkymap()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), a.logger)
			set, err := sm.Boundaries(ctx)
			if err != nil {
				return err
			}
			polygon, err := set.Polygon(code)
			if err != nil {
				return err
			}

			ring := make(compact.Array, 0, len(polygon.Ring()))
			for _, v := range polygon.Ring() {
				ring = append(ring, compact.Array{v.RA(), v.Dec()})
			}
			text, err := compact.MarshalString(ring)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", displayName(code), text)
			return nil
		},
	}

	return cmd
}

// displayName renders a constellation code with its proper name when known,
// e.g. "Cep (Cepheus)".
func displayName(code string) string {
	title := cases.Title(language.English).String(strings.ToLower(code))
	if name, ok := boundaries.Name(code); ok {
		return fmt.Sprintf("%s (%s)", title, name)
	}
	return title
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skymap %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
