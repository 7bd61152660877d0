// Package render assembles the final sky map document: it substitutes the
// serialized data fragments and the render script into the HTML template
// and stamps the run identifier.
//
// Substitution is deliberately dumb string replacement over fixed tokens.
// The template carries exactly four named placeholders plus one literal
// run-id token; a template missing any of them is broken and assembly
// fails rather than emitting a half-filled document.
package render

import (
	"fmt"
	"strings"

	"github.com/agentstation/skymap/pkg/errors"
)

// Named placeholders the template must contain.
const (
	PlaceholderBoundaryData = "%(boundary_data)s"
	PlaceholderDecisionData = "%(decision_data)s"
	PlaceholderStarData     = "%(star_data)s"
	PlaceholderScript       = "%(js_code)s"

	// TokenRunID is the literal token replaced by the run identifier.
	// It may appear any number of times (element ids, variable names).
	TokenRunID = "UNIQUE_ID"
)

// Fragments carries the four strings substituted into the template.
type Fragments struct {
	BoundaryData string
	DecisionData string
	StarData     string
	Script       string
}

// Assemble fills the template's placeholders with the given fragments and
// replaces every occurrence of the run-id token. The template name is used
// in error messages only.
func Assemble(template, name string, frags Fragments, runID string) (string, error) {
	if runID == "" {
		return "", errors.NewValidationError("run_id", runID, "cannot be empty")
	}

	replacements := []struct {
		placeholder string
		value       string
	}{
		{PlaceholderBoundaryData, frags.BoundaryData},
		{PlaceholderDecisionData, frags.DecisionData},
		{PlaceholderStarData, frags.StarData},
		{PlaceholderScript, frags.Script},
	}

	doc := template
	for _, r := range replacements {
		if !strings.Contains(doc, r.placeholder) {
			return "", errors.NewParseError("template", name,
				fmt.Sprintf("missing placeholder %s", r.placeholder), nil)
		}
		doc = strings.ReplaceAll(doc, r.placeholder, r.value)
	}

	if !strings.Contains(doc, TokenRunID) {
		return "", errors.NewParseError("template", name,
			fmt.Sprintf("missing run-id token %s", TokenRunID), nil)
	}
	return strings.ReplaceAll(doc, TokenRunID, runID), nil
}
