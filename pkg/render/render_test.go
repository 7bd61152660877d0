package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/skymap/pkg/errors"
	"github.com/agentstation/skymap/pkg/render"
)

const template = `<div id="sky-UNIQUE_ID">
<script>
var boundaries_UNIQUE_ID = %(boundary_data)s;
var decisions_UNIQUE_ID = %(decision_data)s;
var stars_UNIQUE_ID = %(star_data)s;
%(js_code)s
</script>
</div>`

func sampleFragments() render.Fragments {
	return render.Fragments{
		BoundaryData: "{'CEP':{}}",
		DecisionData: "[[15,30,10,'CEP']]",
		StarData:     "[{'magnitude':3}]",
		Script:       "drawSky();",
	}
}

func TestAssemble(t *testing.T) {
	doc, err := render.Assemble(template, "sky.html", sampleFragments(), "abcd")
	require.NoError(t, err)

	assert.Contains(t, doc, `id="sky-abcd"`)
	assert.Contains(t, doc, "var boundaries_abcd = {'CEP':{}};")
	assert.Contains(t, doc, "var decisions_abcd = [[15,30,10,'CEP']];")
	assert.Contains(t, doc, "var stars_abcd = [{'magnitude':3}];")
	assert.Contains(t, doc, "drawSky();")
	assert.NotContains(t, doc, "UNIQUE_ID")
	assert.NotContains(t, doc, "%(")
}

func TestAssembleMissingPlaceholder(t *testing.T) {
	broken := strings.ReplaceAll(template, render.PlaceholderStarData, "")

	_, err := render.Assemble(broken, "sky.html", sampleFragments(), "abcd")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsParseError(err))
	assert.Contains(t, err.Error(), "%(star_data)s")
}

func TestAssembleMissingRunIDToken(t *testing.T) {
	broken := strings.ReplaceAll(template, render.TokenRunID, "static")

	_, err := render.Assemble(broken, "sky.html", sampleFragments(), "abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE_ID")
}

func TestAssembleEmptyRunID(t *testing.T) {
	_, err := render.Assemble(template, "sky.html", sampleFragments(), "")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestAssembleDeterministic(t *testing.T) {
	first, err := render.Assemble(template, "sky.html", sampleFragments(), "abcd")
	require.NoError(t, err)
	second, err := render.Assemble(template, "sky.html", sampleFragments(), "abcd")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
