package boundaries_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skymap/pkg/boundaries"
	"github.com/agentstation/skymap/pkg/compact"
	pkgerrors "github.com/agentstation/skymap/pkg/errors"
	"github.com/agentstation/skymap/pkg/geo"
)

func TestRAToArcsec(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"01:02:03", 3723},
		{"00:00:00", 0},
		{"23:59:59", 86399},
		{"12:00:00", 43200},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := boundaries.RAToArcsec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRAToArcsecRejectsBadInput(t *testing.T) {
	for _, in := range []string{"01:02", "1:2:3:4", "aa:00:00", "-1:00:00"} {
		_, err := boundaries.RAToArcsec(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecToArcmin(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5:30:0", 330},
		{"-5:30:0", -330}, // sign copied onto the minutes field
		{"+88:0:0", 5280},
		{"-0:30:0", -30}, // "-0" degrees still forces minutes negative
		{"0:30:0", 30},   // plain zero stays positive
		{"0:0:0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := boundaries.DecToArcmin(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecToArcminRejectsNonzeroSeconds(t *testing.T) {
	_, err := boundaries.DecToArcmin("10:20:05")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsAssumption(err))
}

const sampleCatalog = `1 01:02:03 05:30:00 CEP CEP,UMI
2 02:00:00 05:30:00 CEP CEP
3 02:00:00 -10:30:00 CEP CEP
1 00:00:00 -85:00:00 OCT OCT, Octans region
2 03:00:00 -85:00:00 OCT OCT
1 12:00:00 00:00:00 AND AND
`

func TestParse(t *testing.T) {
	set, err := boundaries.Parse(strings.NewReader(sampleCatalog), "bound_verts_18.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	// Keys in strictly ascending lexicographic order.
	assert.Equal(t, []string{"AND", "CEP", "OCT"}, set.Codes())

	cep, err := set.Polygon("CEP")
	require.NoError(t, err)
	// Vertex order preserved from input; one ring, no holes.
	require.Len(t, cep.Rings, 1)
	assert.Equal(t, []geo.Vertex{{3723, 330}, {7200, 330}, {7200, -630}}, cep.Ring())
}

func TestParsePolygonLookupMiss(t *testing.T) {
	set, err := boundaries.Parse(strings.NewReader(sampleCatalog), "t")
	require.NoError(t, err)

	_, err = set.Polygon("XXX")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestParseFieldCountError(t *testing.T) {
	_, err := boundaries.Parse(strings.NewReader("1 01:02:03 05:30:00\n"), "bound_verts_18.txt")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsParseError(err))
	assert.Contains(t, err.Error(), "bound_verts_18.txt:1")
}

func TestParseBadAngleIsFatal(t *testing.T) {
	in := "1 01:02:03 05:30:00 CEP CEP\n2 xx:00:00 05:30:00 CEP CEP\n"
	_, err := boundaries.Parse(strings.NewReader(in), "t")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsParseError(err))
	assert.Contains(t, err.Error(), "t:2")
}

func TestParseNonzeroSecondsIsFatal(t *testing.T) {
	_, err := boundaries.Parse(strings.NewReader("1 01:02:03 10:20:05 CEP CEP\n"), "t")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsAssumption(err))
}

func TestSetCompact(t *testing.T) {
	in := "1 00:00:01 0:1:0 UMI UMI\n1 00:00:02 -0:2:0 CEP CEP\n"
	set, err := boundaries.Parse(strings.NewReader(in), "t")
	require.NoError(t, err)

	got, err := compact.MarshalString(set.Compact())
	require.NoError(t, err)
	assert.Equal(t,
		"{'CEP':{'type':'Polygon','coordinates':[[[2,-2]]]},"+
			"'UMI':{'type':'Polygon','coordinates':[[[1,1]]]}}",
		got)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bound_verts_18.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	set, err := boundaries.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestParseFileMissing(t *testing.T) {
	_, err := boundaries.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsIOError(err))
}

func TestName(t *testing.T) {
	name, ok := boundaries.Name("CEP")
	require.True(t, ok)
	assert.Equal(t, "Cepheus", name)

	// Split-constellation suffix resolves to the base code.
	name, ok = boundaries.Name("SER1")
	require.True(t, ok)
	assert.Equal(t, "Serpens", name)

	_, ok = boundaries.Name("ZZZ")
	assert.False(t, ok)
}
