package app

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skymap/pkg/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New("test", "none", "today")
	require.NoError(t, err)
	a.logger = &logging.Nop
	return a
}

// catalogLine builds one fixed-width Hipparcos record for fixtures.
func catalogLine(mag, ra, dec, bv string) string {
	line := make([]byte, 300)
	for i := range line {
		line[i] = ' '
	}
	place := func(start, end int, s string) {
		copy(line[end-len(s):end], s)
	}
	place(41, 46, mag)
	place(51, 63, ra)
	place(64, 76, dec)
	place(245, 251, bv)
	return string(line)
}

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "hip_main.dat.gz"))
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(catalogLine("3.20", "10.0", "20.0", "-0.10") + "\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bound_verts_18.txt"),
		[]byte("1 01:02:03 05:30:00 CEP CEP\n2 02:00:00 -10:30:00 CEP CEP\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.dat"),
		[]byte("1.0 2.0 10.0 cep\n"), 0o644))

	return dir
}

func TestNew(t *testing.T) {
	a, err := New("1.2.3", "abc", "today")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", a.Version())
	require.NotNil(t, a.Config())
	assert.NotEmpty(t, a.Config().DataDir)
	assert.NotNil(t, a.Logger())
}

func TestVersionCommand(t *testing.T) {
	a := newTestApp(t)

	var out bytes.Buffer
	cmd := a.NewVersionCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "skymap test")
	assert.Contains(t, out.String(), "commit none")
}

func TestInspectCommand(t *testing.T) {
	a := newTestApp(t)
	a.config.DataDir = writeDataDir(t)

	var out bytes.Buffer
	cmd := a.NewInspectCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Cep (Cepheus): [[3723,330],[7200,-630]]\n", out.String())
}

func TestInspectCommandUnknownCode(t *testing.T) {
	a := newTestApp(t)
	a.config.DataDir = writeDataDir(t)

	cmd := a.NewInspectCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"xxx"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XXX")
}

func TestBuildCommandWritesDocument(t *testing.T) {
	a := newTestApp(t)
	a.config.DataDir = writeDataDir(t)
	a.config.RunID = "abcd"

	output := filepath.Join(t.TempDir(), "sky.html")
	cmd := a.NewBuildCommand()
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("output", output))
	require.NoError(t, cmd.Execute())

	doc, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "sky-abcd")
	assert.Contains(t, string(doc), "'CEP'")
}

func TestBuildCommandStdout(t *testing.T) {
	a := newTestApp(t)
	a.config.DataDir = writeDataDir(t)
	a.config.RunID = "abcd"

	var out bytes.Buffer
	cmd := a.NewBuildCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("output", "-"))
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "sky-abcd")
}

func TestBuildCommandFailsOnMissingData(t *testing.T) {
	a := newTestApp(t)
	a.config.DataDir = t.TempDir() // empty: no catalogs

	cmd := a.NewBuildCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Set("output", "-"))
	assert.Error(t, cmd.Execute())
}

func TestExecuteVersionFlag(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := Context()
	defer cancel()

	require.NoError(t, a.Execute(ctx, []string{"--help"}))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Cep (Cepheus)", displayName("CEP"))
	assert.Equal(t, "Zzz", displayName("ZZZ"))
}
