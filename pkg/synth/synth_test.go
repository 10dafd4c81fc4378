package synth

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrior-graph/sonic-cfggen/internal/sources"
	"github.com/warrior-graph/sonic-cfggen/pkg/render"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	base := writeFile(t, "base.yaml", `
PORT:
  Ethernet10:
    mtu: "9100"
  Ethernet2:
    mtu: "9100"
minigraph_hwsku: ACS-MSN2700
`)
	return New(
		&sources.File{Path: base},
		&sources.Inline{JSON: `{"PORT": {"Ethernet2": {"mtu": "1500"}}}`},
	)
}

func TestAggregate(t *testing.T) {
	p := testPipeline(t)
	agg, err := p.Aggregate(context.Background())
	require.NoError(t, err)

	port := agg["PORT"].(map[string]any)
	assert.Equal(t, "1500", port["Ethernet2"].(map[string]any)["mtu"],
		"inline overrides outrank data files")
	assert.Equal(t, "9100", port["Ethernet10"].(map[string]any)["mtu"])

	again, err := p.Aggregate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, agg, again, "aggregate is computed once")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPipeline(t).WriteJSON(context.Background(), &buf, ""))

	out := buf.String()
	assert.JSONEq(t, `{
		"PORT": {"Ethernet2": {"mtu": "1500"}, "Ethernet10": {"mtu": "9100"}},
		"minigraph_hwsku": "ACS-MSN2700"
	}`, out)
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("Ethernet2")),
		bytes.Index(buf.Bytes(), []byte("Ethernet10")),
		"records serialize in natural order")
}

func TestWriteJSONLookup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPipeline(t).WriteJSON(context.Background(), &buf, "Ethernet2"))
	assert.JSONEq(t, `{"PORT": {"mtu": "1500"}, "minigraph_hwsku": "ACS-MSN2700"}`, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPipeline(t).WriteYAML(context.Background(), &buf, ""))

	out := buf.String()
	assert.Contains(t, out, "PORT:")
	assert.Contains(t, out, "minigraph_hwsku: ACS-MSN2700")
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("Ethernet2")),
		bytes.Index(buf.Bytes(), []byte("Ethernet10")))
}

func TestRenderPipeline(t *testing.T) {
	tmpl := writeFile(t, "ports.tmpl", `{{- range natural_sort .PORT }}
{{ . }} mtu {{ index $.PORT . "mtu" }}
{{- end }}
`)

	var buf bytes.Buffer
	require.NoError(t, testPipeline(t).Render(context.Background(), &buf, render.New(), tmpl))
	assert.Equal(t, "\nEthernet2 mtu 1500\nEthernet10 mtu 9100\n", buf.String())
}

func TestPipelineSourceFailure(t *testing.T) {
	p := New(&sources.File{Path: "/nonexistent.yaml"})
	var buf bytes.Buffer
	err := p.WriteJSON(context.Background(), &buf, "")
	assert.Error(t, err)
}
