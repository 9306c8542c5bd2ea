// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

func sampleTable() *flatten.Table {
	table := flatten.NewTable([]string{"Object Name", "Value", "Link"})
	table.Append(flatten.Record{{Column: "Object Name", Value: "grp1"}, {Column: "Value", Value: "1.1.1.1, net2"}, {Column: "Link", Value: "u"}})
	table.Append(flatten.Record{{Column: "Object Name", Value: `say "hi"`}})
	return table
}

// =============================================================================
// EXPORTER TESTS
// =============================================================================

func TestCSVExporter_Quoting(t *testing.T) {
	out, err := NewCSVExporter(nil).Export(sampleTable())
	require.NoError(t, err)

	want := "Object Name,Value,Link\n" +
		"grp1,\"1.1.1.1, net2\",u\n" +
		"\"say \"\"hi\"\"\",,\n"
	assert.Equal(t, want, string(out))
}

func TestCSVExporter_Delimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = ';'
	out, err := NewCSVExporter(opts).Export(sampleTable())
	require.NoError(t, err)
	assert.Contains(t, string(out), "grp1;1.1.1.1, net2;u\n")
}

func TestCSVExporter_HeaderOnly(t *testing.T) {
	out, err := NewCSVExporter(nil).Export(flatten.NewTable(flatten.RuleColumns))
	require.NoError(t, err)
	assert.Equal(t, "Index,Name,Action,SourceZone,DestinationZone,SourceNetwork,DestinationNetwork,SourcePort,DestinationPort,Comment,Link\n", string(out))
}

func TestJSONExporter(t *testing.T) {
	out, err := NewJSONExporter(nil).Export(sampleTable())
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Object Name": "grp1", "Value": "1.1.1.1, net2", "Link": "u"},
		{"Object Name": "say \"hi\"", "Value": "", "Link": ""}
	]`, string(out))

	empty, err := NewJSONExporter(nil).Export(flatten.NewTable([]string{"A"}))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestMarkdownExporter(t *testing.T) {
	table := flatten.NewTable([]string{"A", "B"})
	table.Append(flatten.Record{{Column: "A", Value: "x|y"}})

	opts := DefaultOptions()
	opts.Title = "Networks"
	out, err := NewMarkdownExporter(opts).Export(table)
	require.NoError(t, err)

	want := "# Networks\n\n" +
		"| A    | B   |\n" +
		"| ---- | --- |\n" +
		"| x\\|y |     |\n"
	assert.Equal(t, want, string(out))
}

func TestHTMLExporter(t *testing.T) {
	out, err := NewHTMLExporter(&Options{Title: "Network <Groups>"}).Export(sampleTable())
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<title>Network &lt;Groups&gt;</title>")
	assert.Contains(t, page, "<p class=\"count\">2 rows</p>")
	assert.Contains(t, page, "<tr><th>Object Name</th><th>Value</th><th>Link</th></tr>")
	assert.Contains(t, page, "<tr><td>say &#34;hi&#34;</td><td></td><td></td></tr>")

	again, err := NewHTMLExporter(&Options{Title: "Network <Groups>"}).Export(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestExporters_NilTable(t *testing.T) {
	for _, e := range []Exporter{NewCSVExporter(nil), NewJSONExporter(nil), NewMarkdownExporter(nil), NewHTMLExporter(nil)} {
		_, err := e.Export(nil)
		assert.Error(t, err, e.FileExtension())
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		ext     string
		wantErr bool
	}{
		{"", ".csv", false},
		{"csv", ".csv", false},
		{"CSV", ".csv", false},
		{"json", ".json", false},
		{"md", ".md", false},
		{"markdown", ".md", false},
		{"html", ".html", false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := NewExporter(&Options{Format: tt.format})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, e.FileExtension())
		})
	}
}

// =============================================================================
// WRITE TESTS
// =============================================================================

func TestWriteTable_Overwrites(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "fmc_networkgroups.csv")
	require.NoError(t, os.WriteFile(dest, []byte("stale content that is longer than the table"), 0644))

	require.NoError(t, WriteTable(sampleTable(), NewCSVExporter(nil), dest, 0))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Object Name,Value,Link\n", string(data[:len("Object Name,Value,Link\n")]))
	assert.NotContains(t, string(data), "stale")
}

func TestWriteTable_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.csv")
	require.NoError(t, os.Mkdir(dest, 0755))

	err := WriteTable(sampleTable(), NewCSVExporter(nil), dest, 0)
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr), "expected WriteError, got %v", err)
	assert.Equal(t, dest, writeErr.Path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file may be left behind")
}

func TestDestinationFor(t *testing.T) {
	assert.Equal(t, filepath.Join("export", "fmc_networks.csv"),
		DestinationFor(filepath.Join("export", "fmc_networks.json"), NewCSVExporter(nil)))
	assert.Equal(t, "rules.md", DestinationFor("rules", NewMarkdownExporter(nil)))
	assert.Equal(t, "fmc_networks_flat.json", DestinationFor("fmc_networks.json", NewJSONExporter(nil)))
}
