// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

const allowWebJSON = `{"items":[{"name":"allow-web","action":"ALLOW","sourceZones":{"objects":[{"name":"inside"}]},"destinationZones":{"objects":[{"name":"outside"}]},"sourceNetworks":{"objects":[{"name":"any"}]},"destinationNetworks":{"literals":[{"value":"10.0.0.0/8"}]},"sourcePorts":{},"destinationPorts":{"literals":[{"protocol":"6","port":"443"}]},"links":{"self":"https://fmc/api/rule/1"}}]}`

const groupJSON = `{"items":[{"name":"grp1","type":"NetworkGroup","overridable":false,"description":"","literals":[{"value":"1.1.1.1"}],"objects":[{"name":"net2"}],"links":{"self":"u"}}]}`

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConvert_AccessRules(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_accessrules.json", allowWebJSON)

	res, err := Convert(src, "", flatten.KindAccessRules, nil)
	require.NoError(t, err)

	dest := filepath.Join(dir, "fmc_accessrules.csv")
	assert.Equal(t, dest, res.Destination)
	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, "text/csv", res.MediaType)
	assert.Equal(t, "Data has been exported to "+dest, res.Message())

	want := "Index,Name,Action,SourceZone,DestinationZone,SourceNetwork,DestinationNetwork,SourcePort,DestinationPort,Comment,Link\n" +
		"1,allow-web,ALLOW,inside,outside,any,10.0.0.0/8,,TCP:443,,https://fmc/api/rule/1\n"
	assert.Equal(t, want, readFile(t, dest))
}

func TestConvert_NetworkGroups(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networkgroups.json", groupJSON)
	dest := filepath.Join(dir, "groups.csv")

	_, err := Convert(src, dest, flatten.KindNetworkGroups, nil)
	require.NoError(t, err)

	want := "Object Name,Value,Type,Override,Object Description,Link\n" +
		"grp1,\"1.1.1.1, net2\",NetworkGroup,False,,u\n"
	assert.Equal(t, want, readFile(t, dest))
}

func TestConvert_NetworkWithoutDescription(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networks.json", `{"items":[{"name":"net1","type":"Network","value":"10.1.1.0/24","overridable":true}]}`)

	res, err := Convert(src, "", flatten.KindNetworks, nil)
	require.NoError(t, err)
	assert.Equal(t, "Object Name,Value,Type,Override,Object Description,Link\nnet1,10.1.1.0/24,Network,True,,\n", readFile(t, res.Destination))
}

func TestConvert_OverrideRendering(t *testing.T) {
	tests := []struct {
		name        string
		overridable string
		want        string
	}{
		{"true", "true", "n1,1.1.1.1,Host,True,,\n"},
		{"false", "false", "n1,1.1.1.1,Host,False,,\n"},
		{"absent", "null", "n1,1.1.1.1,Host,,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := writeSource(t, dir, "fmc_networks.json",
				`{"items":[{"name":"n1","type":"Host","value":"1.1.1.1","overridable":`+tt.overridable+`}]}`)

			res, err := Convert(src, "", flatten.KindNetworks, nil)
			require.NoError(t, err)
			assert.Equal(t, "Object Name,Value,Type,Override,Object Description,Link\n"+tt.want, readFile(t, res.Destination))
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_accessrules.json", `{"items":[
		{"name":"r1","action":"ALLOW","commentHistoryList":[{"date":"2024-01-01T00:00:00.000Z","comment":"a\nb"}]},
		{"name":"r2","action":"BLOCK","sourceNetworks":{"objects":[{"name":"x"}],"literals":[{"value":"1.2.3.4"}]}}
	]}`)

	first := filepath.Join(dir, "one.csv")
	second := filepath.Join(dir, "two.csv")
	_, err := Convert(src, first, flatten.KindAccessRules, nil)
	require.NoError(t, err)
	_, err = Convert(src, second, flatten.KindAccessRules, nil)
	require.NoError(t, err)

	assert.Equal(t, readFile(t, first), readFile(t, second))
}

func TestConvert_MissingSource(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "fmc_accessrules.csv")

	_, err := Convert(filepath.Join(dir, "fmc_accessrules.json"), dest, flatten.KindAccessRules, nil)

	var readErr *fmc.DocumentReadError
	require.True(t, errors.As(err, &readErr), "expected DocumentReadError, got %v", err)
	assert.True(t, readErr.Missing())
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no output may be written on failure")
}

func TestConvert_MalformedSourceKeepsOldOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networks.json", `{"items": [`)
	dest := writeSource(t, dir, "fmc_networks.csv", "previous run\n")

	_, err := Convert(src, dest, flatten.KindNetworks, nil)
	var readErr *fmc.DocumentReadError
	require.ErrorAs(t, err, &readErr)
	assert.False(t, readErr.Missing())
	assert.Equal(t, "previous run\n", readFile(t, dest))
}

func TestConvert_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networks.json", `{"items":[]}`)
	dest := filepath.Join(dir, "out.csv")
	require.NoError(t, os.Mkdir(dest, 0755))

	_, err := Convert(src, dest, flatten.KindNetworks, nil)
	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestConvert_UnknownKindAndFormat(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "x.json", `{"items":[]}`)

	_, err := Convert(src, "", flatten.Kind("hosts"), nil)
	assert.Error(t, err)

	_, err = Convert(src, "", flatten.KindNetworks, &Options{Format: "xlsx"})
	assert.Error(t, err)
}

func TestConvert_TruncatedExportWarns(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networks.json", `{"items":[{"name":"a"}],"paging":{"offset":0,"limit":1,"count":3,"pages":3}}`)

	res, err := Convert(src, "", flatten.KindNetworks, opts)
	require.NoError(t, err)
	assert.True(t, res.Truncated)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(3), warnings[0].ContextMap()["paging_count"])
	assert.NotEmpty(t, warnings[0].ContextMap()["run_id"])
}

func TestConvert_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networkgroups.json", groupJSON)

	res, err := Convert(src, "", flatten.KindNetworkGroups, &Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fmc_networkgroups_flat.json"), res.Destination)
	assert.Equal(t, "application/json", res.MediaType)
	assert.JSONEq(t, `[{"Object Name":"grp1","Value":"1.1.1.1, net2","Type":"NetworkGroup","Override":"False","Object Description":"","Link":"u"}]`,
		readFile(t, res.Destination))
	assert.JSONEq(t, groupJSON, readFile(t, filepath.Join(dir, "fmc_networkgroups.json")))
}

func TestConvert_RefusesToOverwriteSource(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "fmc_networks.json", `{"items":[]}`)

	_, err := Convert(src, src, flatten.KindNetworks, nil)
	assert.Error(t, err)
	assert.Equal(t, `{"items":[]}`, readFile(t, src))
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "fmc_accessrules.json", allowWebJSON)
	writeSource(t, dir, "fmc_networkgroups.json", groupJSON)

	batch, err := ConvertAll(dir, nil)
	require.NoError(t, err)

	require.Len(t, batch.Converted, 2)
	assert.Equal(t, flatten.KindAccessRules, batch.Converted[0].Kind)
	assert.Equal(t, flatten.KindNetworkGroups, batch.Converted[1].Kind)
	assert.Equal(t, []flatten.Kind{flatten.KindNetworks, flatten.KindPortObjectGroups}, batch.Skipped)

	assert.FileExists(t, filepath.Join(dir, "fmc_accessrules.csv"))
	assert.FileExists(t, filepath.Join(dir, "fmc_networkgroups.csv"))
}

func TestConvertAll_StopsOnMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "fmc_accessrules.json", allowWebJSON)
	writeSource(t, dir, "fmc_networkgroups.json", `not json`)

	batch, err := ConvertAll(dir, nil)
	require.Error(t, err)
	assert.Len(t, batch.Converted, 1)

	var readErr *fmc.DocumentReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestConvertAll_MissingDirectory(t *testing.T) {
	_, err := ConvertAll(filepath.Join(t.TempDir(), "nope"), nil)
	var readErr *fmc.DocumentReadError
	require.ErrorAs(t, err, &readErr)
	assert.True(t, readErr.Missing())
}

func TestConvertAll_Targets(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "rules-2024.json", allowWebJSON)
	dest := filepath.Join(dir, "out", "rules.csv")

	opts := DefaultOptions()
	opts.Targets = map[flatten.Kind]Target{
		flatten.KindAccessRules: {Source: src, Destination: dest},
	}

	batch, err := ConvertAll(dir, opts)
	require.NoError(t, err)
	require.Len(t, batch.Converted, 1)
	assert.Equal(t, dest, batch.Converted[0].Destination)
	assert.Len(t, batch.Skipped, 3)
	assert.Contains(t, readFile(t, dest), "allow-web")
}
