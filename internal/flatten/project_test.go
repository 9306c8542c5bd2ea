// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

const allowWebDocument = `{"items":[{"name":"allow-web","action":"ALLOW",` +
	`"sourceZones":{"objects":[{"name":"inside"}]},` +
	`"destinationZones":{"objects":[{"name":"outside"}]},` +
	`"sourceNetworks":{"objects":[{"name":"any"}]},` +
	`"destinationNetworks":{"literals":[{"value":"10.0.0.0/8"}]},` +
	`"sourcePorts":{},` +
	`"destinationPorts":{"literals":[{"protocol":"6","port":"443"}]},` +
	`"links":{"self":"https://fmc/api/rule/1"}}]}`

func decode(t *testing.T, doc string) *fmc.Document {
	t.Helper()
	d, err := fmc.DecodeDocument([]byte(doc))
	require.NoError(t, err)
	return d
}

func TestProjectRule_AllowWeb(t *testing.T) {
	doc := decode(t, allowWebDocument)
	rec := ProjectRule(&doc.Items[0], 1)

	assert.Equal(t, RuleColumns, rec.Columns())
	assert.Equal(t,
		"1,allow-web,ALLOW,inside,outside,any,10.0.0.0/8,,TCP:443,,https://fmc/api/rule/1",
		strings.Join(rec.Values(), ","))
}

func TestProjectRule_IndexIgnoresID(t *testing.T) {
	doc := decode(t, `{"items":[{"id":"42","name":"a","action":"BLOCK"},{"id":"7","name":"b","action":"ALLOW"}]}`)
	table := KindAccessRules.Flatten(doc)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "1", table.Record(0).Get(ColIndex))
	assert.Equal(t, "2", table.Record(1).Get(ColIndex))
}

func TestProjectRule_MissingEverything(t *testing.T) {
	rec := ProjectRule(&fmc.PolicyObject{}, 3)
	assert.Equal(t, "3", rec.Get(ColIndex))
	for _, col := range RuleColumns[1:] {
		assert.Empty(t, rec.Get(col), "column %s", col)
	}
}

func TestProjectRule_Comments(t *testing.T) {
	doc := decode(t, `{"items":[{"name":"r","action":"ALLOW","commentHistoryList":[`+
		`{"date":"2024-03-01T10:15:30.000Z","comment":"ticket 1\napproved"},`+
		`{"date":"2024-03-02T11:00:00.000Z","comment":"moved"}]}]}`)
	rec := ProjectRule(&doc.Items[0], 1)
	assert.Equal(t, "2024-03-01T10:15:30: ticket 1 approved | 2024-03-02T11:00:00: moved", rec.Get(ColComment))
}

func TestProjectGroup(t *testing.T) {
	doc := decode(t, `{"items":[{"name":"grp1","type":"NetworkGroup","overridable":false,"description":"",`+
		`"literals":[{"value":"1.1.1.1"}],"objects":[{"name":"net2"}],"links":{"self":"u"}}]}`)
	rec := ProjectGroup(&doc.Items[0])

	assert.Equal(t, ObjectColumns, rec.Columns())
	assert.Equal(t, "grp1", rec.Get(ColObjectName))
	assert.Equal(t, "1.1.1.1, net2", rec.Get(ColValue))
	assert.Equal(t, "NetworkGroup", rec.Get(ColType))
	assert.Equal(t, "False", rec.Get(ColOverride))
	assert.Equal(t, "", rec.Get(ColObjectDescription))
	assert.Equal(t, "u", rec.Get(ColLink))
}

func TestProjectGroup_OneSided(t *testing.T) {
	doc := decode(t, `{"items":[{"name":"g","objects":[{"name":"a"},{"name":"b"}]},{"name":"h","literals":[{"value":"10.0.0.1"}]}]}`)
	assert.Equal(t, "a, b", ProjectGroup(&doc.Items[0]).Get(ColValue))
	assert.Equal(t, "10.0.0.1", ProjectGroup(&doc.Items[1]).Get(ColValue))
}

func TestProjectPortGroup(t *testing.T) {
	doc := decode(t, `{"items":[{"name":"web-ports","type":"PortObjectGroup","overridable":true,`+
		`"objects":[{"name":"HTTPS","protocol":"TCP","port":"443"}],`+
		`"literals":[{"protocol":"6","port":"8443"},{"protocol":"17","port":"53"}]}]}`)
	rec := ProjectPortGroup(&doc.Items[0])

	assert.Equal(t, "TCP:8443, UDP:53, HTTPS", rec.Get(ColValue))
	assert.Equal(t, "True", rec.Get(ColOverride))
}

func TestProjectNetwork(t *testing.T) {
	doc := decode(t, `{"items":[{"name":"net1","type":"Network","value":"10.1.0.0/16","overridable":false,`+
		`"description":"core\nrange","links":{"self":"https://fmc/api/networks/1"}},{"name":"net2"}]}`)

	first := ProjectNetwork(&doc.Items[0])
	assert.Equal(t, "10.1.0.0/16", first.Get(ColValue))
	assert.Equal(t, "core range", first.Get(ColObjectDescription))

	second := ProjectNetwork(&doc.Items[1])
	assert.Equal(t, "", second.Get(ColObjectDescription))
	assert.Equal(t, "", second.Get(ColLink))
	assert.Equal(t, "", second.Get(ColOverride))
}

func TestProjectors_NoLineBreaks(t *testing.T) {
	doc := decode(t, `{"items":[{"name":"a\nb","action":"AL\r\nLOW","description":"x\ry",`+
		`"commentHistoryList":[{"date":"d","comment":"c\nc"}]}]}`)
	item := &doc.Items[0]

	for _, rec := range []Record{ProjectRule(item, 1), ProjectGroup(item), ProjectNetwork(item), ProjectPortGroup(item)} {
		for _, cell := range rec {
			assert.NotContains(t, cell.Value, "\n", cell.Column)
			assert.NotContains(t, cell.Value, "\r", cell.Column)
		}
	}
}
