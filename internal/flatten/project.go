// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"strconv"

	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

// Rule table columns.
const (
	ColIndex              = "Index"
	ColName               = "Name"
	ColAction             = "Action"
	ColSourceZone         = "SourceZone"
	ColDestinationZone    = "DestinationZone"
	ColSourceNetwork      = "SourceNetwork"
	ColDestinationNetwork = "DestinationNetwork"
	ColSourcePort         = "SourcePort"
	ColDestinationPort    = "DestinationPort"
	ColComment            = "Comment"
	ColLink               = "Link"
)

// Object table columns (networks and groups).
const (
	ColObjectName        = "Object Name"
	ColValue             = "Value"
	ColType              = "Type"
	ColOverride          = "Override"
	ColObjectDescription = "Object Description"
)

// RuleColumns is the header of access rule tables.
var RuleColumns = []string{
	ColIndex, ColName, ColAction,
	ColSourceZone, ColDestinationZone,
	ColSourceNetwork, ColDestinationNetwork,
	ColSourcePort, ColDestinationPort,
	ColComment, ColLink,
}

// ObjectColumns is the header of network and group tables.
var ObjectColumns = []string{
	ColObjectName, ColValue, ColType, ColOverride, ColObjectDescription, ColLink,
}

// portMemberResolver renders port group members: object names, then
// "<PROTOCOL>:<port>" literals.
var portMemberResolver = Resolver{
	ObjectField:  KeyName,
	LiteralField: KeyPort,
	Label: func(e fmc.Entry, key string) string {
		if key == KeyPort {
			return PortLabel(e, key)
		}
		return Field(e, key)
	},
	Separator: GroupSeparator,
}

// ProjectRule builds the record of one access rule. index is the 1-based
// position of the item in the document, not the rule id.
func ProjectRule(item *fmc.PolicyObject, index int) Record {
	rec := Record{
		{ColIndex, strconv.Itoa(index)},
		{ColName, item.Name.String()},
		{ColAction, item.Action.String()},
		{ColSourceZone, ZoneResolver.Resolve(item.SourceZones)},
		{ColDestinationZone, ZoneResolver.Resolve(item.DestinationZones)},
		{ColSourceNetwork, NetworkResolver.Resolve(item.SourceNetworks)},
		{ColDestinationNetwork, NetworkResolver.Resolve(item.DestinationNetworks)},
		{ColSourcePort, PortResolver.Resolve(item.SourcePorts)},
		{ColDestinationPort, PortResolver.Resolve(item.DestinationPorts)},
		{ColComment, FormatComments(item.CommentHistoryList)},
		{ColLink, item.SelfLink()},
	}
	return rec.singleLine()
}

// ProjectGroup builds the record of one network group. Value lists the
// literal values followed by the member object names.
func ProjectGroup(item *fmc.PolicyObject) Record {
	value := JoinLists(GroupSeparator,
		NetworkResolver.Literals(item.Literals),
		NetworkResolver.Objects(item.Objects),
	)
	return objectRecord(item, value)
}

// ProjectPortGroup builds the record of one port object group. Value lists
// the "<PROTOCOL>:<port>" literals followed by the member object names.
func ProjectPortGroup(item *fmc.PolicyObject) Record {
	value := JoinLists(GroupSeparator,
		portMemberResolver.Literals(item.Literals),
		portMemberResolver.Objects(item.Objects),
	)
	return objectRecord(item, value)
}

// ProjectNetwork builds the record of one network object. Value is the
// object's own value field.
func ProjectNetwork(item *fmc.PolicyObject) Record {
	return objectRecord(item, item.Value.String())
}

func objectRecord(item *fmc.PolicyObject, value string) Record {
	rec := Record{
		{ColObjectName, item.Name.String()},
		{ColValue, value},
		{ColType, item.Type.String()},
		{ColOverride, item.Overridable.String()},
		{ColObjectDescription, item.Description.String()},
		{ColLink, item.SelfLink()},
	}
	return rec.singleLine()
}
