// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fmc

// Entry is one element of an objects or literals list.
//
// Referenced objects carry at least a name; network literals carry a value;
// port literals and port objects carry a protocol and a port.
type Entry struct {
	ID       Scalar `json:"id"`
	Name     Scalar `json:"name"`
	Type     Scalar `json:"type"`
	Value    Scalar `json:"value"`
	Port     Scalar `json:"port"`
	Protocol Scalar `json:"protocol"`
}

// ReferenceContainer bundles named object references and inline literals.
// Zone containers only ever carry objects.
type ReferenceContainer struct {
	Objects  []Entry `json:"objects"`
	Literals []Entry `json:"literals"`
}

// CommentEntry is one element of a rule's comment history.
type CommentEntry struct {
	Date    Scalar `json:"date"`
	Comment Scalar `json:"comment"`
	User    *struct {
		Name Scalar `json:"name"`
	} `json:"user"`
}

// Links holds the hypermedia links of an object or a document page.
type Links struct {
	Self Scalar `json:"self"`
}

// PolicyObject is one exported configuration entity. Which fields are
// populated depends on the object kind.
type PolicyObject struct {
	ID          Scalar `json:"id"`
	Name        Scalar `json:"name"`
	Type        Scalar `json:"type"`
	Action      Scalar `json:"action"`
	Overridable Scalar `json:"overridable"`
	Description Scalar `json:"description"`
	Value       Scalar `json:"value"`

	// Access rule columns
	SourceZones         *ReferenceContainer `json:"sourceZones"`
	DestinationZones    *ReferenceContainer `json:"destinationZones"`
	SourceNetworks      *ReferenceContainer `json:"sourceNetworks"`
	DestinationNetworks *ReferenceContainer `json:"destinationNetworks"`
	SourcePorts         *ReferenceContainer `json:"sourcePorts"`
	DestinationPorts    *ReferenceContainer `json:"destinationPorts"`

	// Group members
	Objects  []Entry `json:"objects"`
	Literals []Entry `json:"literals"`

	CommentHistoryList []CommentEntry `json:"commentHistoryList"`
	Links              *Links         `json:"links"`
}

// SelfLink returns links.self, or "" when the object has no links.
func (o *PolicyObject) SelfLink() string {
	if o.Links == nil {
		return ""
	}
	return o.Links.Self.String()
}
