// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"strings"

	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

// Separators used when joining resolved values.
const (
	RuleSeparator  = ","
	GroupSeparator = ", "
)

// LabelFunc renders one entry of a reference container.
type LabelFunc func(e fmc.Entry, key string) string

// Resolver merges the objects and literals of a reference container into
// one string: objects first, then literals, each in source order.
//
// An empty LiteralField ignores literals entirely.
type Resolver struct {
	ObjectField  string
	LiteralField string
	// Label defaults to Field.
	Label     LabelFunc
	Separator string
}

var (
	// ZoneResolver lists security zone names. Zones have no literals.
	ZoneResolver = Resolver{ObjectField: KeyName, Separator: RuleSeparator}

	// NetworkResolver lists network object names then literal values.
	NetworkResolver = Resolver{ObjectField: KeyName, LiteralField: KeyValue, Separator: RuleSeparator}

	// PortResolver lists "<PROTOCOL>:<name>" for objects then
	// "<PROTOCOL>:<port>" for literals.
	PortResolver = Resolver{ObjectField: KeyName, LiteralField: KeyPort, Label: PortLabel, Separator: RuleSeparator}
)

// Resolve renders a container. A nil container yields "".
func (r Resolver) Resolve(c *fmc.ReferenceContainer) string {
	if c == nil {
		return ""
	}
	return JoinLists(r.Separator, r.Objects(c.Objects), r.Literals(c.Literals))
}

// Objects renders the object entries of a container.
func (r Resolver) Objects(entries []fmc.Entry) []string {
	if r.ObjectField == "" {
		return nil
	}
	return r.render(entries, r.ObjectField)
}

// Literals renders the literal entries of a container.
func (r Resolver) Literals(entries []fmc.Entry) []string {
	if r.LiteralField == "" {
		return nil
	}
	return r.render(entries, r.LiteralField)
}

func (r Resolver) render(entries []fmc.Entry, key string) []string {
	label := r.Label
	if label == nil {
		label = Field
	}
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, label(e, key))
	}
	return values
}

// JoinLists concatenates the lists in order and joins every element with
// sep. Empty lists contribute nothing, so no leading, trailing or doubled
// separator appears because of them; empty elements are kept.
func JoinLists(sep string, lists ...[]string) string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	all := make([]string, 0, n)
	for _, l := range lists {
		all = append(all, l...)
	}
	return strings.Join(all, sep)
}
