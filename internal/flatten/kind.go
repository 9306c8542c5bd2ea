// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"fmt"
	"strings"

	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

// Kind identifies an exportable object kind.
type Kind string

const (
	KindAccessRules      Kind = "accessrules"
	KindNetworkGroups    Kind = "networkgroups"
	KindNetworks         Kind = "networks"
	KindPortObjectGroups Kind = "portobjectgroups"
)

// kindAliases maps accepted spellings to kinds.
var kindAliases = map[string]Kind{
	"accessrules":      KindAccessRules,
	"accessrule":       KindAccessRules,
	"rules":            KindAccessRules,
	"networkgroups":    KindNetworkGroups,
	"networkgroup":     KindNetworkGroups,
	"groups":           KindNetworkGroups,
	"networks":         KindNetworks,
	"network":          KindNetworks,
	"portobjectgroups": KindPortObjectGroups,
	"portobjectgroup":  KindPortObjectGroups,
	"portgroups":       KindPortObjectGroups,
}

// Kinds returns every kind in export order.
func Kinds() []Kind {
	return []Kind{KindAccessRules, KindNetworkGroups, KindNetworks, KindPortObjectGroups}
}

// ParseKind resolves a kind name or alias, case-insensitively.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown object kind %q (valid: accessrules, networkgroups, networks, portobjectgroups)", name)
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Label returns the FMC collection name, e.g. "AccessRules".
func (k Kind) Label() string {
	switch k {
	case KindAccessRules:
		return "AccessRules"
	case KindNetworkGroups:
		return "NetworkGroups"
	case KindNetworks:
		return "Networks"
	case KindPortObjectGroups:
		return "PortObjectGroups"
	default:
		return string(k)
	}
}

// Indexed reports whether the kind's table starts with an Index column.
func (k Kind) Indexed() bool {
	return k == KindAccessRules
}

// Columns returns the table header of the kind.
func (k Kind) Columns() []string {
	if k.Indexed() {
		return append([]string(nil), RuleColumns...)
	}
	return append([]string(nil), ObjectColumns...)
}

// BaseName returns the file name stem used by the export step,
// e.g. "fmc_accessrules".
func (k Kind) BaseName() string {
	return "fmc_" + string(k)
}

// SourceFile returns the default export file name, e.g. "fmc_accessrules.json".
func (k Kind) SourceFile() string {
	return k.BaseName() + ".json"
}

// Project builds the record of item. index is the 1-based position of the
// item in its document; only indexed kinds use it.
func (k Kind) Project(item *fmc.PolicyObject, index int) Record {
	switch k {
	case KindAccessRules:
		return ProjectRule(item, index)
	case KindNetworkGroups:
		return ProjectGroup(item)
	case KindPortObjectGroups:
		return ProjectPortGroup(item)
	default:
		return ProjectNetwork(item)
	}
}

// Flatten projects every item of doc in order into a new table.
func (k Kind) Flatten(doc *fmc.Document) *Table {
	table := NewTable(k.Columns())
	for i := range doc.Items {
		table.Append(k.Project(&doc.Items[i], i+1))
	}
	return table
}
