// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"accessrules", KindAccessRules, false},
		{"AccessRules", KindAccessRules, false},
		{"rules", KindAccessRules, false},
		{"network-groups", KindNetworkGroups, false},
		{"networks", KindNetworks, false},
		{"port_object_groups", KindPortObjectGroups, false},
		{"portgroups", KindPortObjectGroups, false},
		{"hosts", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKind_Metadata(t *testing.T) {
	for _, k := range Kinds() {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
		cols := k.Columns()
		if k.Indexed() {
			if cols[0] != ColIndex || len(cols) != 11 {
				t.Errorf("%s: unexpected rule columns %v", k, cols)
			}
		} else if len(cols) != 6 {
			t.Errorf("%s: expected 6 columns, got %d", k, len(cols))
		}
	}

	if got := KindNetworkGroups.SourceFile(); got != "fmc_networkgroups.json" {
		t.Errorf("SourceFile() = %q", got)
	}
	if got := KindPortObjectGroups.Label(); got != "PortObjectGroups" {
		t.Errorf("Label() = %q", got)
	}
	if Kind("hosts").Valid() {
		t.Error("unknown kind reported valid")
	}
}

func TestKind_ColumnsIsACopy(t *testing.T) {
	cols := KindAccessRules.Columns()
	cols[0] = "changed"
	if RuleColumns[0] != ColIndex {
		t.Fatal("Columns() exposed the shared header slice")
	}
}
