// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

// Entry field keys understood by Field.
const (
	KeyID       = "id"
	KeyName     = "name"
	KeyType     = "type"
	KeyValue    = "value"
	KeyPort     = "port"
	KeyProtocol = "protocol"
)

// protocolNames translates IANA protocol numbers. Numbers not listed here
// pass through unchanged.
var protocolNames = map[string]string{
	"6":  "TCP",
	"17": "UDP",
}

// Field returns the named field of an entry as text.
// Unknown keys and absent fields yield "".
func Field(e fmc.Entry, key string) string {
	switch key {
	case KeyID:
		return e.ID.String()
	case KeyName:
		return e.Name.String()
	case KeyType:
		return e.Type.String()
	case KeyValue:
		return e.Value.String()
	case KeyPort:
		return e.Port.String()
	case KeyProtocol:
		return e.Protocol.String()
	default:
		return ""
	}
}

// ProtocolName returns the display name of a protocol field.
// Purely numeric values found in the protocol table are translated;
// everything else is returned verbatim.
func ProtocolName(protocol string) string {
	if !isDigits(protocol) {
		return protocol
	}
	if name, ok := protocolNames[protocol]; ok {
		return name
	}
	return protocol
}

// PortLabel formats an entry as "<PROTOCOL>:<value>", where value is the
// field named by key (KeyName for port objects, KeyPort for literals).
func PortLabel(e fmc.Entry, key string) string {
	return ProtocolName(e.Protocol.String()) + ":" + Field(e, key)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
