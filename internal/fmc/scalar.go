// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fmc

import (
	"bytes"
	"encoding/json"
)

// Scalar holds a JSON scalar as text.
//
// Strings keep their decoded value, numbers keep their literal JSON text,
// booleans become "True" or "False". null, objects and arrays leave the
// Scalar unset, which renders as the empty string.
type Scalar struct {
	text string
	set  bool
}

// NewScalar returns a set Scalar holding s.
func NewScalar(s string) Scalar {
	return Scalar{text: s, set: true}
}

// String returns the text of the scalar, or "" when unset.
func (s Scalar) String() string {
	return s.text
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = Scalar{}
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = NewScalar(str)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		if b {
			*s = NewScalar("True")
		} else {
			*s = NewScalar("False")
		}
	case 'n', '{', '[':
		// null and composite values carry no scalar text
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = NewScalar(n.String())
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Unset scalars encode as null.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	return json.Marshal(s.text)
}
