// Package models defines the records managed by the admin client: openers
// with their continue options, profiles with hobbies and notes, and
// multilingual stories.
//
// Identifiers are assigned by the server and treated as opaque strings. The
// API currently emits integers, so ID decodes from either JSON form.
package models

import (
	"bytes"
	"encoding/json"
)

type ID string

func (id ID) String() string { return string(id) }

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
