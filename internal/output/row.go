// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v2"
)

// Row is one output record. Keys keep their insertion order in json and yaml
// output so columns read the same way in every format.
type Row struct {
	keys   []string
	values map[string]interface{}
}

// NewRow returns an empty Row.
func NewRow() Row {
	return Row{values: map[string]interface{}{}}
}

// Set adds or replaces a value. A new key goes to the end.
func (r *Row) Set(key string, value interface{}) {
	if r.values == nil {
		r.values = map[string]interface{}{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key, or nil.
func (r Row) Get(key string) interface{} {
	return r.values[key]
}

// Keys returns the keys in insertion order.
func (r Row) Keys() []string {
	return append([]string(nil), r.keys...)
}

// MarshalJSON writes the row as an object with keys in insertion order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler with an ordered mapping.
func (r Row) MarshalYAML() (interface{}, error) {
	ms := make(yaml.MapSlice, 0, len(r.keys))
	for _, key := range r.keys {
		ms = append(ms, yaml.MapItem{Key: key, Value: r.values[key]})
	}
	return ms, nil
}
