package schema

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Entry is one key/value pair of an Ordered mapping.
type Entry struct {
	Key   string
	Value any
}

// Ordered is a mapping whose serialization order is fixed. Go maps iterate
// in random order, so the legacy shape, whose whole point is deterministic
// human-friendly output, is materialized as a slice of entries. Ordered
// serializes as a mapping in both JSON and YAML.
type Ordered []Entry

// Get returns the value stored under key, or nil and false.
func (o Ordered) Get(key string) (any, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the entry keys in order.
func (o Ordered) Keys() []string {
	keys := make([]string, len(o))
	for i, e := range o {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON implements json.Marshaler, emitting entries in order.
func (o Ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler, emitting entries in
// order via goccy's MapSlice.
func (o Ordered) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, len(o))
	for i, e := range o {
		ms[i] = yaml.MapItem{Key: e.Key, Value: e.Value}
	}
	return ms, nil
}
