// Package schema converts the aggregate document between the two table
// conventions in play: the "legacy" shape older rendering templates expect
// (records in natural-sorted order, composite keys flattened to delimited
// strings) and the shape of the live configuration store (store-schema
// tables only). It also owns the codec for composite record keys.
package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiter separates the parts of a composite record key in its
// single-string encoding. A key part containing the delimiter cannot be
// encoded unambiguously; there is no escaping.
const Delimiter = "|"

// Key is a record key: one part for plain keys, two or more parts for
// composite keys such as an interface paired with an address assigned
// to it.
type Key []string

// NewKey builds a Key from its parts.
func NewKey(parts ...string) Key { return Key(parts) }

// Composite reports whether k addresses a record by more than one field.
func (k Key) Composite() bool { return len(k) > 1 }

// Encode renders k as a single delimited string.
// Encoding then decoding yields the original parts as long as no part
// contains the delimiter.
func (k Key) Encode() string { return strings.Join(k, Delimiter) }

// Has reports whether part is one of k's parts, or equals a plain key.
func (k Key) Has(part string) bool {
	for _, p := range k {
		if p == part {
			return true
		}
	}
	return false
}

// DecodeKey splits an encoded key back into its parts. A string without
// the delimiter decodes to a plain one-part key. Detection is structural:
// there is no type tag on encoded keys.
func DecodeKey(s string) Key {
	return Key(strings.Split(s, Delimiter))
}

// IsStoreTable reports whether a table name belongs to the store schema.
// The convention is fixed: store-schema table names begin with an
// uppercase letter ("PORT", "VLAN_INTERFACE"); everything else is
// legacy-only ("minigraph_vlans").
func IsStoreTable(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
