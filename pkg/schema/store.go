package schema

import (
	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
)

// ToStore projects a document onto the store schema: only tables whose
// name is store-schema (first letter uppercase) survive. The store has no
// use for legacy-only tables, so everything else is dropped, not renamed.
func ToStore(doc configtree.Doc) configtree.Doc {
	out := configtree.Doc{}
	for name, table := range doc {
		if IsStoreTable(name) {
			out[name] = table
		}
	}
	return out
}

// FromStore is the identity: store-origin data already uses the canonical
// shape (flat tables, encoded composite keys).
func FromStore(doc configtree.Doc) configtree.Doc {
	return doc
}
