package schema

import (
	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
	"github.com/warrior-graph/sonic-cfggen/pkg/configtree/natsort"
)

// ToLegacy converts a document to the legacy rendering shape: every mapping
// becomes an Ordered with its keys in natural-sort order, recursively, and
// sequences keep their order with converted elements. Record keys are
// already carried in encoded form, so the pass changes ordering, not keys.
func ToLegacy(doc configtree.Doc) Ordered {
	return toOrdered(doc)
}

// FromLegacy is the inverse of ToLegacy: it rebuilds the unordered
// canonical document from a legacy-shaped one. For any document whose keys
// contain no delimiter character, FromLegacy(ToLegacy(x)) equals x.
func FromLegacy(o Ordered) configtree.Doc {
	doc := make(configtree.Doc, len(o))
	for _, e := range o {
		doc[e.Key] = fromOrderedValue(e.Value)
	}
	return doc
}

// ToLegacyLookup is the lookup-key mode of the legacy conversion: each
// table is restricted to the single best-matching record for lookup, and
// that record's value replaces the table body. An exact match on the
// encoded record key wins; failing that, the first record (in natural
// order) whose composite key has lookup among its parts. Tables with no
// matching record are dropped; non-mapping table values pass through.
func ToLegacyLookup(doc configtree.Doc, lookup string) Ordered {
	var out Ordered
	names := sortedKeys(doc)
	for _, name := range names {
		table, ok := doc[name].(map[string]any)
		if !ok {
			out = append(out, Entry{Key: name, Value: doc[name]})
			continue
		}
		rec, ok := lookupRecord(table, lookup)
		if !ok {
			continue
		}
		out = append(out, Entry{Key: name, Value: toOrderedValue(rec)})
	}
	return out
}

func lookupRecord(table map[string]any, lookup string) (any, bool) {
	if rec, ok := table[lookup]; ok {
		return rec, true
	}
	for _, k := range sortedKeys(table) {
		key := DecodeKey(k)
		if key.Composite() && key.Has(lookup) {
			return table[k], true
		}
	}
	return nil, false
}

func toOrdered(m map[string]any) Ordered {
	out := make(Ordered, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, Entry{Key: k, Value: toOrderedValue(m[k])})
	}
	return out
}

func toOrderedValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return toOrdered(tv)
	case []any:
		seq := make([]any, len(tv))
		for i, e := range tv {
			seq[i] = toOrderedValue(e)
		}
		return seq
	default:
		return v
	}
}

func fromOrderedValue(v any) any {
	switch tv := v.(type) {
	case Ordered:
		return FromLegacy(tv)
	case []any:
		seq := make([]any, len(tv))
		for i, e := range tv {
			seq[i] = fromOrderedValue(e)
		}
		return seq
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	natsort.Strings(keys)
	return keys
}
