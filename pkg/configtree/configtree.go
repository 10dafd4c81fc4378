// Package configtree holds the document model for synthesized device
// configuration: a nested mapping of tables to records to fields, together
// with the deep-merge fold that combines documents from many sources under
// one explicit precedence order.
package configtree

// Doc is one mapping tree: table name, then record key, then field, then
// value. Values are scalars, nested mappings, or sequences. Composite record
// keys appear in their delimited string encoding (see pkg/schema).
type Doc = map[string]any

// Copy returns a deep copy of d. Nested mappings and sequences are copied;
// scalar leaves are shared, since they are never mutated in place.
func Copy(d Doc) Doc {
	if d == nil {
		return nil
	}
	out := make(Doc, len(d))
	for k, v := range d {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return Copy(tv)
	case []any:
		seq := make([]any, len(tv))
		for i, e := range tv {
			seq[i] = copyValue(e)
		}
		return seq
	default:
		return v
	}
}
