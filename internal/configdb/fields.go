package configdb

import (
	"fmt"
	"strings"
)

// The store can only hold flat string hashes, so list-valued fields use a
// marker convention: the hash field name carries a trailing "@" and the
// value joins the list elements with commas.
const listMarker = "@"

// decodeFields turns one store hash into record fields, expanding marked
// list values.
func decodeFields(hash map[string]string) map[string]any {
	fields := make(map[string]any, len(hash))
	for name, value := range hash {
		if strings.HasSuffix(name, listMarker) {
			trimmed := strings.TrimSuffix(name, listMarker)
			var list []any
			if value != "" {
				for _, e := range strings.Split(value, ",") {
					list = append(list, e)
				}
			}
			fields[trimmed] = list
			continue
		}
		fields[name] = value
	}
	return fields
}

// encodeFields flattens record fields into a store hash, marking list
// values. Records whose value is not a field mapping (a bare scalar table
// cell) cannot be stored and report false.
func encodeFields(v any) (map[string]any, bool) {
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	hash := make(map[string]any, len(fields))
	for name, value := range fields {
		switch tv := value.(type) {
		case []any:
			elems := make([]string, len(tv))
			for i, e := range tv {
				elems[i] = fmt.Sprint(e)
			}
			hash[name+listMarker] = strings.Join(elems, ",")
		case map[string]any:
			// Nested mappings have no hash representation; drop.
		default:
			hash[name] = fmt.Sprint(tv)
		}
	}
	return hash, true
}
