package configtree

// Merge folds src into dst and returns dst. Mapping values merge
// recursively, creating missing mappings in dst as needed; every other
// value in src (scalar or sequence) replaces whatever dst holds at that
// key. The last document applied therefore wins at every leaf, and
// sequences are never merged element-wise.
//
// A scalar in dst and a mapping in src (or the reverse) is not an error:
// the replacement rule applies.
func Merge(dst, src Doc) Doc {
	if dst == nil {
		dst = Doc{}
	}
	for key, val := range src {
		srcMap, ok := val.(map[string]any)
		if !ok {
			dst[key] = val
			continue
		}
		dstMap, ok := dst[key].(map[string]any)
		if !ok {
			dstMap = Doc{}
			dst[key] = dstMap
		}
		Merge(dstMap, srcMap)
	}
	return dst
}
