package configtree

import (
	"github.com/warrior-graph/sonic-cfggen/pkg/errors"
)

// SourceName identifies one producer of a source document.
type SourceName string

// Known source names, listed here and ordered by Precedence below.
const (
	SourceHardware   SourceName = "hardware"
	SourceTopology   SourceName = "minigraph"
	SourceDeviceDesc SourceName = "device-description"
	SourceFile       SourceName = "file"
	SourceInline     SourceName = "inline"
	SourceStore      SourceName = "configdb"
	SourcePlatform   SourceName = "platform"
)

// Precedence is the fixed order in which source documents fold into the
// aggregate. Later entries override earlier ones at every leaf. Callers
// never control this order; it is data, not call sequence.
var Precedence = []SourceName{
	SourceHardware,
	SourceTopology,
	SourceDeviceDesc,
	SourceFile,
	SourceInline,
	SourceStore,
	SourcePlatform,
}

// Fold merges the given documents into a fresh aggregate, applying sources
// in Precedence order. Documents sharing a source name keep their slice
// order (e.g. data files apply in the order given on the command line).
// A name not listed in Precedence is an error.
func Fold(docs map[SourceName][]Doc) (Doc, error) {
	for name := range docs {
		if !knownSource(name) {
			return nil, errors.WrapSource(string(name), errors.ErrUnknownSource)
		}
	}
	agg := Doc{}
	for _, name := range Precedence {
		for _, d := range docs[name] {
			Merge(agg, d)
		}
	}
	return agg, nil
}

func knownSource(name SourceName) bool {
	for _, n := range Precedence {
		if n == name {
			return true
		}
	}
	return false
}
