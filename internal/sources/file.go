package sources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
	"github.com/warrior-graph/sonic-cfggen/pkg/errors"
	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
)

// File loads a structured data file, YAML or JSON by extension (anything
// not named *.json parses as YAML, which subsumes JSON for the common
// case of hand-written files).
type File struct {
	Path string
}

// Name implements Source.
func (f *File) Name() configtree.SourceName { return configtree.SourceFile }

// Document implements Source.
func (f *File) Document(ctx context.Context) (configtree.Doc, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.WrapIO("read", f.Path, err)
	}

	doc := configtree.Doc{}
	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, errors.WrapParse("json", f.Path, err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, errors.WrapParse("yaml", f.Path, err)
		}
	}

	logging.Ctx(ctx).Debug().Str("path", f.Path).Int("tables", len(doc)).Msg("Loaded data file")
	return doc, nil
}

// Inline wraps a JSON document supplied directly on the command line.
type Inline struct {
	JSON string
}

// Name implements Source.
func (i *Inline) Name() configtree.SourceName { return configtree.SourceInline }

// Document implements Source.
func (i *Inline) Document(ctx context.Context) (configtree.Doc, error) {
	doc := configtree.Doc{}
	if err := json.Unmarshal([]byte(i.JSON), &doc); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return doc, nil
}
