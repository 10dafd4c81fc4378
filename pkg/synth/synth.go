// Package synth drives configuration synthesis: collect every source
// document, fold them in precedence order, and emit the result as a
// serialized document, a rendered template, or a write to the live store.
package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/warrior-graph/sonic-cfggen/internal/configdb"
	"github.com/warrior-graph/sonic-cfggen/internal/sources"
	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
	"github.com/warrior-graph/sonic-cfggen/pkg/render"
	"github.com/warrior-graph/sonic-cfggen/pkg/schema"
)

// Pipeline folds a set of sources into one aggregate document and emits
// it. The aggregate is built once, lazily, and owned by the pipeline; it
// is never shared across goroutines.
type Pipeline struct {
	srcs []sources.Source
	agg  configtree.Doc
}

// New creates a pipeline over the given sources. The order of sources
// matters only among sources sharing a name (e.g. multiple data files);
// across names, the declared precedence governs.
func New(srcs ...sources.Source) *Pipeline {
	return &Pipeline{srcs: srcs}
}

// Aggregate returns the folded document, loading sources on first use.
func (p *Pipeline) Aggregate(ctx context.Context) (configtree.Doc, error) {
	if p.agg != nil {
		return p.agg, nil
	}
	docs, err := sources.Collect(ctx, p.srcs)
	if err != nil {
		return nil, err
	}
	agg, err := configtree.Fold(docs)
	if err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Debug().Int("sources", len(p.srcs)).Int("tables", len(agg)).Msg("Folded source documents")
	p.agg = agg
	return agg, nil
}

// legacyDoc converts the aggregate to its output shape, restricted to a
// single record per table when lookup is non-empty.
func (p *Pipeline) legacyDoc(ctx context.Context, lookup string) (schema.Ordered, error) {
	agg, err := p.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	if lookup != "" {
		return schema.ToLegacyLookup(agg, lookup), nil
	}
	return schema.ToLegacy(agg), nil
}

// WriteYAML serializes the aggregate in legacy shape as YAML.
func (p *Pipeline) WriteYAML(ctx context.Context, w io.Writer, lookup string) error {
	doc, err := p.legacyDoc(ctx, lookup)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// WriteJSON serializes the aggregate in legacy shape as indented JSON.
func (p *Pipeline) WriteJSON(ctx context.Context, w io.Writer, lookup string) error {
	doc, err := p.legacyDoc(ctx, lookup)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize json: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// Render renders the aggregate through the template at path. Templates
// receive the plain mapping form (map access by table name) and impose
// their own ordering with the natural_sort filter.
func (p *Pipeline) Render(ctx context.Context, w io.Writer, r *render.Renderer, path string) error {
	agg, err := p.Aggregate(ctx)
	if err != nil {
		return err
	}
	return r.Render(w, path, agg)
}

// WriteStore projects the aggregate onto the store schema and writes it
// to the live store.
func (p *Pipeline) WriteStore(ctx context.Context, client *configdb.Client) error {
	agg, err := p.Aggregate(ctx)
	if err != nil {
		return err
	}
	return client.SetConfig(ctx, schema.ToStore(agg))
}
