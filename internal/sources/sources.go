// Package sources loads source documents from their collaborators: data
// files, inline command-line documents, and the live configuration store.
// Each implementation produces one immutable mapping tree; folding them is
// the aggregator's job, not ours.
package sources

import (
	"context"

	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
)

// Source produces one source document.
type Source interface {
	// Name places the document in the precedence order.
	Name() configtree.SourceName

	// Document loads and returns the source's mapping tree. A source
	// that cannot be read is fatal to the invocation.
	Document(ctx context.Context) (configtree.Doc, error)
}

// Collect loads every source and groups the documents by source name,
// keeping the given order within each name. The result feeds
// configtree.Fold.
func Collect(ctx context.Context, srcs []Source) (map[configtree.SourceName][]configtree.Doc, error) {
	docs := make(map[configtree.SourceName][]configtree.Doc)
	for _, src := range srcs {
		doc, err := src.Document(ctx)
		if err != nil {
			return nil, err
		}
		docs[src.Name()] = append(docs[src.Name()], doc)
	}
	return docs, nil
}
