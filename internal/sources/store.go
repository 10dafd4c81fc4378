package sources

import (
	"context"

	"github.com/warrior-graph/sonic-cfggen/internal/configdb"
	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
	"github.com/warrior-graph/sonic-cfggen/pkg/schema"
)

// Store reads the full configuration held by the live store. The store
// offers no snapshot isolation; the document reflects the moment of the
// call.
type Store struct {
	Client *configdb.Client
}

// Name implements Source.
func (s *Store) Name() configtree.SourceName { return configtree.SourceStore }

// Document implements Source.
func (s *Store) Document(ctx context.Context) (configtree.Doc, error) {
	doc, err := s.Client.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Debug().Int("tables", len(doc)).Msg("Loaded live store configuration")
	return schema.FromStore(doc), nil
}
