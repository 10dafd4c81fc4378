// Package configdb provides the client for the live configuration store,
// a redis-protocol service on the loopback interface. Each table record is
// one hash at key "TABLE<sep>recordkey"; composite record keys keep their
// delimited encoding inside the redis key.
//
// The client is an explicit object with a scoped lifetime: construct it
// once per invocation, pass it to whatever needs it, and Close it when the
// invocation ends. There is no package-level connection state.
package configdb

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
	"github.com/warrior-graph/sonic-cfggen/pkg/errors"
	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
	"github.com/warrior-graph/sonic-cfggen/pkg/schema"
)

// Config holds the connection parameters for the store.
type Config struct {
	Addr      string // host:port of the store
	DB        int    // redis database number holding the configuration
	Separator string // separates table name from record key in store keys
}

// DefaultConfig returns the conventional local deployment: store on the
// loopback interface, configuration in DB 4, same separator as the
// composite-key delimiter.
func DefaultConfig() Config {
	return Config{
		Addr:      "127.0.0.1:6379",
		DB:        4,
		Separator: schema.Delimiter,
	}
}

// Client is a handle on the configuration store.
type Client struct {
	rdb *redis.Client
	sep string
}

// New constructs a client from cfg. No connection is made until the first
// call; a connection failure then surfaces as ErrStoreUnavailable.
func New(cfg Config) *Client {
	if cfg.Separator == "" {
		cfg.Separator = schema.Delimiter
	}
	return &Client{
		rdb: redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB}),
		sep: cfg.Separator,
	}
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies the store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.WrapStore("connect", "", err)
	}
	return nil
}

// GetConfig reads the entire configuration into a document: every store
// key becomes table name and record key, every hash becomes the record's
// fields. The result is store-shaped by construction.
func (c *Client) GetConfig(ctx context.Context) (configtree.Doc, error) {
	doc := configtree.Doc{}
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, "*", 512).Result()
		if err != nil {
			return nil, errors.WrapStore("load", "", err)
		}
		for _, key := range keys {
			table, record, ok := c.splitKey(key)
			if !ok {
				continue
			}
			fields, err := c.rdb.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, errors.WrapStore("load", key, err)
			}
			tbl, _ := doc[table].(map[string]any)
			if tbl == nil {
				tbl = configtree.Doc{}
				doc[table] = tbl
			}
			tbl[record] = decodeFields(fields)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return doc, nil
}

// GetTable reads a single table.
func (c *Client) GetTable(ctx context.Context, name string) (configtree.Doc, error) {
	table := configtree.Doc{}
	var cursor uint64
	pattern := name + c.sep + "*"
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 512).Result()
		if err != nil {
			return nil, errors.WrapStore("load", name, err)
		}
		for _, key := range keys {
			_, record, ok := c.splitKey(key)
			if !ok {
				continue
			}
			fields, err := c.rdb.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, errors.WrapStore("load", key, err)
			}
			table[record] = decodeFields(fields)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if len(table) == 0 {
		return nil, errors.WrapStore("load", name, errors.ErrNotFound)
	}
	return table, nil
}

// SetConfig writes a store-shaped document into the store, one hash per
// record. Tables outside the store schema are skipped with a warning
// rather than written under an unreadable name.
func (c *Client) SetConfig(ctx context.Context, doc configtree.Doc) error {
	for table, body := range doc {
		if !schema.IsStoreTable(table) {
			logging.Ctx(ctx).Warn().Str("table", table).Msg("Skipping legacy-only table on store write")
			continue
		}
		records, ok := body.(map[string]any)
		if !ok {
			continue
		}
		for record, fields := range records {
			key := table + c.sep + record
			flat, ok := encodeFields(fields)
			if !ok || len(flat) == 0 {
				continue
			}
			if err := c.rdb.HSet(ctx, key, flat).Err(); err != nil {
				return errors.WrapStore("save", key, err)
			}
		}
	}
	return nil
}

// splitKey separates a store key into table name and record key. Only the
// first separator splits; the record key may itself contain the composite
// delimiter.
func (c *Client) splitKey(key string) (table, record string, ok bool) {
	parts := strings.SplitN(key, c.sep, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
