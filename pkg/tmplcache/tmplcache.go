// Package tmplcache memoizes template work across short-lived process
// invocations by persisting opaque artifacts in a memcached instance on
// the loopback interface. The process that synthesizes configuration is
// started many times per boot, each run needing a subset of templates;
// persisting compiled results amortizes that cost without a long-lived
// daemon of our own.
//
// The cache is strictly best-effort. An unreachable or failing memcached
// turns every Load into a miss and every Store into a no-op: the system
// stays correct, just slower.
package tmplcache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
)

// DefaultAddr is the loopback address of the cache daemon.
const DefaultAddr = "127.0.0.1:11211"

// Client talks to one memcached instance. The zero value is not usable;
// construct with New.
type Client struct {
	mc *memcache.Client
}

// New returns a client for the cache daemon at addr. An empty addr means
// DefaultAddr. No connection is made until the first call.
func New(addr string) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Client{mc: memcache.New(addr)}
}

// KeyFor derives a deterministic cache key from a template's identity and
// its source text. Any change to the source changes the key, so a stale
// artifact can never load for edited template text.
func KeyFor(name string, src []byte) string {
	h := sha256.New()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write(src)
	return "tmpl:" + hex.EncodeToString(h.Sum(nil))
}

// Load fetches the artifact stored under key. The second return value is
// false on a miss, and a connectivity or protocol failure is also a miss.
func (c *Client) Load(key string) ([]byte, bool) {
	item, err := c.mc.Get(key)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			logging.Default().Debug().Err(err).Str("key", key).Msg("Template cache unavailable, treating as miss")
		}
		return nil, false
	}
	return item.Value, true
}

// Store writes the artifact under key, best-effort. Failures are swallowed;
// a render must never fail because the cache is down.
func (c *Client) Store(key string, artifact []byte) {
	err := c.mc.Set(&memcache.Item{Key: key, Value: artifact})
	if err != nil {
		logging.Default().Debug().Err(err).Str("key", key).Msg("Template cache store failed")
	}
}
