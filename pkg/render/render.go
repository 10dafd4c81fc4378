package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/warrior-graph/sonic-cfggen/pkg/errors"
	"github.com/warrior-graph/sonic-cfggen/pkg/logging"
	"github.com/warrior-graph/sonic-cfggen/pkg/tmplcache"
)

// Renderer loads a template file and renders a document through it.
// With a cache attached, the rendered artifact is memoized under a key
// derived from the template identity, its source text and the document,
// so repeated invocations with identical inputs skip parse and execute
// entirely.
type Renderer struct {
	cache *tmplcache.Client
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCache attaches a compilation cache. A nil client disables caching,
// as does constructing without this option.
func WithCache(c *tmplcache.Client) Option {
	return func(r *Renderer) { r.cache = c }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render reads the template at path and executes it with data, writing the
// result to w. A missing or unreadable template is fatal to the caller; an
// unreachable cache only costs the memoization.
func (r *Renderer) Render(w io.Writer, path string, data any) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}

	key := r.cacheKey(path, src, data)
	if key != "" {
		if out, ok := r.cache.Load(key); ok {
			logging.Default().Debug().Str("template", path).Msg("Rendered from cache")
			_, err := w.Write(out)
			return err
		}
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(Funcs()).Parse(string(src))
	if err != nil {
		return errors.WrapParse("template", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	if key != "" {
		r.cache.Store(key, buf.Bytes())
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// cacheKey is empty when caching is off or the document does not
// serialize deterministically.
func (r *Renderer) cacheKey(path string, src []byte, data any) string {
	if r.cache == nil {
		return ""
	}
	doc, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(doc)
	return tmplcache.KeyFor(path, src) + ":" + hex.EncodeToString(sum[:8])
}
