package tmplcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFor(t *testing.T) {
	a := KeyFor("interfaces.tmpl", []byte("template body"))
	b := KeyFor("interfaces.tmpl", []byte("template body"))
	assert.Equal(t, a, b, "key derivation must be deterministic")

	changedSrc := KeyFor("interfaces.tmpl", []byte("template body v2"))
	assert.NotEqual(t, a, changedSrc, "edited source must change the key")

	changedName := KeyFor("other.tmpl", []byte("template body"))
	assert.NotEqual(t, a, changedName, "template identity is part of the key")

	// memcached keys: no spaces, bounded length
	require.Less(t, len(a), 250)
	assert.NotContains(t, a, " ")
}

func TestUnreachableCacheIsAMiss(t *testing.T) {
	c := New("127.0.0.1:1") // nothing listens here

	got, ok := c.Load("tmpl:whatever")
	assert.False(t, ok, "connectivity failure must present as a miss")
	assert.Nil(t, got)

	// Store must swallow the failure.
	c.Store("tmpl:whatever", []byte("artifact"))
}

func TestNewDefaultsAddr(t *testing.T) {
	assert.NotNil(t, New(""))
}
