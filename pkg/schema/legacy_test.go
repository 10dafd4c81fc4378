package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrior-graph/sonic-cfggen/pkg/configtree"
)

func sampleDoc() configtree.Doc {
	return configtree.Doc{
		"PORT": map[string]any{
			"Ethernet10": map[string]any{"alias": "fortyGigE0/10"},
			"Ethernet2":  map[string]any{"alias": "fortyGigE0/2"},
			"Ethernet1":  map[string]any{"alias": "fortyGigE0/1"},
		},
		"VLAN_INTERFACE": map[string]any{
			"Vlan1000|192.168.0.1/21": map[string]any{},
			"Vlan1000":                map[string]any{"proxy_arp": "enabled"},
		},
		"minigraph_hwsku": "ACS-MSN2700",
	}
}

func TestToLegacyOrdering(t *testing.T) {
	legacy := ToLegacy(sampleDoc())

	port, ok := legacy.Get("PORT")
	require.True(t, ok)
	assert.Equal(t, []string{"Ethernet1", "Ethernet2", "Ethernet10"}, port.(Ordered).Keys(),
		"records must come out in natural order")

	vi, ok := legacy.Get("VLAN_INTERFACE")
	require.True(t, ok)
	assert.Equal(t, []string{"Vlan1000", "Vlan1000|192.168.0.1/21"}, vi.(Ordered).Keys())
}

func TestLegacyRoundTrip(t *testing.T) {
	doc := sampleDoc()
	got := FromLegacy(ToLegacy(doc))
	assert.Equal(t, doc, got)
}

func TestLegacyRoundTripSequences(t *testing.T) {
	doc := configtree.Doc{
		"VLAN": map[string]any{
			"Vlan1000": map[string]any{
				"members": []any{"Ethernet0", "Ethernet4"},
			},
		},
	}
	assert.Equal(t, doc, FromLegacy(ToLegacy(doc)))
}

func TestToLegacyLookup(t *testing.T) {
	t.Run("exact key match", func(t *testing.T) {
		out := ToLegacyLookup(sampleDoc(), "Ethernet2")
		port, ok := out.Get("PORT")
		require.True(t, ok)
		rec := port.(Ordered)
		alias, _ := rec.Get("alias")
		assert.Equal(t, "fortyGigE0/2", alias)
	})

	t.Run("membership in composite key", func(t *testing.T) {
		out := ToLegacyLookup(configtree.Doc{
			"VLAN_INTERFACE": map[string]any{
				"Vlan1000|192.168.0.1/21": map[string]any{"scope": "global"},
			},
		}, "192.168.0.1/21")
		vi, ok := out.Get("VLAN_INTERFACE")
		require.True(t, ok)
		scope, _ := vi.(Ordered).Get("scope")
		assert.Equal(t, "global", scope)
	})

	t.Run("exact match outranks membership", func(t *testing.T) {
		out := ToLegacyLookup(sampleDoc(), "Vlan1000")
		vi, ok := out.Get("VLAN_INTERFACE")
		require.True(t, ok)
		proxy, _ := vi.(Ordered).Get("proxy_arp")
		assert.Equal(t, "enabled", proxy)
	})

	t.Run("tables without a match are dropped", func(t *testing.T) {
		out := ToLegacyLookup(sampleDoc(), "Ethernet1")
		_, ok := out.Get("VLAN_INTERFACE")
		assert.False(t, ok)
		_, ok = out.Get("PORT")
		assert.True(t, ok)
	})
}

func TestOrderedMarshalJSON(t *testing.T) {
	legacy := ToLegacy(configtree.Doc{
		"PORT": map[string]any{
			"Ethernet10": map[string]any{"mtu": "9100"},
			"Ethernet2":  map[string]any{"mtu": "9100"},
		},
	})

	out, err := json.Marshal(legacy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"PORT": {"Ethernet2": {"mtu": "9100"}, "Ethernet10": {"mtu": "9100"}}}`, string(out))
	assert.Less(t,
		indexOf(string(out), "Ethernet2"), indexOf(string(out), "Ethernet10"),
		"serialized order must follow the entry order")
}

func TestOrderedMarshalYAML(t *testing.T) {
	legacy := ToLegacy(configtree.Doc{
		"PORT": map[string]any{
			"Ethernet10": map[string]any{"mtu": "9100"},
			"Ethernet2":  map[string]any{"mtu": "9100"},
		},
	})

	out, err := yaml.Marshal(legacy)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "PORT:")
	assert.Less(t, indexOf(text, "Ethernet2"), indexOf(text, "Ethernet10"))
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
