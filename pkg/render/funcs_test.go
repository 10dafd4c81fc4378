package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalSort(t *testing.T) {
	t.Run("mapping yields sorted keys", func(t *testing.T) {
		got := naturalSort(map[string]any{
			"Ethernet10": nil,
			"Ethernet2":  nil,
			"Ethernet1":  nil,
		})
		assert.Equal(t, []string{"Ethernet1", "Ethernet2", "Ethernet10"}, got)
	})

	t.Run("sequence sorts a copy", func(t *testing.T) {
		got := naturalSort([]any{"Vlan20", "Vlan100", "Vlan3"})
		assert.Equal(t, []string{"Vlan3", "Vlan20", "Vlan100"}, got)
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, naturalSort(nil))
	})
}

func TestIPClassification(t *testing.T) {
	assert.True(t, isIPv4("10.0.0.1/24"))
	assert.False(t, isIPv6("10.0.0.1/24"))

	assert.True(t, isIPv6("2001:db8::1/64"))
	assert.False(t, isIPv4("2001:db8::1/64"))

	assert.True(t, isIPv4("192.168.1.1"), "bare address classifies too")
	assert.True(t, isIPv6("fe80::1"))

	assert.False(t, isIPv4("not-an-ip"))
	assert.False(t, isIPv6("not-an-ip"))
	assert.False(t, isIPv4(nil))
	assert.False(t, isIPv4(""))
}

func TestIPAttr(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  any
	}{
		{"addr", "192.168.0.1/21", "192.168.0.1"},
		{"network", "192.168.0.1/21", "192.168.0.0"},
		{"prefixlen", "192.168.0.1/21", 21},
		{"netmask", "192.168.0.1/21", "255.255.248.0"},
		{"addr", "2001:db8::1/64", "2001:db8::1"},
		{"prefixlen", "2001:db8::1/64", 64},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ipAttr(tc.name, tc.value), "ip_attr %q %q", tc.name, tc.value)
	}

	assert.Nil(t, ipAttr("addr", "not-an-ip"), "malformed input yields nil, not an error")
	assert.Nil(t, ipAttr("bogus", "10.0.0.1/8"), "unknown attribute yields nil")
	assert.Nil(t, ipAttr("addr", nil))
}

func TestSortByIndex(t *testing.T) {
	got := sortByIndex(len("Ethernet"), []any{"Ethernet12", "Ethernet0", "Ethernet4"})
	assert.Equal(t, []string{"Ethernet0", "Ethernet4", "Ethernet12"}, got)

	assert.Nil(t, sortByIndex(8, nil), "absent input is a no-op")
	assert.Empty(t, sortByIndex(8, []any{}))
}

func TestCompositeKeys(t *testing.T) {
	table := map[string]any{
		"Vlan1000":                map[string]any{"proxy_arp": "enabled"},
		"Vlan1000|192.168.0.1/21": map[string]any{},
		"Vlan2000|10.0.0.1/24":    map[string]any{},
	}

	got := compositeKeys(table)

	assert.Len(t, got, 2)
	assert.Contains(t, got, "Vlan1000|192.168.0.1/21")
	assert.Contains(t, got, "Vlan2000|10.0.0.1/24")
	assert.NotContains(t, got, "Vlan1000")

	assert.Nil(t, compositeKeys("not a table"))
}
