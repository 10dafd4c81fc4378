// Package render renders the aggregate document through text/template with
// the filter set the device templates rely on: natural ordering, network
// address classification and attribute extraction, and key-based table
// filtering.
package render

import (
	"fmt"
	"net"
	"net/netip"
	"sort"
	"strconv"
	"text/template"

	"github.com/warrior-graph/sonic-cfggen/pkg/configtree/natsort"
	"github.com/warrior-graph/sonic-cfggen/pkg/schema"
)

// Funcs returns the filter set exposed to templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"natural_sort":   naturalSort,
		"ipv4":           isIPv4,
		"ipv6":           isIPv6,
		"ip_attr":        ipAttr,
		"sort_by_index":  sortByIndex,
		"composite_keys": compositeKeys,
	}
}

// naturalSort returns the input's strings in natural order. Mappings yield
// their sorted keys, sequences a sorted copy of their elements.
func naturalSort(v any) []string {
	var items []string
	switch tv := v.(type) {
	case nil:
		return nil
	case map[string]any:
		for k := range tv {
			items = append(items, k)
		}
	case schema.Ordered:
		items = tv.Keys()
	case []string:
		items = append(items, tv...)
	case []any:
		for _, e := range tv {
			items = append(items, fmt.Sprint(e))
		}
	default:
		return nil
	}
	natsort.Strings(items)
	return items
}

// parsePrefix coerces a value to a network prefix. A bare address parses
// as a full-length prefix. The second return value is false on malformed
// input; the filters built on it fail soft, never raising.
func parsePrefix(v any) (netip.Prefix, bool) {
	s, ok := v.(string)
	if !ok {
		if v == nil {
			return netip.Prefix{}, false
		}
		s = fmt.Sprint(v)
	}
	if p, err := netip.ParsePrefix(s); err == nil {
		return p, true
	}
	if a, err := netip.ParseAddr(s); err == nil {
		return netip.PrefixFrom(a, a.BitLen()), true
	}
	return netip.Prefix{}, false
}

func isIPv4(v any) bool {
	p, ok := parsePrefix(v)
	return ok && p.Addr().Is4()
}

func isIPv6(v any) bool {
	p, ok := parsePrefix(v)
	return ok && p.Addr().Is6()
}

// ipAttrs maps attribute names to extraction functions. Dispatch is an
// explicit table, not reflection over method names.
var ipAttrs = map[string]func(netip.Prefix) any{
	"addr": func(p netip.Prefix) any {
		return p.Addr().String()
	},
	"network": func(p netip.Prefix) any {
		return p.Masked().Addr().String()
	},
	"prefixlen": func(p netip.Prefix) any {
		return p.Bits()
	},
	"netmask": func(p netip.Prefix) any {
		mask := net.CIDRMask(p.Bits(), p.Addr().BitLen())
		return net.IP(mask).String()
	},
}

// ipAttr extracts a named attribute from a prefix-like value. Malformed
// input or an unknown attribute name yields nil, not an error.
func ipAttr(name string, v any) any {
	extract, ok := ipAttrs[name]
	if !ok {
		return nil
	}
	p, ok := parsePrefix(v)
	if !ok {
		return nil
	}
	return extract(p)
}

// sortByIndex sorts interface-name records by the numeric suffix of the
// name, the first prefixLen bytes being a fixed non-numeric prefix
// ("Ethernet", "PortChannel"). Empty or absent input is a no-op.
func sortByIndex(prefixLen int, v any) []string {
	var names []string
	switch tv := v.(type) {
	case nil:
		return nil
	case []string:
		names = append(names, tv...)
	case []any:
		for _, e := range tv {
			names = append(names, fmt.Sprint(e))
		}
	default:
		return nil
	}
	sort.SliceStable(names, func(i, j int) bool {
		return suffixIndex(names[i], prefixLen) < suffixIndex(names[j], prefixLen)
	})
	return names
}

func suffixIndex(name string, prefixLen int) int {
	if len(name) <= prefixLen {
		return 0
	}
	n, _ := strconv.Atoi(name[prefixLen:])
	return n
}

// compositeKeys filters a table to the entries addressed by a composite
// key, separating per-interface-address records from plain per-interface
// records sharing the table.
func compositeKeys(v any) map[string]any {
	table, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := map[string]any{}
	for k, rec := range table {
		if schema.DecodeKey(k).Composite() {
			out[k] = rec
		}
	}
	return out
}
