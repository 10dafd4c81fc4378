// Package natsort implements numeric-aware string ordering, the order
// humans expect from device names: "Ethernet2" sorts before "Ethernet10".
// It is a pure comparator with no knowledge of the document model.
package natsort

import "sort"

// Compare returns -1, 0, or 1 ordering a relative to b. Runs of digits
// compare by numeric value; everything else compares byte-wise. Two runs
// with the same numeric value but different leading zeros ("1" vs "01")
// order by run length, fewer zeros first, so the order is total.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ia, jb := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := trimZeros(a[ia:i])
			nb := trimZeros(b[jb:j])
			if len(na) != len(nb) {
				return sign(len(na) - len(nb))
			}
			if na != nb {
				return sign(compareBytes(na, nb))
			}
			if runA, runB := i-ia, j-jb; runA != runB {
				return sign(runA - runB)
			}
			continue
		}
		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	return sign((len(a) - i) - (len(b) - j))
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts s in place in natural order.
func Strings(s []string) {
	sort.Slice(s, func(i, j int) bool { return Compare(s[i], s[j]) < 0 })
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

func compareBytes(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
