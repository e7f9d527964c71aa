package entity

import (
	"sort"
	"strconv"
	"strings"
)

// CompareVersions compares two dotted-numeric version strings component by component.
// Components are compared as integers, so "1.10" > "1.9". Missing trailing components
// count as zero, so "1.2" == "1.2.0". A component that is not a number counts as zero;
// IsValidVersion keeps such values out of storage.
// Returns -1 if a < b, 0 if equal and 1 if a > b.
func CompareVersions(a, b string) int {
	left := versionComponents(a)
	right := versionComponents(b)

	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	for i := 0; i < n; i++ {
		var l, r uint64
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		}
	}

	return 0
}

// IsValidVersion reports whether v is a non-empty dotted sequence of unsigned integers
func IsValidVersion(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	for _, part := range strings.Split(v, ".") {
		if part == "" || !isDigits(part) {
			return false
		}
	}
	return true
}

// SortVersionsDescending orders versions newest first by version number
func SortVersionsDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareVersions(versions[i], versions[j]) > 0
	})
}

func versionComponents(v string) []uint64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ".")
	components := make([]uint64, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			n = 0
		}
		components[i] = n
	}
	return components
}
