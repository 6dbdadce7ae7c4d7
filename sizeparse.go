// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

import "strconv"

// ParseSize parses a decimal size with an optional K (×1024) or M (×1024²)
// suffix, mirroring the original wrapper.c's byte_size helper. An empty or
// unparseable string, or a negative value, yields 0. Any other trailing
// non-digit suffix is simply dropped, so e.g. "3G" parses as 3.
func ParseSize(s string) int {
	if s == "" {
		return 0
	}

	mult := 1
	last := s[len(s)-1]
	switch {
	case last == 'K' || last == 'k':
		mult = 1024
		s = s[:len(s)-1]
	case last == 'M' || last == 'm':
		mult = 1024 * 1024
		s = s[:len(s)-1]
	case last < '0' || last > '9':
		s = s[:len(s)-1]
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n * mult
}
