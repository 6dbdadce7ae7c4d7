// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78

package lz78

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"", 0},
		{"1K", 1024},
		{"2M", 2097152},
		{"-5", 0},
		{"3G", 3},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := ParseSize(c.in); got != c.want {
				t.Fatalf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}
