package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s    string
		def  int
		want int
	}{
		{"", 10, 10}, // empty -> default
		{"42", 0, 42},
		{"-13", 1, -13},
		{"0012", 99, 12},
		{"x", 5, 5},    // invalid -> default
		{" 42", 7, 7},  // no trimming
		{"999999999999999999999999", -1, -1}, // overflow -> default
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
		}
	}
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		name               string
		limitStr, offset   string
		defLimit           int
		wantLimit, wantOff int
	}{
		{"defaults", "", "", 50, 50, 0},
		{"explicit values", "25", "100", 50, 25, 100},
		{"zero limit falls back", "0", "", 50, 50, 0},
		{"negative limit falls back", "-5", "", 20, 20, 0},
		{"limit clamped to cap", "5000", "", 50, 200, 0},
		{"negative offset floored", "10", "-3", 50, 10, 0},
		{"garbage uses defaults", "abc", "xyz", 30, 30, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := PageParams(tc.limitStr, tc.offset, tc.defLimit)
			if limit != tc.wantLimit || offset != tc.wantOff {
				t.Fatalf("PageParams(%q, %q, %d) = (%d, %d); want (%d, %d)",
					tc.limitStr, tc.offset, tc.defLimit, limit, offset, tc.wantLimit, tc.wantOff)
			}
		})
	}
}
