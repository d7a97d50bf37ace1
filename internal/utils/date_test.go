package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2099-01-01", "2099-01-01"},
		{"2099-01-01T00:00:00Z", "2099-01-01"},
		{"2099-01-01T15:30:00+02:00", "2099-01-01"},
		{"2099-01-01T15:30:00", "2099-01-01"},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		if err != nil {
			t.Errorf("NormalizeDate(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "01/02/2099", "2099-13-40"} {
		if _, err := NormalizeDate(in); err == nil {
			t.Errorf("NormalizeDate(%q) succeeded, want error", in)
		}
	}
}

func TestParseBookedDate(t *testing.T) {
	d, err := ParseBookedDate("2099-01-01")
	if err != nil {
		t.Fatalf("ParseBookedDate returned error: %v", err)
	}
	if d.Year() != 2099 || d.Month() != 1 || d.Day() != 1 {
		t.Errorf("ParseBookedDate = %v, want 2099-01-01", d)
	}
	if h, m, s := d.Clock(); h+m+s != 0 {
		t.Errorf("ParseBookedDate has a time component: %v", d)
	}
}
