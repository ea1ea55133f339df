package tutor

import "testing"

func TestIsAffirmative(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"yes", true},
		{"y", true},
		{"да", true},
		{"ok", true},
		{"okay", true},
		{"got it", true},
		{"understood", true},
		{"ready", true},
		{"YES", true},
		{"  Ok  ", true},
		{"got it!", true},
		{"Understood.", true},
		{"", false},
		{"no", false},
		{"yes but what about carbs", false},
		{"maybe", false},
		{"okey", false},
		{"?", false},
	}

	for _, tc := range cases {
		if got := IsAffirmative(tc.in); got != tc.want {
			t.Errorf("IsAffirmative(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
