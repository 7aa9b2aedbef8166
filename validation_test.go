package papertrade

import "testing"

func TestParseShares(t *testing.T) {
	testCases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"5", 5, false},
		{"-3", -3, false},
		{" 12 ", 12, false},
		{"0", 0, false},
		{"2.5", 0, true},
		{"five", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseShares(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseShares(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseShares(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseBudget(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"1000", M(1000), false},
		{"0", M(0), false},
		{"-1", Money{}, true},
		{"12.5", Money{}, true},
		{"lots", Money{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseBudget(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseBudget(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && !got.Equal(tc.want) {
			t.Errorf("ParseBudget(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
