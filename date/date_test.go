package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, time.July, 1), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"2025-13-01", Date{}, true},
		{"not-a-date", Date{}, true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAdd_Normalizes(t *testing.T) {
	d := New(2025, time.January, 31).Add(1)
	if d != New(2025, time.February, 1) {
		t.Errorf("Jan 31 + 1 = %v, want 2025-02-01", d)
	}
	d = New(2025, time.March, 1).Add(-1)
	if d != New(2025, time.February, 28) {
		t.Errorf("Mar 1 - 1 = %v, want 2025-02-28", d)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.June, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-06-15"` {
		t.Errorf("Marshal = %s, want \"2025-06-15\"", b)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != d {
		t.Errorf("round-trip = %v, want %v", got, d)
	}
}
