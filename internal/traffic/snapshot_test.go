package traffic

import (
	"encoding/json"
	"errors"
	"testing"
)

func sampleSnapshot() Snapshot {
	return NewSnapshot(
		Entry{Month: "2024-03-01", Label: "Mar 2024: 1.2M"},
		Entry{Month: "2024-01-01", Label: "Jan 2024: 5.0M"},
		Entry{Month: "2024-02-01", Label: "Feb 2024: 850.0k"},
	)
}

func TestSnapshot_MarshalKeepsOrder(t *testing.T) {
	data, err := json.Marshal(sampleSnapshot())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"2024-03-01":"Mar 2024: 1.2M","2024-01-01":"Jan 2024: 5.0M","2024-02-01":"Feb 2024: 850.0k"}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}

func TestSnapshot_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(Snapshot{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, want {}", data)
	}
}

func TestSnapshot_UnmarshalKeepsOrder(t *testing.T) {
	var s Snapshot
	err := json.Unmarshal([]byte(`{"b":"second? no, first","a":"then a"}`), &s)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	entries := s.Entries()
	if len(entries) != 2 || entries[0].Month != "b" || entries[1].Month != "a" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	latest, ok := s.Latest()
	if !ok || latest.Month != "a" {
		t.Errorf("expected latest month a, got %+v", latest)
	}
}

func TestSnapshot_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"2024-01-01":`},
		{"array", `["Jan 2024: 5.0M"]`},
		{"number member", `{"2024-01-01":5000000}`},
		{"cookie truncated", `{"2024-01-01":"Jan 2024`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Snapshot
			err := s.UnmarshalJSON([]byte(tt.data))
			if !errors.Is(err, ErrMalformedSnapshot) {
				t.Errorf("expected ErrMalformedSnapshot, got %v", err)
			}
		})
	}
}

func TestSnapshot_DuplicateMonthKeepsPosition(t *testing.T) {
	s := NewSnapshot(
		Entry{Month: "2024-01-01", Label: "old"},
		Entry{Month: "2024-02-01", Label: "feb"},
		Entry{Month: "2024-01-01", Label: "new"},
	)
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
	if got, _ := s.Get("2024-01-01"); got != "new" {
		t.Errorf("expected last label to win, got %q", got)
	}
	if s.Entries()[0].Month != "2024-01-01" {
		t.Errorf("expected first position kept, got %+v", s.Entries())
	}
}

func TestSnapshot_EntriesIsACopy(t *testing.T) {
	s := sampleSnapshot()
	entries := s.Entries()
	entries[0].Label = "mutated"
	if got, _ := s.Get("2024-03-01"); got != "Mar 2024: 1.2M" {
		t.Errorf("snapshot mutated through Entries(): %q", got)
	}
}

func TestSnapshot_Equal(t *testing.T) {
	a := sampleSnapshot()
	b := sampleSnapshot()
	if !a.Equal(b) {
		t.Error("expected equal snapshots")
	}
	reordered := NewSnapshot(append(b.Entries()[1:], b.Entries()[0])...)
	if a.Equal(reordered) {
		t.Error("expected order to matter")
	}
}
