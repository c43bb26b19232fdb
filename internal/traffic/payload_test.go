package traffic

import (
	"errors"
	"testing"
)

func TestParsePayload(t *testing.T) {
	body := []byte(`{
		"SiteName": "example.com",
		"EstimatedMonthlyVisits": {"2024-01-01": 5000000, "2024-02-01": 850000, "2024-03-01": 2500000000}
	}`)

	visits, err := ParsePayload(body)
	if err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	want := []Visit{
		{Month: "2024-01-01", Visits: 5_000_000},
		{Month: "2024-02-01", Visits: 850_000},
		{Month: "2024-03-01", Visits: 2_500_000_000},
	}
	if len(visits) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(visits))
	}
	for i := range want {
		if visits[i] != want[i] {
			t.Errorf("visit %d: got %+v, want %+v", i, visits[i], want[i])
		}
	}
}

func TestParsePayload_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"html", `<html>Access denied</html>`},
		{"empty body", ``},
		{"missing field", `{"SiteName":"example.com"}`},
		{"field is null", `{"EstimatedMonthlyVisits":null}`},
		{"field is array", `{"EstimatedMonthlyVisits":[1,2]}`},
		{"string value", `{"EstimatedMonthlyVisits":{"2024-01-01":"lots"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tt.body))
			if !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestParsePayload_EmptyObject(t *testing.T) {
	visits, err := ParsePayload([]byte(`{"EstimatedMonthlyVisits":{}}`))
	if err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if len(visits) != 0 {
		t.Errorf("expected no visits, got %d", len(visits))
	}
}

func TestBuildSnapshot(t *testing.T) {
	snap, err := BuildSnapshot([]Visit{
		{Month: "2024-01-01", Visits: 5_000_000},
		{Month: "2024-02-01", Visits: 12_300_000},
	})
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}
	labels := snap.Labels()
	if len(labels) != 2 || labels[0] != "Jan 2024: 5.0M" || labels[1] != "Feb 2024: 12.3M" {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestBuildSnapshot_BadMonth(t *testing.T) {
	_, err := BuildSnapshot([]Visit{{Month: "someday", Visits: 1}})
	if !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
}
