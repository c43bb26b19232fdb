package traffic

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// visitsField is the payload member holding month -> visit count.
const visitsField = "EstimatedMonthlyVisits"

// Visit is the raw estimate for one month.
type Visit struct {
	Month  string  `json:"month"`
	Visits float64 `json:"visits"`
}

// ParsePayload extracts the monthly visit counts from an API response body,
// in the order they appear.
func ParsePayload(body []byte) ([]Visit, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrMalformedPayload)
	}
	field := gjson.GetBytes(body, visitsField)
	if !field.Exists() {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedPayload, visitsField)
	}
	if !field.IsObject() {
		return nil, fmt.Errorf("%w: %s is not an object", ErrMalformedPayload, visitsField)
	}

	var (
		visits []Visit
		err    error
	)
	field.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.Number {
			err = fmt.Errorf("%w: %s[%q] is not a number", ErrMalformedPayload, visitsField, k.String())
			return false
		}
		visits = append(visits, Visit{Month: k.String(), Visits: v.Float()})
		return true
	})
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// BuildSnapshot formats every month independently into a snapshot.
func BuildSnapshot(visits []Visit) (Snapshot, error) {
	entries := make([]Entry, 0, len(visits))
	for _, v := range visits {
		label, err := Label(v.Month, v.Visits)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		entries = append(entries, Entry{Month: v.Month, Label: label})
	}
	return NewSnapshot(entries...), nil
}
