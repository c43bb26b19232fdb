package traffic

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry is one month of a snapshot.
type Entry struct {
	Month string // key as returned by the API, e.g. "2024-01-01"
	Label string // display string, e.g. "Jan 2024: 5.0M"
}

// Snapshot is the ordered month -> display string mapping produced by one
// fetch. Order is the order the API returned the months in. The zero value is
// an empty snapshot.
type Snapshot struct {
	entries []Entry
}

// NewSnapshot builds a snapshot from entries. A repeated month keeps its
// first position and takes the last label, like a JSON object would.
func NewSnapshot(entries ...Entry) Snapshot {
	var s Snapshot
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Month]; ok {
			s.entries[i].Label = e.Label
			continue
		}
		index[e.Month] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s
}

// Len returns the number of months.
func (s Snapshot) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in order.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Labels returns the display strings in order.
func (s Snapshot) Labels() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Label
	}
	return out
}

// Get returns the label stored for month.
func (s Snapshot) Get(month string) (string, bool) {
	for _, e := range s.entries {
		if e.Month == month {
			return e.Label, true
		}
	}
	return "", false
}

// Latest returns the last month in order.
func (s Snapshot) Latest() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Equal reports whether both snapshots hold the same months, labels and order.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.entries) != len(o.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the snapshot as a JSON object, members in snapshot order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, e := range s.entries {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(e.Month)
		stream.WriteString(e.Label)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON decodes a JSON object of string members, keeping member order.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrMalformedSnapshot)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("%w: not an object", ErrMalformedSnapshot)
	}

	var (
		entries []Entry
		err     error
	)
	root.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			err = fmt.Errorf("%w: month %q is not a string", ErrMalformedSnapshot, k.String())
			return false
		}
		entries = append(entries, Entry{Month: k.String(), Label: v.String()})
		return true
	})
	if err != nil {
		return err
	}
	*s = NewSnapshot(entries...)
	return nil
}
