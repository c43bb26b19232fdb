package msgs

import (
	"errors"
	"testing"

	"github.com/sadopc/sitetraffic/internal/traffic"
)

func TestFetchDoneMsg_ErrorMatching(t *testing.T) {
	msg := FetchDoneMsg{
		Domain: "example.com",
		Err:    &traffic.FetchError{Domain: "example.com", Status: 503, Err: traffic.ErrUnexpectedStatus},
	}
	if !errors.Is(msg.Err, traffic.ErrFetch) {
		t.Fatal("expected fetch error family")
	}
	if !errors.Is(msg.Err, traffic.ErrUnexpectedStatus) {
		t.Fatal("expected unexpected status cause")
	}
}

func TestCacheCheckedMsg_ZeroValueIsMiss(t *testing.T) {
	var msg CacheCheckedMsg
	if msg.Hit || msg.Snapshot.Len() != 0 {
		t.Fatalf("zero value should be an empty miss, got %+v", msg)
	}
}
