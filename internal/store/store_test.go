package store

import (
	"testing"
	"time"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
)

func sum(id, status string) engine.Summary {
	return engine.Summary{ContainerID: id, CurrentStatus: status}
}

// fixedClock returns a func() time.Time that always returns t.
func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestPutAndGet(t *testing.T) {
	st := New(5 * time.Minute)
	st.Put(sum("MSCU1234567", "in_transit"))

	e, ok := st.Get("MSCU1234567")
	if !ok {
		t.Fatal("Get: expected entry, got none")
	}
	if e.Summary.ContainerID != "MSCU1234567" {
		t.Errorf("ContainerID: got %q", e.Summary.ContainerID)
	}
}

func TestGet_Missing(t *testing.T) {
	st := New(5 * time.Minute)
	if _, ok := st.Get("unknown"); ok {
		t.Fatal("Get on empty store: expected false, got true")
	}
}

func TestPut_Overwrites(t *testing.T) {
	st := New(5 * time.Minute)
	st.Put(sum("MSCU1234567", "arrived_at_port"))
	st.Put(sum("MSCU1234567", "departed"))

	e, ok := st.Get("MSCU1234567")
	if !ok {
		t.Fatal("Get: expected entry after two Puts")
	}
	if e.Summary.CurrentStatus != "departed" {
		t.Errorf("CurrentStatus: got %q, want departed", e.Summary.CurrentStatus)
	}
}

func TestList_ExcludesStale(t *testing.T) {
	base := time.Now()
	st := New(5 * time.Minute)

	st.now = fixedClock(base.Add(-10 * time.Minute)) // stale
	st.Put(sum("OLD", "delivered"))

	st.now = fixedClock(base) // live
	st.Put(sum("NEW", "in_transit"))

	entries := st.List()
	if len(entries) != 1 {
		t.Fatalf("List: got %d entries, want 1", len(entries))
	}
	if entries[0].Summary.ContainerID != "NEW" {
		t.Errorf("List[0]: got %q, want NEW", entries[0].Summary.ContainerID)
	}
}

func TestList_SortedByContainerID(t *testing.T) {
	st := New(5 * time.Minute)
	st.Put(sum("CCCC", "in_transit"))
	st.Put(sum("AAAA", "in_transit"))
	st.Put(sum("BBBB", "in_transit"))

	entries := st.List()
	if len(entries) != 3 {
		t.Fatalf("List: got %d entries, want 3", len(entries))
	}
	for i, want := range []string{"AAAA", "BBBB", "CCCC"} {
		if entries[i].Summary.ContainerID != want {
			t.Errorf("List[%d]: got %q, want %q", i, entries[i].Summary.ContainerID, want)
		}
	}
}

func TestEvict(t *testing.T) {
	base := time.Now()
	st := New(5 * time.Minute)

	st.now = fixedClock(base.Add(-10 * time.Minute))
	st.Put(sum("OLD", "delivered"))
	st.now = fixedClock(base)
	st.Put(sum("NEW", "in_transit"))

	if n := st.Evict(base); n != 1 {
		t.Errorf("Evict: removed %d, want 1", n)
	}
	if st.Count() != 1 {
		t.Errorf("Count after evict: got %d, want 1", st.Count())
	}
	if _, ok := st.Get("OLD"); ok {
		t.Error("stale entry still present after Evict")
	}
}

func TestCount_IncludesStale(t *testing.T) {
	base := time.Now()
	st := New(5 * time.Minute)

	st.now = fixedClock(base.Add(-10 * time.Minute))
	st.Put(sum("OLD", "delivered"))
	st.now = fixedClock(base)
	st.Put(sum("NEW", "in_transit"))

	if st.Count() != 2 {
		t.Errorf("Count: got %d, want 2", st.Count())
	}
}
