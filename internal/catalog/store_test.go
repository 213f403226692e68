package catalog

import (
	"testing"

	"cotador/internal"
)

func TestStoreReplaceAndGeneration(t *testing.T) {
	s := NewStore()
	if items, gen := s.Snapshot(); len(items) != 0 || gen != 0 {
		t.Fatalf("fresh store: items=%d gen=%d", len(items), gen)
	}

	gen := s.Replace([]internal.InventoryItem{{ID: "a"}, {ID: "b"}})
	if gen != 1 || s.Len() != 2 {
		t.Fatalf("gen=%d len=%d", gen, s.Len())
	}

	items, snapGen := s.Snapshot()
	if len(items) != 2 || snapGen != 1 {
		t.Fatalf("items=%d gen=%d", len(items), snapGen)
	}

	// a later replace supersedes the snapshot's generation
	s.Replace([]internal.InventoryItem{{ID: "c"}})
	if s.Generation() == snapGen {
		t.Fatal("generation should advance on replace")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Replace([]internal.InventoryItem{{ID: "a"}})
	gen := s.Clear()
	if s.Len() != 0 || gen != 2 {
		t.Fatalf("len=%d gen=%d", s.Len(), gen)
	}
}
