//go:build !ios && !android && (amd64 || arm64)

package state

import (
	"sync"
	"testing"
)

type windowBox struct {
	Title string
	Seen  int
}

func TestGetOrCreateIdempotent(t *testing.T) {
	tbl := NewTable[windowBox]()

	made := 0
	mk := func() *windowBox {
		made++
		return &windowBox{Title: "main"}
	}

	a := tbl.GetOrCreate(0x1000, mk)
	b := tbl.GetOrCreate(0x1000, mk)

	if a == nil {
		t.Fatal("GetOrCreate returned nil")
	}
	if a != b {
		t.Error("GetOrCreate should return the same pointer for the same handle")
	}
	if made != 1 {
		t.Errorf("constructor invoked %d times, want 1", made)
	}
}

func TestHandlesAreIndependent(t *testing.T) {
	tbl := NewTable[windowBox]()

	a := tbl.GetOrCreate(0x1000, func() *windowBox { return &windowBox{Title: "a"} })
	b := tbl.GetOrCreate(0x2000, func() *windowBox { return &windowBox{Title: "b"} })

	if a == b {
		t.Error("different handles must get different objects")
	}
	if got := tbl.Lookup(0x2000); got == nil || got.Title != "b" {
		t.Errorf("Lookup(0x2000) = %+v, want title b", got)
	}
}

func TestDelete(t *testing.T) {
	tbl := NewTable[windowBox]()
	tbl.GetOrCreate(0x1000, func() *windowBox { return &windowBox{} })

	if tbl.Lookup(0x1000) == nil {
		t.Fatal("expected entry before Delete")
	}

	tbl.Delete(0x1000)

	if tbl.Lookup(0x1000) != nil {
		t.Error("expected nil after Delete")
	}
	if tbl.Count() != 0 {
		t.Errorf("Count = %d after Delete, want 0", tbl.Count())
	}

	// Deleting again is a no-op.
	tbl.Delete(0x1000)
}

func TestLookupAbsent(t *testing.T) {
	tbl := NewTable[windowBox]()
	if tbl.Lookup(0xdead) != nil {
		t.Error("Lookup of absent handle should return nil")
	}
}

func TestHandlesSnapshot(t *testing.T) {
	tbl := NewTable[windowBox]()
	tbl.GetOrCreate(1, func() *windowBox { return &windowBox{} })
	tbl.GetOrCreate(2, func() *windowBox { return &windowBox{} })

	hs := tbl.Handles()
	if len(hs) != 2 {
		t.Fatalf("Handles returned %d entries, want 2", len(hs))
	}
	seen := map[uintptr]bool{}
	for _, h := range hs {
		seen[h] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("Handles = %v, want {1, 2}", hs)
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	tbl := NewTable[windowBox]()

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				h := uintptr(id*numOps + j + 1)
				got := tbl.GetOrCreate(h, func() *windowBox { return &windowBox{Seen: id} })
				if got == nil {
					t.Errorf("GetOrCreate returned nil for handle %d", h)
				}
				if tbl.Lookup(h) == nil {
					t.Errorf("Lookup returned nil for handle %d", h)
				}
				tbl.Delete(h)
			}
		}(i)
	}

	wg.Wait()

	if tbl.Count() != 0 {
		t.Errorf("expected empty table after deletes, got %d entries", tbl.Count())
	}
}
