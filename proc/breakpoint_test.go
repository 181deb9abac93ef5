package proc

import "testing"

// fakeMem is an in-memory stand-in for a debuggee's address space,
// letting Breakpoint and BreakpointManager be exercised without a real
// traced process (spec.md §8 TestableProperties).
type fakeMem struct {
	bytes map[uint64]byte
}

func newFakeMem() *fakeMem {
	return &fakeMem{bytes: map[uint64]byte{}}
}

func (m *fakeMem) readMemory(addr uintptr, size int) ([]byte, error) {
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		out[i] = m.bytes[uint64(addr)+uint64(i)]
	}
	return out, nil
}

func (m *fakeMem) writeMemory(addr uintptr, data []byte) (int, error) {
	for i, b := range data {
		m.bytes[uint64(addr)+uint64(i)] = b
	}
	return len(data), nil
}

func TestBreakpointEnableDisableRoundTrip(t *testing.T) {
	mem := newFakeMem()
	mem.bytes[0x1000] = 0x55 // arbitrary original instruction byte

	bp := &Breakpoint{Addr: 0x1000}
	if err := bp.Enable(mem); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !bp.IsEnabled() {
		t.Fatal("expected breakpoint to be enabled")
	}
	if mem.bytes[0x1000] != breakpointInstruction {
		t.Fatalf("expected trap byte installed, got %#x", mem.bytes[0x1000])
	}
	if bp.SavedByte != 0x55 {
		t.Fatalf("expected saved byte 0x55, got %#x", bp.SavedByte)
	}

	if err := bp.Disable(mem); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if bp.IsEnabled() {
		t.Fatal("expected breakpoint to be disabled")
	}
	if mem.bytes[0x1000] != 0x55 {
		t.Fatalf("expected original byte restored, got %#x", mem.bytes[0x1000])
	}
}

func TestBreakpointManagerInsertIsIdempotent(t *testing.T) {
	mem := newFakeMem()
	mgr := NewBreakpointManager(42, mem)

	bp1, err := mgr.Insert(0x2000, "main.main", "main.go", 10)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	bp2, err := mgr.Insert(0x2000, "main.main", "main.go", 10)
	if err != nil {
		t.Fatalf("second Insert: %v", err)
	}
	if bp1 != bp2 {
		t.Fatal("expected Insert at an occupied address to return the existing breakpoint")
	}
	if len(mgr.Table()) != 1 {
		t.Fatalf("expected exactly one breakpoint, got %d", len(mgr.Table()))
	}
}

func TestBreakpointManagerRemove(t *testing.T) {
	mem := newFakeMem()
	mem.bytes[0x3000] = 0xAB
	mgr := NewBreakpointManager(1, mem)

	if _, err := mgr.Insert(0x3000, "f", "f.go", 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mgr.Remove(0x3000); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if mgr.Contains(0x3000) {
		t.Fatal("expected breakpoint to be gone after Remove")
	}
	if mem.bytes[0x3000] != 0xAB {
		t.Fatalf("expected original byte restored on remove, got %#x", mem.bytes[0x3000])
	}
}

func TestBreakpointManagerRemoveAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Remove of a nonexistent breakpoint to panic")
		}
	}()
	mgr := NewBreakpointManager(1, newFakeMem())
	mgr.Remove(0xdead)
}
