package proc

import (
	"testing"

	sys "golang.org/x/sys/unix"
)

func newTestRegisters() *Registers {
	return &Registers{regs: &sys.PtraceRegs{}}
}

func TestRegistersByNameRoundTrip(t *testing.T) {
	r := newTestRegisters()
	if err := r.SetByName("rax", 0x42); err != nil {
		t.Fatalf("SetByName: %v", err)
	}
	got, err := r.ByName("rax")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if got != 0x42 {
		t.Fatalf("expected 0x42, got %#x", got)
	}
}

func TestRegistersByNameUnknown(t *testing.T) {
	r := newTestRegisters()
	if _, err := r.ByName("xmm0"); err == nil {
		t.Fatal("expected error for unsupported register name")
	}
}

func TestRegistersPC(t *testing.T) {
	r := newTestRegisters()
	r.SetPC(0x401000)
	if r.PC() != 0x401000 {
		t.Fatalf("expected PC 0x401000, got %#x", r.PC())
	}
}

func TestRegistersCFA(t *testing.T) {
	r := newTestRegisters()
	if err := r.SetByName("rbp", 0x1000); err != nil {
		t.Fatalf("SetByName: %v", err)
	}
	if want := uint64(0x1000 + 2*WordSize); r.CFA() != want {
		t.Fatalf("expected CFA %#x, got %#x", want, r.CFA())
	}
}

func TestRegistersByDwarfNum(t *testing.T) {
	r := newTestRegisters()
	if err := r.SetByName("rax", 0x99); err != nil {
		t.Fatalf("SetByName: %v", err)
	}
	got, err := r.ByDwarfNum(0) // Rax per proc/regnum/amd64.go
	if err != nil {
		t.Fatalf("ByDwarfNum: %v", err)
	}
	if got != 0x99 {
		t.Fatalf("expected 0x99, got %#x", got)
	}
}
