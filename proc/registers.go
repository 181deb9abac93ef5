package proc

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
	sys "golang.org/x/sys/unix"

	"github.com/godbg/godbg/proc/regnum"
)

// Registers is a wrapper around the raw ptrace register struct returned
// by PTRACE_GETREGS, giving RegisterFile's named-register <-> DWARF
// register-number mapping a concrete backing store (spec.md §4, component
// "RegisterFile").
type Registers struct {
	regs *sys.PtraceRegs
}

// dwarfToAsm maps a DWARF register number to its x86asm enum, the same
// table the teacher's registers_amd64.go builds, giving register name
// resolution a canonical source instead of a hand-rolled string switch.
var dwarfToAsm = map[uint64]x86asm.Reg{
	0: x86asm.RAX, 1: x86asm.RDX, 2: x86asm.RCX, 3: x86asm.RBX,
	4: x86asm.RSI, 5: x86asm.RDI, 6: x86asm.RBP, 7: x86asm.RSP,
	8: x86asm.R8, 9: x86asm.R9, 10: x86asm.R10, 11: x86asm.R11,
	12: x86asm.R12, 13: x86asm.R13, 14: x86asm.R14, 15: x86asm.R15,
	16: x86asm.RIP,
}

// PC returns the program counter (Rip).
func (r *Registers) PC() uint64 { return r.regs.Rip }

// SetPC sets the program counter field without writing it back to the
// debuggee; callers use Process.SetPC to do both.
func (r *Registers) SetPC(pc uint64) { r.regs.Rip = pc }

// SP returns the stack pointer (Rsp).
func (r *Registers) SP() uint64 { return r.regs.Rsp }

// BP returns the frame pointer (Rbp), used by StepEngine to walk the
// classical saved-frame-pointer chain.
func (r *Registers) BP() uint64 { return r.regs.Rbp }

// byName returns a pointer to the named general-purpose register field,
// so both ByName and SetByName can share one switch. Names are resolved
// case-insensitively through x86asm.Reg.String() (e.g. "rax" -> RAX)
// rather than a second hand-maintained string table.
func (r *Registers) byName(name string) (*uint64, error) {
	upper := strings.ToUpper(name)
	for _, reg := range dwarfToAsm {
		if reg.String() != upper {
			continue
		}
		switch reg {
		case x86asm.RAX:
			return &r.regs.Rax, nil
		case x86asm.RBX:
			return &r.regs.Rbx, nil
		case x86asm.RCX:
			return &r.regs.Rcx, nil
		case x86asm.RDX:
			return &r.regs.Rdx, nil
		case x86asm.RSI:
			return &r.regs.Rsi, nil
		case x86asm.RDI:
			return &r.regs.Rdi, nil
		case x86asm.RBP:
			return &r.regs.Rbp, nil
		case x86asm.RSP:
			return &r.regs.Rsp, nil
		case x86asm.R8:
			return &r.regs.R8, nil
		case x86asm.R9:
			return &r.regs.R9, nil
		case x86asm.R10:
			return &r.regs.R10, nil
		case x86asm.R11:
			return &r.regs.R11, nil
		case x86asm.R12:
			return &r.regs.R12, nil
		case x86asm.R13:
			return &r.regs.R13, nil
		case x86asm.R14:
			return &r.regs.R14, nil
		case x86asm.R15:
			return &r.regs.R15, nil
		case x86asm.RIP:
			return &r.regs.Rip, nil
		}
	}
	return nil, fmt.Errorf("unknown register %q", name)
}

// ByName returns the value of the named register.
func (r *Registers) ByName(name string) (uint64, error) {
	p, err := r.byName(name)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// SetByName sets the named register's in-memory value. The caller must
// still call Process.SetRegisters to push it to the debuggee.
func (r *Registers) SetByName(name string, val uint64) error {
	p, err := r.byName(name)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

// ByDwarfNum returns the value of the register with the given DWARF
// register number, as consumed by the location-expression evaluator's
// ExprContext (spec.md §4.4).
func (r *Registers) ByDwarfNum(num uint64) (uint64, error) {
	name, err := regnum.ToName(num)
	if err != nil {
		return 0, err
	}
	return r.ByName(name)
}

// CFA approximates the DWARF call-frame address as rbp+2*WordSize,
// valid only for the classical saved-frame-pointer ABI this debugger
// assumes (spec.md §9 "Frame-walking"; no .eh_frame/CFI unwinding).
func (r *Registers) CFA() uint64 {
	return r.regs.Rbp + 2*WordSize
}

func (r *Registers) String() string {
	var buf bytes.Buffer
	for _, reg := range []struct {
		name string
		val  uint64
	}{
		{"rip", r.regs.Rip}, {"rsp", r.regs.Rsp}, {"rbp", r.regs.Rbp},
		{"rax", r.regs.Rax}, {"rbx", r.regs.Rbx}, {"rcx", r.regs.Rcx}, {"rdx", r.regs.Rdx},
		{"rsi", r.regs.Rsi}, {"rdi", r.regs.Rdi},
		{"r8", r.regs.R8}, {"r9", r.regs.R9}, {"r10", r.regs.R10}, {"r11", r.regs.R11},
		{"r12", r.regs.R12}, {"r13", r.regs.R13}, {"r14", r.regs.R14}, {"r15", r.regs.R15},
	} {
		fmt.Fprintf(&buf, "%8s = %#016x\n", reg.name, reg.val)
	}
	return buf.String()
}
