// Package regnum maps hardware register names to the DWARF register
// numbers used in location expressions, the way pkg/dwarf/regnum does
// for the full delve register set. This module only needs the
// general-purpose registers and the program counter, since watchpoints,
// SSE/x87 state, and segment selectors are out of scope.
package regnum

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// DWARF register numbers for AMD64, per the System V ABI AMD64
// Architecture Processor Supplement, figure 3.36.
const (
	Rax = 0
	Rdx = 1
	Rcx = 2
	Rbx = 3
	Rsi = 4
	Rdi = 5
	Rbp = 6
	Rsp = 7
	R8  = 8
	R9  = 9
	R10 = 10
	R11 = 11
	R12 = 12
	R13 = 13
	R14 = 14
	R15 = 15
	Rip = 16
)

// dwarfToAsm mirrors proc.dwarfToAsm; kept here too so this package's
// name tables are derived from x86asm.Reg rather than hand-typed twice.
var dwarfToAsm = map[uint64]x86asm.Reg{
	Rax: x86asm.RAX, Rdx: x86asm.RDX, Rcx: x86asm.RCX, Rbx: x86asm.RBX,
	Rsi: x86asm.RSI, Rdi: x86asm.RDI, Rbp: x86asm.RBP, Rsp: x86asm.RSP,
	R8: x86asm.R8, R9: x86asm.R9, R10: x86asm.R10, R11: x86asm.R11,
	R12: x86asm.R12, R13: x86asm.R13, R14: x86asm.R14, R15: x86asm.R15,
	Rip: x86asm.RIP,
}

// FromName returns the DWARF register number for a register named by the
// architecture's conventional name (case-insensitive), e.g. "rbp".
func FromName(name string) (uint64, error) {
	upper := strings.ToUpper(name)
	for num, reg := range dwarfToAsm {
		if reg.String() == upper {
			return num, nil
		}
	}
	return 0, fmt.Errorf("unknown register %q", name)
}

// ToName returns the architecture register name for a DWARF register
// number, lowercased to match this debugger's conventional spelling.
func ToName(num uint64) (string, error) {
	reg, ok := dwarfToAsm[num]
	if !ok {
		return "", fmt.Errorf("unknown DWARF register %d", num)
	}
	return strings.ToLower(reg.String()), nil
}
