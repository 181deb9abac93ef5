package proc

import "fmt"

// Breakpoint is a single software breakpoint. While Enabled, the byte at
// Addr in the debuggee equals breakpointInstruction and SavedByte holds
// the byte that was previously there; while disabled, the byte at Addr
// equals SavedByte. A Breakpoint is created, enabled, and destroyed only
// through its owning BreakpointManager.
type Breakpoint struct {
	Pid       int
	Addr      uint64
	SavedByte byte
	Enabled   bool

	// FunctionName, File and Line are resolved at creation time for
	// display purposes only (spec.md §3 Breakpoint), mirroring
	// proc/breakpoints.go's Breakpoint fields in the teacher.
	FunctionName string
	File         string
	Line         int
}

func (bp *Breakpoint) String() string {
	return fmt.Sprintf("Breakpoint at %#x %s:%d (enabled=%v)", bp.Addr, bp.File, bp.Line, bp.Enabled)
}

// Enable reads the byte at Addr, stashes it into SavedByte, and writes
// the trap opcode over it. Calling Enable on an already
// enabled breakpoint is undefined; callers must check IsEnabled first
// (spec.md §4.2).
func (bp *Breakpoint) Enable(mem memoryReadWriter) error {
	original, err := mem.readMemory(uintptr(bp.Addr), 1)
	if err != nil {
		return fmt.Errorf("enable breakpoint at %#x: %w", bp.Addr, err)
	}
	bp.SavedByte = original[0]
	if _, err := mem.writeMemory(uintptr(bp.Addr), []byte{breakpointInstruction}); err != nil {
		return fmt.Errorf("enable breakpoint at %#x: %w", bp.Addr, err)
	}
	bp.Enabled = true
	return nil
}

// Disable restores the byte saved by Enable. Calling Disable on an
// already disabled breakpoint is undefined.
func (bp *Breakpoint) Disable(mem memoryReadWriter) error {
	if _, err := mem.writeMemory(uintptr(bp.Addr), []byte{bp.SavedByte}); err != nil {
		return fmt.Errorf("disable breakpoint at %#x: %w", bp.Addr, err)
	}
	bp.Enabled = false
	return nil
}

// IsEnabled reports whether the breakpoint is currently armed.
func (bp *Breakpoint) IsEnabled() bool {
	return bp.Enabled
}
