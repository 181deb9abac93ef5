package proc

import "fmt"

// BreakpointTable maps a breakpoint address to the Breakpoint installed
// there (spec.md §3). Every entry's Pid equals the owning manager's pid.
type BreakpointTable map[uint64]*Breakpoint

// BreakpointManager exclusively owns every Breakpoint value for a
// debuggee (spec.md §3 Ownership). It is the only thing that mutates the
// BreakpointTable.
type BreakpointManager struct {
	pid   int
	mem   memoryReadWriter
	table BreakpointTable
}

// NewBreakpointManager returns a manager that installs breakpoints into
// the given debuggee's address space.
func NewBreakpointManager(pid int, mem memoryReadWriter) *BreakpointManager {
	return &BreakpointManager{pid: pid, mem: mem, table: BreakpointTable{}}
}

// Table exposes the underlying BreakpointTable for read-only iteration.
func (m *BreakpointManager) Table() BreakpointTable {
	return m.table
}

// Contains reports whether a breakpoint is installed at addr.
func (m *BreakpointManager) Contains(addr uint64) bool {
	_, ok := m.table[addr]
	return ok
}

// Get returns the breakpoint installed at addr, if any.
func (m *BreakpointManager) Get(addr uint64) (*Breakpoint, bool) {
	bp, ok := m.table[addr]
	return bp, ok
}

// Insert creates, enables, and stores a Breakpoint at addr. If one
// already exists there, Insert is a no-op that returns the existing
// entry (spec.md §4.3).
func (m *BreakpointManager) Insert(addr uint64, fn, file string, line int) (*Breakpoint, error) {
	if bp, ok := m.table[addr]; ok {
		return bp, nil
	}
	bp := &Breakpoint{Pid: m.pid, Addr: addr, FunctionName: fn, File: file, Line: line}
	if err := bp.Enable(m.mem); err != nil {
		return nil, err
	}
	m.table[addr] = bp
	return bp, nil
}

// Disable arms down the breakpoint at addr without removing it from the
// table, so a later Enable restores it at the same entry (used by
// StepEngine to step over a breakpoint's own trap instruction).
func (m *BreakpointManager) Disable(addr uint64) error {
	bp, ok := m.table[addr]
	if !ok {
		panic(fmt.Sprintf("proc: disable of nonexistent breakpoint at %#x", addr))
	}
	if !bp.IsEnabled() {
		return nil
	}
	return bp.Disable(m.mem)
}

// Enable re-arms a previously disabled table entry.
func (m *BreakpointManager) Enable(addr uint64) error {
	bp, ok := m.table[addr]
	if !ok {
		panic(fmt.Sprintf("proc: enable of nonexistent breakpoint at %#x", addr))
	}
	if bp.IsEnabled() {
		return nil
	}
	return bp.Enable(m.mem)
}

// Remove disables the breakpoint at addr (if enabled) and erases the
// entry. Removing an absent entry is a program error (spec.md §4.3).
func (m *BreakpointManager) Remove(addr uint64) error {
	bp, ok := m.table[addr]
	if !ok {
		panic(fmt.Sprintf("proc: remove of nonexistent breakpoint at %#x", addr))
	}
	if bp.IsEnabled() {
		if err := bp.Disable(m.mem); err != nil {
			return err
		}
	}
	delete(m.table, addr)
	return nil
}
