// Package stepengine implements source-level stepping on top of proc's
// raw TraceeControl primitives and dbginfo's line-table lookups
// (spec.md §4.5 "StepEngine"). Every exported operation here corrects
// the PC after a breakpoint trap and waits for the debuggee to stop
// before returning; TraceeControl itself does neither.
package stepengine

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/godbg/godbg/dbginfo"
	"github.com/godbg/godbg/logflags"
	"github.com/godbg/godbg/proc"
)

// Engine drives a single debuggee through breakpoint-aware continues and
// source-line-aware steps.
type Engine struct {
	Proc *proc.Process
	Info *dbginfo.DebugInfo
}

// New returns a stepping engine over an already-launched debuggee.
func New(p *proc.Process, info *dbginfo.DebugInfo) *Engine {
	return &Engine{Proc: p, Info: info}
}

// Stopped is what every stepping operation returns: whether the debuggee
// is still alive, and if so, where it stopped.
type Stopped struct {
	Exited     bool
	ExitStatus int
	AtBreak    *proc.Breakpoint // non-nil if the stop was a user breakpoint
	Line       dbginfo.LineEntry
	// Signal is set to a crash signal (e.g. SIGSEGV) when the debuggee
	// stopped because of one rather than a breakpoint or single-step
	// completion (spec.md §4.5 SIGTRAP handling state machine, "segfault"
	// transition). Zero for ordinary stops.
	Signal syscall.Signal
}

// IsCrash reports whether the stop was caused by a signal the debuggee
// cannot recover from on its own (spec.md §7 DebuggeeCrashed).
func (s Stopped) IsCrash() bool {
	switch s.Signal {
	case syscall.SIGSEGV, syscall.SIGABRT, syscall.SIGBUS, syscall.SIGILL, syscall.SIGFPE:
		return true
	default:
		return false
	}
}

// ErrNoDebugInfo is returned when stepping lands the PC outside every
// known function, which single-step-based stepping treats as having
// left the debuggee's own code (e.g. into the dynamic linker or libc)
// rather than a hard failure.
var ErrNoDebugInfo = errors.New("stepengine: no debug info at current pc")

// correctPCIfTrap corrects for a breakpoint trap: the CPU leaves RIP one byte
// past the INT3, so a TrapBreakpoint stop must rewind it before any
// line lookup or further stepping (spec.md §4.1, §4.5).
func (e *Engine) correctPCIfTrap(info proc.StopInfo) error {
	if info.Trap != proc.TrapBreakpoint {
		return nil
	}
	pc, err := e.Proc.GetPC()
	if err != nil {
		return err
	}
	return e.Proc.SetPC(pc - 1)
}

func (e *Engine) stoppedAt(info proc.StopInfo) (Stopped, error) {
	if info.Exited {
		return Stopped{Exited: true, ExitStatus: info.ExitStatus}, nil
	}
	if err := e.correctPCIfTrap(info); err != nil {
		return Stopped{}, err
	}
	pc, err := e.Proc.GetPC()
	if err != nil {
		return Stopped{}, err
	}
	var atBreak *proc.Breakpoint
	if bp, ok := e.Proc.Breakpoints.Get(pc); ok {
		atBreak = bp
	}
	// A signal other than the breakpoint/single-step SIGTRAPs (spec.md
	// §4.5's "other signals" transition) means the debuggee stopped for
	// a reason StepEngine did not ask for, most commonly a crash; report
	// it rather than trying to resolve a line for a PC that may not even
	// be valid code.
	if info.Trap == proc.TrapUnknown && info.Signal != 0 {
		return Stopped{AtBreak: atBreak, Signal: info.Signal}, nil
	}
	line, err := e.Info.LineEntryFromPC(pc)
	if err != nil {
		return Stopped{AtBreak: atBreak}, ErrNoDebugInfo
	}
	return Stopped{AtBreak: atBreak, Line: line}, nil
}

// stepOverCurrentBreakpoint disables a breakpoint installed at the
// current PC, executes one instruction, and re-enables it, so that
// Continue never gets stuck re-trapping on the breakpoint it just
// stopped at (spec.md §4.5, grounded on Thread.Continue/Thread.Step in
// the teacher).
func (e *Engine) stepOverCurrentBreakpoint() error {
	pc, err := e.Proc.GetPC()
	if err != nil {
		return err
	}
	bp, ok := e.Proc.Breakpoints.Get(pc)
	if !ok || !bp.IsEnabled() {
		return nil
	}
	if err := e.Proc.Breakpoints.Disable(pc); err != nil {
		return err
	}
	defer e.Proc.Breakpoints.Enable(pc)
	if err := e.Proc.SingleStep(); err != nil {
		return err
	}
	_, err = e.Proc.WaitForStop()
	return err
}

// Continue implements continue_execution: resume until a breakpoint
// traps, a signal is delivered, or the debuggee exits.
func (e *Engine) Continue() (Stopped, error) {
	if err := e.stepOverCurrentBreakpoint(); err != nil {
		return Stopped{}, fmt.Errorf("stepengine: continue: %w", err)
	}
	if e.Proc.Exited() {
		return Stopped{Exited: true}, nil
	}
	if err := e.Proc.Continue(); err != nil {
		return Stopped{}, fmt.Errorf("stepengine: continue: %w", err)
	}
	info, err := e.Proc.WaitForStop()
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: continue: %w", err)
	}
	if logflags.StepEngine() {
		logflags.StepEngineLogger().Debugf("continue stopped: %+v", info)
	}
	return e.stoppedAt(info)
}

// SingleStepWithBPCheck implements single_step_with_bp_check: execute
// exactly one machine instruction, transparently stepping over a
// breakpoint installed at the current PC the same way Continue does.
func (e *Engine) SingleStepWithBPCheck() (Stopped, error) {
	pc, err := e.Proc.GetPC()
	if err != nil {
		return Stopped{}, err
	}
	if bp, ok := e.Proc.Breakpoints.Get(pc); ok && bp.IsEnabled() {
		if err := e.Proc.Breakpoints.Disable(pc); err != nil {
			return Stopped{}, err
		}
		defer e.Proc.Breakpoints.Enable(pc)
	}
	if err := e.Proc.SingleStep(); err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step: %w", err)
	}
	info, err := e.Proc.WaitForStop()
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step: %w", err)
	}
	return e.stoppedAt(info)
}

// currentCFA reads the frame pointer and computes the classical CFA
// (spec.md §9): rbp+2*WordSize, valid only while the current function
// has executed its prologue.
func (e *Engine) currentCFA() (uint64, error) {
	regs, err := e.Proc.Registers()
	if err != nil {
		return 0, err
	}
	return regs.CFA(), nil
}

// StepIn implements step_in: single-step until the line number changes
// and the PC resolves to a known statement boundary. If a single step
// lands where no line entry resolves (e.g. a PLT stub or libc), StepIn
// stops there and returns ErrNoDebugInfo; the fault localizer treats
// that error as the end of traceable execution.
func (e *Engine) StepIn() (Stopped, error) {
	startLine, startErr := e.currentLine()
	for {
		stopped, err := e.SingleStepWithBPCheck()
		if err != nil {
			return Stopped{}, err
		}
		if stopped.Exited {
			return stopped, nil
		}
		if stopped.AtBreak != nil {
			return stopped, nil
		}
		if stopped.IsCrash() {
			return stopped, nil
		}
		pc, err := e.Proc.GetPC()
		if err != nil {
			return Stopped{}, err
		}
		// stoppedAt (inside SingleStepWithBPCheck, above) already
		// resolved this pc's line entry and would have returned
		// ErrNoDebugInfo if it had failed, so this lookup always
		// succeeds.
		line, err := e.Info.LineEntryFromPC(pc)
		if err != nil {
			return Stopped{}, err
		}
		if startErr != nil || line.Line != startLine.Line || line.File != startLine.File {
			if !line.IsStmt {
				continue
			}
			return Stopped{Line: line}, nil
		}
	}
}

func (e *Engine) currentLine() (dbginfo.LineEntry, error) {
	pc, err := e.Proc.GetPC()
	if err != nil {
		return dbginfo.LineEntry{}, err
	}
	return e.Info.LineEntryFromPC(pc)
}

// StepOut implements step_out: run until the current function returns
// to its caller. It reads the saved return address at CFA-WordSize
// (the classical frame-pointer convention; spec.md §9) and temporarily
// breakpoints there, relying on frame depth to disambiguate recursive
// calls to the same function.
func (e *Engine) StepOut() (Stopped, error) {
	cfa, err := e.currentCFA()
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step out: %w", err)
	}
	retAddr, err := e.Proc.ReadWord(cfa - proc.WordSize)
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step out: reading return address: %w", err)
	}

	alreadyPresent := e.Proc.Breakpoints.Contains(retAddr)
	if !alreadyPresent {
		if _, err := e.Proc.Breakpoints.Insert(retAddr, "", "", 0); err != nil {
			return Stopped{}, fmt.Errorf("stepengine: step out: %w", err)
		}
		defer e.Proc.Breakpoints.Remove(retAddr)
	}

	for {
		stopped, err := e.Continue()
		if err != nil || stopped.Exited {
			return stopped, err
		}
		pc, err := e.Proc.GetPC()
		if err != nil {
			return Stopped{}, err
		}
		if pc != retAddr {
			// A different breakpoint fired first; report it.
			return stopped, nil
		}
		newCFA, err := e.currentCFA()
		if err != nil {
			return Stopped{}, err
		}
		if newCFA > cfa {
			// Returned to a shallower frame: done. A deeper
			// recursive call hitting the same return address would
			// have newCFA <= cfa, so keep going in that case.
			return stopped, nil
		}
	}
}

// StepOver implements step_over exactly as spec.md §4.5 and
// minidbg.cpp's step_over describe it: breakpoint every line-table
// address in the current function's range other than the current
// line's, plus the caller's return address, then run a single
// continue. Every reachable next statement is already breakpointed
// before resuming, so whichever one executes first stops the
// debuggee; no frame-depth tracking is needed, and a call on the
// current line runs to completion because its interior addresses were
// never breakpointed. Recursion is handled the same way step_out
// handles it: existing (user) breakpoints inside the range are left
// alone and only the addresses this call installed are removed after.
func (e *Engine) StepOver() (Stopped, error) {
	pc, err := e.Proc.GetPC()
	if err != nil {
		return Stopped{}, err
	}
	fn, err := e.Info.FunctionFromPC(pc)
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step over: %w", err)
	}
	curLine, err := e.Info.LineEntryFromPC(pc)
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step over: %w", err)
	}

	cfa, err := e.currentCFA()
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step over: %w", err)
	}
	retAddr, err := e.Proc.ReadWord(cfa - proc.WordSize)
	if err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step over: reading return address: %w", err)
	}

	var installed []uint64
	install := func(addr uint64) error {
		if e.Proc.Breakpoints.Contains(addr) {
			return nil
		}
		if _, err := e.Proc.Breakpoints.Insert(addr, "", "", 0); err != nil {
			return err
		}
		installed = append(installed, addr)
		return nil
	}
	defer func() {
		for _, addr := range installed {
			e.Proc.Breakpoints.Remove(addr)
		}
	}()

	for _, line := range e.Info.LineEntriesInRange(fn.LowPC, fn.HighPC) {
		if line.Address == curLine.Address {
			continue
		}
		if err := install(line.Address); err != nil {
			return Stopped{}, fmt.Errorf("stepengine: step over: %w", err)
		}
	}
	if err := install(retAddr); err != nil {
		return Stopped{}, fmt.Errorf("stepengine: step over: %w", err)
	}

	return e.Continue()
}
