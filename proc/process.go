package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	sys "golang.org/x/sys/unix"

	"github.com/godbg/godbg/dbgerr"
	"github.com/godbg/godbg/logflags"
)

// ThreadExitedErr is returned by raw ptrace wrappers when the target
// thread has already exited out from under them.
var ThreadExitedErr = errors.New("thread has exited")

// ProcessExitedError indicates the debuggee has exited, carrying its exit
// status.
type ProcessExitedError struct {
	Pid    int
	Status int
}

func (e ProcessExitedError) Error() string {
	return fmt.Sprintf("process %d has exited with status %d", e.Pid, e.Status)
}

// TrapCause distinguishes the two reasons a SIGTRAP delivery can stop the
// debuggee (spec.md §4.1 StopInfo).
type TrapCause int

const (
	TrapUnknown TrapCause = iota
	// TrapBreakpoint means the debuggee executed a software breakpoint's
	// trap instruction; the PC now points one byte past it.
	TrapBreakpoint
	// TrapSingleStep means a single-step request completed normally.
	TrapSingleStep
)

// StopInfo is what TraceeControl.wait_for_stop returns: the signal that
// stopped the debuggee and, for SIGTRAP, which of the two trap causes
// applies. TraceeControl does not correct the PC for TrapBreakpoint;
// StepEngine does (spec.md §4.1, §4.5).
type StopInfo struct {
	Exited     bool
	ExitStatus int
	Signal     syscall.Signal
	Trap       TrapCause
}

// Process is TraceeControl: it owns the debuggee's pid and every
// primitive operation that touches it through ptrace(2). The debuggee is
// assumed single-threaded (spec.md Non-goals), so there is no separate
// Thread type distinct from Process.
type Process struct {
	Pid int

	// Breakpoints is the BreakpointManager for this debuggee, created
	// right after the Process is allocated so it can be wired to the
	// Process itself as its memoryReadWriter.
	Breakpoints *BreakpointManager

	exited     bool
	exitStatus int

	comm string

	singleStepping bool // true for the resume that is currently outstanding

	ptraceChan     chan func()
	ptraceDoneChan chan interface{}
}

// newProcess allocates a Process and starts the dedicated ptrace-issuing
// goroutine every operation below is funneled through (ptrace(2) requires
// every call against a tracee to originate from the thread that attached
// to it).
func newProcess(pid int) *Process {
	dbp := &Process{
		Pid:            pid,
		ptraceChan:     make(chan func()),
		ptraceDoneChan: make(chan interface{}),
	}
	dbp.Breakpoints = NewBreakpointManager(pid, dbp)
	go dbp.handlePtraceFuncs()
	return dbp
}

func (dbp *Process) handlePtraceFuncs() {
	runtime.LockOSThread()
	for fn := range dbp.ptraceChan {
		fn()
		dbp.ptraceDoneChan <- nil
	}
}

func (dbp *Process) execPtraceFunc(fn func()) {
	dbp.ptraceChan <- fn
	<-dbp.ptraceDoneChan
}

// Launch implements TraceeControl.attach_on_fork followed by exec: it
// starts cmd with PTRACE_TRACEME armed in the child before exec (the Go
// runtime issues PTRACE_TRACEME for us via SysProcAttr.Ptrace, the same
// device proc/proc_linux.go's Launch and dedebugger's RunTarget use), then
// waits for the initial post-exec SIGTRAP.
func Launch(cmd []string, dir string) (*Process, error) {
	if len(cmd) == 0 {
		return nil, errors.New("proc: empty command")
	}
	var proc *exec.Cmd
	var err error
	dbp := newProcess(0)
	dbp.execPtraceFunc(func() {
		proc = exec.Command(cmd[0])
		proc.Args = cmd
		proc.Dir = dir
		proc.Stdout = os.Stdout
		proc.Stderr = os.Stderr
		proc.Stdin = os.Stdin
		proc.SysProcAttr = &syscall.SysProcAttr{Ptrace: true}
		err = proc.Start()
	})
	if err != nil {
		return nil, fmt.Errorf("proc: exec failed: %w", err)
	}
	dbp.Pid = proc.Process.Pid
	dbp.Breakpoints = NewBreakpointManager(dbp.Pid, dbp)
	if _, _, err := dbp.wait(dbp.Pid, 0); err != nil {
		return nil, fmt.Errorf("proc: waiting for initial stop: %w", err)
	}
	if logflags.Proc() {
		logflags.ProcLogger().Debugf("launched pid %d: %v", dbp.Pid, cmd)
	}
	return dbp, nil
}

// Attach starts tracing an already-running process, stopping it
// immediately with SIGSTOP-equivalent semantics via PTRACE_ATTACH.
func Attach(pid int) (*Process, error) {
	dbp := newProcess(pid)
	var err error
	dbp.execPtraceFunc(func() { err = sys.PtraceAttach(pid) })
	if err != nil {
		return nil, dbgerr.TraceOpFailed{Op: fmt.Sprintf("attach to %d", pid), Err: err}
	}
	if _, _, err := dbp.wait(pid, 0); err != nil {
		return nil, fmt.Errorf("proc: waiting for attach stop: %w", err)
	}
	if logflags.Proc() {
		logflags.ProcLogger().Debugf("attached to pid %d", pid)
	}
	return dbp, nil
}

// Detach stops tracing the debuggee, optionally killing it first.
func (dbp *Process) Detach(kill bool) error {
	if kill {
		return dbp.Kill()
	}
	var err error
	dbp.execPtraceFunc(func() { err = sys.PtraceDetach(dbp.Pid) })
	if err != nil {
		return dbgerr.TraceOpFailed{Op: "detach", Err: err}
	}
	return nil
}

// Kill terminates the debuggee.
func (dbp *Process) Kill() error {
	if dbp.exited {
		return nil
	}
	if err := sys.Kill(dbp.Pid, sys.SIGKILL); err != nil {
		return fmt.Errorf("proc: kill: %w", err)
	}
	_, _, err := dbp.wait(dbp.Pid, 0)
	dbp.postExit(-1)
	return err
}

// Exited reports whether the debuggee has exited.
func (dbp *Process) Exited() bool {
	return dbp.exited
}

func (dbp *Process) postExit(status int) {
	dbp.exited = true
	dbp.exitStatus = status
}

// Continue resumes the debuggee without delivering a signal. It does not
// wait for the debuggee to stop again; callers (StepEngine) call
// WaitForStop afterward (spec.md §4.1, §5).
func (dbp *Process) Continue() error {
	dbp.singleStepping = false
	return dbp.resumeWithSig(0)
}

// SingleStep requests execution of exactly one machine instruction. Like
// Continue, it does not itself wait.
func (dbp *Process) SingleStep() error {
	dbp.singleStepping = true
	return ptraceCont0(dbp, ptraceSingleStep)
}

func (dbp *Process) resumeWithSig(sig int) error {
	var err error
	dbp.execPtraceFunc(func() { err = ptraceCont(dbp.Pid, sig) })
	if err != nil {
		return dbgerr.TraceOpFailed{Op: "resume", Err: err}
	}
	return nil
}

func ptraceCont0(dbp *Process, fn func(int) error) error {
	var err error
	dbp.execPtraceFunc(func() { err = fn(dbp.Pid) })
	if err != nil {
		return dbgerr.TraceOpFailed{Op: "single step", Err: err}
	}
	return nil
}

// WaitForStop blocks until the kernel reports the debuggee stopped or
// exited (spec.md §4.1 wait_for_stop). It performs no PC correction: that
// is StepEngine's responsibility for TrapBreakpoint stops.
func (dbp *Process) WaitForStop() (StopInfo, error) {
	wpid, status, err := dbp.wait(dbp.Pid, 0)
	if err != nil {
		return StopInfo{}, fmt.Errorf("proc: wait: %w", err)
	}
	if status == nil || status.Exited() {
		rs := 0
		if status != nil {
			rs = status.ExitStatus()
		}
		dbp.postExit(rs)
		return StopInfo{Exited: true, ExitStatus: rs}, nil
	}
	if status.Signaled() {
		sig := status.Signal()
		dbp.postExit(128 + int(sig))
		return StopInfo{Exited: true, ExitStatus: 128 + int(sig), Signal: sig}, nil
	}
	if wpid != dbp.Pid {
		return StopInfo{}, fmt.Errorf("proc: unexpected wait target %d", wpid)
	}
	sig := status.StopSignal()
	info := StopInfo{Signal: sig}
	if sig == sys.SIGTRAP {
		if dbp.singleStepping {
			info.Trap = TrapSingleStep
		} else {
			info.Trap = TrapBreakpoint
		}
	}
	return info, nil
}

// GetSignalInfo polls wait4 without blocking (spec.md §4.1
// get_signal_info). It reports the stop signal of a state change that
// WaitForStop has not yet collected, and collects it in doing so; once
// WaitForStop has collected the current stop, it returns a zero
// StopInfo. It does not recover the reason for a stop already reported.
func (dbp *Process) GetSignalInfo() (StopInfo, error) {
	var status sys.WaitStatus
	wpid, err := sys.Wait4(dbp.Pid, &status, sys.WNOHANG, nil)
	if err != nil {
		return StopInfo{}, fmt.Errorf("proc: signal info: %w", err)
	}
	if wpid == 0 {
		return StopInfo{}, nil
	}
	return StopInfo{Signal: status.StopSignal()}, nil
}

// GetPC returns the current program counter.
func (dbp *Process) GetPC() (uint64, error) {
	regs, err := dbp.Registers()
	if err != nil {
		return 0, err
	}
	return regs.PC(), nil
}

// SetPC sets the program counter, writing the full register set back to
// the debuggee.
func (dbp *Process) SetPC(pc uint64) error {
	regs, err := dbp.Registers()
	if err != nil {
		return err
	}
	regs.SetPC(pc)
	return dbp.SetRegisters(regs)
}

// ReadRegister reads a single named general-purpose register.
func (dbp *Process) ReadRegister(name string) (uint64, error) {
	regs, err := dbp.Registers()
	if err != nil {
		return 0, err
	}
	return regs.ByName(name)
}

// WriteRegister writes a single named general-purpose register.
func (dbp *Process) WriteRegister(name string, val uint64) error {
	regs, err := dbp.Registers()
	if err != nil {
		return err
	}
	if err := regs.SetByName(name, val); err != nil {
		return err
	}
	return dbp.SetRegisters(regs)
}

// Registers reads the full register set from the debuggee.
func (dbp *Process) Registers() (*Registers, error) {
	var raw sys.PtraceRegs
	var err error
	dbp.execPtraceFunc(func() { err = ptraceGetRegs(dbp.Pid, &raw) })
	if err != nil {
		return nil, dbgerr.TraceOpFailed{Op: "get regs", Err: err}
	}
	return &Registers{regs: &raw}, nil
}

// SetRegisters writes a full register set back to the debuggee.
func (dbp *Process) SetRegisters(r *Registers) error {
	var err error
	dbp.execPtraceFunc(func() { err = ptraceSetRegs(dbp.Pid, r.regs) })
	if err != nil {
		return dbgerr.TraceOpFailed{Op: "set regs", Err: err}
	}
	return nil
}

// ReadWord reads one 8-byte word at addr.
func (dbp *Process) ReadWord(addr uint64) (uint64, error) {
	data, err := dbp.readMemory(uintptr(addr), WordSize)
	if err != nil {
		return 0, err
	}
	return leUint64(data), nil
}

// WriteWord writes one 8-byte word at addr.
func (dbp *Process) WriteWord(addr uint64, val uint64) error {
	data := make([]byte, WordSize)
	putLeUint64(data, val)
	_, err := dbp.writeMemory(uintptr(addr), data)
	return err
}

func (dbp *Process) readMemory(addr uintptr, size int) ([]byte, error) {
	if dbp.exited {
		return nil, ProcessExitedError{Pid: dbp.Pid}
	}
	data := make([]byte, size)
	if size == 0 {
		return data, nil
	}
	var err error
	dbp.execPtraceFunc(func() { _, err = ptracePeekData(dbp.Pid, addr, data) })
	if err != nil {
		return nil, dbgerr.TraceOpFailed{Op: fmt.Sprintf("read memory at %#x", addr), Err: err}
	}
	return data, nil
}

func (dbp *Process) writeMemory(addr uintptr, data []byte) (int, error) {
	if dbp.exited {
		return 0, ProcessExitedError{Pid: dbp.Pid}
	}
	if len(data) == 0 {
		return 0, nil
	}
	var n int
	var err error
	dbp.execPtraceFunc(func() { n, err = ptracePokeData(dbp.Pid, addr, data) })
	if err != nil {
		return 0, dbgerr.TraceOpFailed{Op: fmt.Sprintf("write memory at %#x", addr), Err: err}
	}
	return n, nil
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func putLeUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
