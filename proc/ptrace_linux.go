package proc

import (
	"syscall"

	sys "golang.org/x/sys/unix"
)

// The raw ptrace(2) wrappers below all run on the thread parked in
// Process.handlePtraceFuncs, via execPtraceFunc: the kernel requires every
// ptrace call against a tracee to come from the thread that attached to
// it. This mirrors proc/ptrace_linux.go in the teacher almost verbatim.

func ptraceCont(tid, sig int) error {
	var err error
	return withErr(&err, func() { err = sys.PtraceCont(tid, sig) })
}

func ptraceSingleStep(tid int) error {
	var err error
	return withErr(&err, func() { err = sys.PtraceSingleStep(tid) })
}

func ptraceGetRegs(tid int, regs *sys.PtraceRegs) error {
	var err error
	return withErr(&err, func() { err = sys.PtraceGetRegs(tid, regs) })
}

func ptraceSetRegs(tid int, regs *sys.PtraceRegs) error {
	var err error
	return withErr(&err, func() { err = sys.PtraceSetRegs(tid, regs) })
}

func ptracePeekData(tid int, addr uintptr, data []byte) (int, error) {
	var n int
	var err error
	withErr(&err, func() { n, err = sys.PtracePeekData(tid, addr, data) })
	return n, err
}

func ptracePokeData(tid int, addr uintptr, data []byte) (int, error) {
	var n int
	var err error
	withErr(&err, func() { n, err = sys.PtracePokeData(tid, addr, data) })
	return n, err
}

func withErr(err *error, fn func()) error {
	fn()
	if *err == sys.ESRCH || *err == syscall.ESRCH {
		return ThreadExitedErr
	}
	return *err
}
