// Package proc implements TraceeControl, Breakpoint and BreakpointManager
// from the design: attaching to a child process via ptrace(2), patching
// software breakpoints into its instruction stream, and exposing register
// and memory access while the child is stopped.
//
// Only Linux/amd64 is supported; the debuggee is assumed single-threaded
// (multi-threaded debuggee support is out of scope) and compiled with
// classical frame pointers (no CFI/.eh_frame unwinding).
package proc
