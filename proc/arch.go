package proc

// WordSize is the size in bytes of a general-purpose register / stack slot
// on AMD64, used by StepEngine.StepOut and StepOver to locate the saved
// return address at frame_pointer + WordSize.
const WordSize = 8

// breakpointInstruction is the AMD64 single-byte breakpoint trap opcode
// (INT3), matching the teacher's AMD64Arch.BreakpointInstruction.
const breakpointInstruction = byte(0xCC)
