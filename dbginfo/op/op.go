// Package op evaluates DWARF location expressions, the small stack
// machine DWARF uses to describe where a variable lives (spec.md §4.4
// ExprContext). It is adapted from delve's pkg/dwarf/op, trimmed to the
// opcode subset a classical frame-pointer debugger needs: address and
// frame-base constants, the call-frame CFA, register locations, and
// composite pieces. CFI-derived opcodes are not supported (spec.md §9).
package op

import (
	"bytes"
	"fmt"

	"github.com/godbg/godbg/dbginfo/leb128"
)

// Opcode is a single DWARF stack-program instruction.
type Opcode byte

const (
	DW_OP_addr           Opcode = 0x03
	DW_OP_consts         Opcode = 0x11
	DW_OP_plus           Opcode = 0x22
	DW_OP_plus_uconst    Opcode = 0x23
	DW_OP_reg0           Opcode = 0x50
	DW_OP_reg31          Opcode = 0x6f
	DW_OP_regx           Opcode = 0x90
	DW_OP_fbreg          Opcode = 0x91
	DW_OP_piece          Opcode = 0x93
	DW_OP_call_frame_cfa Opcode = 0x9c
)

// Registers is the subset of RegisterFile a location-expression
// evaluation needs: the call-frame address and the function's frame
// base, plus resolving an arbitrary DWARF register number to its value
// (spec.md §4.4).
type Registers interface {
	CFA() int64
	FrameBase() int64
	ByDwarfNum(num uint64) (uint64, error)
}

// Piece is one fragment of a composite location: either a register
// (IsRegister true, RegNum set) or a memory range (Addr, Size set).
type Piece struct {
	Size       int
	Addr       int64
	RegNum     uint64
	IsRegister bool
}

// Execute evaluates a DWARF location expression. Expressions that
// resolve to a memory address return that address with a nil Piece
// slice; expressions built from DW_OP_regN/DW_OP_regx/DW_OP_piece return
// the decomposed Pieces instead (spec.md §4.4, mirroring delve's
// ExecuteStackProgram).
func Execute(regs Registers, instructions []byte, ptrSize int) (int64, []Piece, error) {
	buf := bytes.NewReader(instructions)
	var stack []int64
	var pieces []Piece
	inReg := false

	for {
		opByte, err := buf.ReadByte()
		if err != nil {
			break
		}
		opcode := Opcode(opByte)
		if inReg && opcode != DW_OP_piece {
			break
		}

		switch {
		case opcode == DW_OP_addr:
			raw := make([]byte, ptrSize)
			if _, err := buf.Read(raw); err != nil {
				return 0, nil, fmt.Errorf("op: truncated DW_OP_addr: %w", err)
			}
			stack = append(stack, int64(readUint(raw)))

		case opcode == DW_OP_consts:
			n, err := leb128.DecodeSigned(buf)
			if err != nil {
				return 0, nil, fmt.Errorf("op: DW_OP_consts: %w", err)
			}
			stack = append(stack, n)

		case opcode == DW_OP_plus:
			if len(stack) < 2 {
				return 0, nil, fmt.Errorf("op: DW_OP_plus: stack underflow")
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = append(stack[:len(stack)-2], a+b)

		case opcode == DW_OP_plus_uconst:
			n, err := leb128.DecodeUnsigned(buf)
			if err != nil {
				return 0, nil, fmt.Errorf("op: DW_OP_plus_uconst: %w", err)
			}
			if len(stack) == 0 {
				return 0, nil, fmt.Errorf("op: DW_OP_plus_uconst: stack underflow")
			}
			stack[len(stack)-1] += int64(n)

		case opcode == DW_OP_fbreg:
			n, err := leb128.DecodeSigned(buf)
			if err != nil {
				return 0, nil, fmt.Errorf("op: DW_OP_fbreg: %w", err)
			}
			stack = append(stack, regs.FrameBase()+n)

		case opcode == DW_OP_call_frame_cfa:
			stack = append(stack, regs.CFA())

		case opcode == DW_OP_regx:
			n, err := leb128.DecodeUnsigned(buf)
			if err != nil {
				return 0, nil, fmt.Errorf("op: DW_OP_regx: %w", err)
			}
			inReg = true
			pieces = append(pieces, Piece{IsRegister: true, RegNum: n})

		case opcode >= DW_OP_reg0 && opcode <= DW_OP_reg31:
			inReg = true
			pieces = append(pieces, Piece{IsRegister: true, RegNum: uint64(opcode - DW_OP_reg0)})

		case opcode == DW_OP_piece:
			sz, err := leb128.DecodeUnsigned(buf)
			if err != nil {
				return 0, nil, fmt.Errorf("op: DW_OP_piece: %w", err)
			}
			if inReg {
				inReg = false
				pieces[len(pieces)-1].Size = int(sz)
				continue
			}
			if len(stack) == 0 {
				return 0, nil, fmt.Errorf("op: DW_OP_piece: stack underflow")
			}
			addr := stack[len(stack)-1]
			pieces = append(pieces, Piece{Size: int(sz), Addr: addr})
			stack = stack[:0]

		default:
			return 0, nil, fmt.Errorf("op: unsupported opcode %#x", byte(opcode))
		}
	}

	if pieces != nil {
		return 0, pieces, nil
	}
	if len(stack) == 0 {
		return 0, nil, fmt.Errorf("op: empty expression result")
	}
	return stack[len(stack)-1], nil, nil
}

func readUint(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
