package dbginfo

import (
	"fmt"

	"github.com/godbg/godbg/dbgerr"
	"github.com/godbg/godbg/dbginfo/op"
	"github.com/godbg/godbg/proc"
)

// exprContext adapts a proc.Registers snapshot into the op.Registers
// interface the location-expression evaluator needs (spec.md §4.4
// ExprContext), resolving a function's frame base once up front since
// DW_AT_frame_base expressions never themselves reference DW_OP_fbreg.
type exprContext struct {
	regs      *proc.Registers
	frameBase int64
}

func newExprContext(regs *proc.Registers, fn *Function) (*exprContext, error) {
	ec := &exprContext{regs: regs}
	if fn != nil && len(fn.FrameBase) > 0 {
		fb, _, err := op.Execute(ec, fn.FrameBase, proc.WordSize)
		if err != nil {
			return nil, fmt.Errorf("dbginfo: evaluating frame base for %s: %w", fn.Name, err)
		}
		ec.frameBase = fb
	}
	return ec, nil
}

func (ec *exprContext) CFA() int64       { return int64(ec.regs.CFA()) }
func (ec *exprContext) FrameBase() int64 { return ec.frameBase }

func (ec *exprContext) ByDwarfNum(num uint64) (uint64, error) {
	return ec.regs.ByDwarfNum(num)
}

// Location is where a variable's value lives once its DWARF location
// expression has been evaluated: either a memory address or a live
// register (spec.md §4.4: "returns either an address or a register
// index").
type Location struct {
	IsRegister bool
	Address    uint64
	RegNum     uint64
}

// LocationOf evaluates v's location expression against the given
// register snapshot. A location built from a single DW_OP_regN/regx
// opcode resolves to a register (the `variables` command reads the
// register's live value); anything else that decomposes into pieces is
// a composite location this debugger does not reconstruct, and returns
// dbgerr.UnsupportedVarLocation (spec.md §7: "neither exprloc nor
// register").
func (di *DebugInfo) LocationOf(v Variable, fn *Function, regs *proc.Registers) (Location, error) {
	ec, err := newExprContext(regs, fn)
	if err != nil {
		return Location{}, err
	}
	addr, pieces, err := op.Execute(ec, v.Location, proc.WordSize)
	if err != nil {
		return Location{}, fmt.Errorf("dbginfo: evaluating location for %s: %w", v.Name, err)
	}
	if len(pieces) == 1 && pieces[0].IsRegister {
		return Location{IsRegister: true, RegNum: pieces[0].RegNum}, nil
	}
	if pieces != nil {
		return Location{}, dbgerr.UnsupportedVarLocation{Variable: v.Name}
	}
	return Location{Address: uint64(addr)}, nil
}
