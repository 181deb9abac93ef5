package op

import "testing"

type fakeRegisters struct {
	cfa       int64
	frameBase int64
	regs      map[uint64]uint64
}

func (f fakeRegisters) CFA() int64       { return f.cfa }
func (f fakeRegisters) FrameBase() int64 { return f.frameBase }
func (f fakeRegisters) ByDwarfNum(num uint64) (uint64, error) {
	return f.regs[num], nil
}

func TestExecuteCallFrameCFA(t *testing.T) {
	regs := fakeRegisters{cfa: 0x2000}
	addr, pieces, err := Execute(regs, []byte{byte(DW_OP_call_frame_cfa)}, 8)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pieces != nil {
		t.Fatalf("expected no pieces, got %v", pieces)
	}
	if addr != 0x2000 {
		t.Fatalf("expected 0x2000, got %#x", addr)
	}
}

func TestExecuteFbregPlusOffset(t *testing.T) {
	regs := fakeRegisters{frameBase: 0x1000}
	// DW_OP_fbreg -16 (SLEB128 encoding of -16 is 0x70)
	addr, _, err := Execute(regs, []byte{byte(DW_OP_fbreg), 0x70}, 8)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if addr != 0x1000-16 {
		t.Fatalf("expected %#x, got %#x", 0x1000-16, addr)
	}
}

func TestExecuteRegisterPiece(t *testing.T) {
	regs := fakeRegisters{}
	instr := []byte{byte(DW_OP_reg0 + 3)} // DW_OP_reg3 (rbx)
	_, pieces, err := Execute(regs, instr, 8)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(pieces) != 1 || !pieces[0].IsRegister || pieces[0].RegNum != 3 {
		t.Fatalf("expected one register piece for reg 3, got %+v", pieces)
	}
}

func TestExecuteEmptyExpressionErrors(t *testing.T) {
	regs := fakeRegisters{}
	if _, _, err := Execute(regs, nil, 8); err == nil {
		t.Fatal("expected error for an empty expression")
	}
}
