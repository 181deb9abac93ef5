package dbginfo

import "testing"

func TestMatchesFile(t *testing.T) {
	cases := []struct {
		full, want string
		match      bool
	}{
		{"/home/user/proj/main.go", "main.go", true},
		{"main.go", "main.go", true},
		{"/home/user/proj/main.go", "proj/main.go", true},
		{"/home/user/proj/other.go", "main.go", false},
		{"mainx.go", "main.go", false},
	}
	for _, c := range cases {
		if got := matchesFile(c.full, c.want); got != c.match {
			t.Errorf("matchesFile(%q, %q) = %v, want %v", c.full, c.want, got, c.match)
		}
	}
}

func TestLookupSymbolsMatchesByExactName(t *testing.T) {
	di := &DebugInfo{symbols: []Symbol{
		{Name: "computeSum", Value: 0x1000, Kind: "func"},
		{Name: "main.computeSum", Value: 0x2000, Kind: "func"},
	}}
	if got := di.LookupSymbols("computeSum"); len(got) != 1 || got[0].Value != 0x1000 {
		t.Errorf("LookupSymbols(%q) = %+v, want exactly the computeSum entry", "computeSum", got)
	}
	if got := di.LookupSymbols("Sum"); len(got) != 0 {
		t.Errorf("LookupSymbols(%q) = %+v, want no substring matches", "Sum", got)
	}
}

func TestFunctionContainsPC(t *testing.T) {
	fn := &Function{LowPC: 0x1000, HighPC: 0x1100}
	if !fn.ContainsPC(0x1000) {
		t.Error("expected LowPC to be contained")
	}
	if fn.ContainsPC(0x1100) {
		t.Error("expected HighPC to be exclusive")
	}
	if fn.ContainsPC(0x0fff) {
		t.Error("expected address before LowPC to be excluded")
	}
}

func newFixtureDebugInfo() *DebugInfo {
	di := &DebugInfo{
		functions: []*Function{
			{Name: "main.main", LowPC: 0x1000, HighPC: 0x1050},
			{Name: "main.helper", LowPC: 0x1050, HighPC: 0x1090},
		},
		lines: []LineEntry{
			{Address: 0x1000, File: "main.go", Line: 10, IsStmt: true},
			{Address: 0x1010, File: "main.go", Line: 11, IsStmt: true},
			{Address: 0x1020, File: "main.go", Line: 12, IsStmt: true},
			{Address: 0x1050, File: "main.go", Line: 20, IsStmt: true},
			{Address: 0x1060, File: "main.go", Line: 21, IsStmt: true},
			{Address: 0x1090, Line: 0, EndSequence: true},
		},
	}
	return di
}

func TestFunctionFromPC(t *testing.T) {
	di := newFixtureDebugInfo()
	fn, err := di.FunctionFromPC(0x1015)
	if err != nil {
		t.Fatalf("FunctionFromPC: %v", err)
	}
	if fn.Name != "main.main" {
		t.Fatalf("expected main.main, got %s", fn.Name)
	}

	if _, err := di.FunctionFromPC(0x5000); err == nil {
		t.Fatal("expected DebugInfoNotFound for an address outside every function")
	}
}

func TestLineEntryFromPC(t *testing.T) {
	di := newFixtureDebugInfo()
	entry, err := di.LineEntryFromPC(0x1015)
	if err != nil {
		t.Fatalf("LineEntryFromPC: %v", err)
	}
	if entry.Line != 11 {
		t.Fatalf("expected line 11, got %d", entry.Line)
	}

	if _, err := di.LineEntryFromPC(0x1090); err == nil {
		t.Fatal("expected no line entry at the end-of-sequence address")
	}
}

func TestNextLineEntry(t *testing.T) {
	di := newFixtureDebugInfo()
	cur := LineEntry{Address: 0x1010}
	next, err := di.NextLineEntry(cur)
	if err != nil {
		t.Fatalf("NextLineEntry: %v", err)
	}
	if next.Address != 0x1020 {
		t.Fatalf("expected next address 0x1020, got %#x", next.Address)
	}
}

func TestFunctionEntryAfterPrologue(t *testing.T) {
	di := newFixtureDebugInfo()
	addr, err := di.FunctionEntryAfterPrologue(di.functions[0])
	if err != nil {
		t.Fatalf("FunctionEntryAfterPrologue: %v", err)
	}
	if addr != 0x1010 {
		t.Fatalf("expected first post-prologue address 0x1010, got %#x", addr)
	}
}

func TestStatementAddress(t *testing.T) {
	di := newFixtureDebugInfo()
	addr, err := di.StatementAddress("main.go", 12)
	if err != nil {
		t.Fatalf("StatementAddress: %v", err)
	}
	if addr != 0x1020 {
		t.Fatalf("expected address 0x1020, got %#x", addr)
	}

	if _, err := di.StatementAddress("main.go", 999); err == nil {
		t.Fatal("expected error for a line with no statement")
	}
}
