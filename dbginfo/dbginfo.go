// Package dbginfo resolves DWARF debug information and ELF symbols for a
// debuggee binary (spec.md §4.3 "DebugInfo" component). It is grounded on
// delve's pkg/dwarf subpackages but, in keeping with the modern delve
// tree's own choice, reads the data through the standard library's
// debug/elf and debug/dwarf packages rather than delve's legacy
// golang.org/x/debug fork.
package dbginfo

import (
	"debug/dwarf"
	"debug/elf"
	"fmt"
	"io"
	"sort"

	"github.com/godbg/godbg/dbgerr"
	"github.com/godbg/godbg/logflags"
)

// Function describes one DWARF subprogram.
type Function struct {
	Name      string
	LowPC     uint64
	HighPC    uint64
	DeclFile  string
	DeclLine  int
	FrameBase []byte // DW_AT_frame_base location expression
}

func (fn *Function) ContainsPC(pc uint64) bool {
	return pc >= fn.LowPC && pc < fn.HighPC
}

// LineEntry is one row of a compilation unit's line number program.
type LineEntry struct {
	Address     uint64
	File        string
	Line        int
	IsStmt      bool
	EndSequence bool
}

// Variable describes a DWARF formal parameter or local variable.
type Variable struct {
	Name     string
	TypeName string
	Location []byte // DW_AT_location expression
}

// Symbol is an ELF symbol table entry exposed for address/name lookup.
type Symbol struct {
	Name  string
	Value uint64
	Size  uint64
	Kind  string // one of "notype", "object", "func", "section", "file"
}

// symbolKind maps an ELF symbol type to the kind vocabulary the
// `symbol` REPL command prints, the way the original's `to_string(s.type)`
// names an entry's ELF32_ST_TYPE.
func symbolKind(info elf.SymType) string {
	switch info {
	case elf.STT_OBJECT:
		return "object"
	case elf.STT_FUNC:
		return "func"
	case elf.STT_SECTION:
		return "section"
	case elf.STT_FILE:
		return "file"
	default:
		return "notype"
	}
}

// DebugInfo is a loaded binary's combined ELF+DWARF view.
type DebugInfo struct {
	elfFile *elf.File
	dwData  *dwarf.Data

	functions []*Function
	lines     []LineEntry // sorted by Address, across all compile units
	symbols   []Symbol
}

// New opens path, an ELF executable, and loads its DWARF debug
// information. It returns dbgerr.DebugInfoNotFound if the binary carries
// no .debug_info section (e.g. it was stripped).
func New(path string) (*DebugInfo, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dbginfo: opening %s: %w", path, err)
	}
	dwData, err := f.DWARF()
	if err != nil {
		return nil, dbgerr.DebugInfoNotFound{What: fmt.Sprintf("%s: no DWARF data (%v)", path, err)}
	}

	di := &DebugInfo{elfFile: f, dwData: dwData}
	if err := di.loadFunctions(); err != nil {
		return nil, err
	}
	if err := di.loadLineTables(); err != nil {
		return nil, err
	}
	if err := di.loadSymbols(); err != nil {
		return nil, err
	}
	di.resolveDeclFiles()
	if logflags.DebugInfo() {
		logflags.DebugInfoLogger().Debugf("loaded %d functions, %d line entries, %d symbols from %s",
			len(di.functions), len(di.lines), len(di.symbols), path)
	}
	return di, nil
}

func (di *DebugInfo) loadFunctions() error {
	r := di.dwData.Reader()
	for {
		entry, err := r.Next()
		if err != nil {
			return fmt.Errorf("dbginfo: reading DIEs: %w", err)
		}
		if entry == nil {
			break
		}
		if entry.Tag != dwarf.TagSubprogram {
			continue
		}
		name, _ := entry.Val(dwarf.AttrName).(string)
		if name == "" {
			continue
		}
		low, ok := entry.Val(dwarf.AttrLowpc).(uint64)
		if !ok {
			continue
		}
		high := highpcOf(entry, low)
		declLine, _ := entry.Val(dwarf.AttrDeclLine).(int64)
		frameBase, _ := entry.Val(dwarf.AttrFrameBase).([]byte)

		fn := &Function{
			Name:      name,
			LowPC:     low,
			HighPC:    high,
			DeclLine:  int(declLine),
			FrameBase: frameBase,
		}
		di.functions = append(di.functions, fn)
	}
	sort.Slice(di.functions, func(i, j int) bool { return di.functions[i].LowPC < di.functions[j].LowPC })
	return nil
}

// highpcOf handles both encodings DWARF allows for DW_AT_high_pc: an
// absolute address (older producers) or an offset from low (DWARF4+).
func highpcOf(entry *dwarf.Entry, low uint64) uint64 {
	switch v := entry.Val(dwarf.AttrHighpc).(type) {
	case uint64:
		if v > low {
			return v
		}
		return low + v
	case int64:
		return low + uint64(v)
	default:
		return low
	}
}

func (di *DebugInfo) loadLineTables() error {
	r := di.dwData.Reader()
	for {
		cu, err := r.Next()
		if err != nil {
			return fmt.Errorf("dbginfo: reading compile units: %w", err)
		}
		if cu == nil {
			break
		}
		if cu.Tag != dwarf.TagCompileUnit {
			continue
		}
		lr, err := di.dwData.LineReader(cu)
		if err != nil {
			return fmt.Errorf("dbginfo: line reader: %w", err)
		}
		if lr == nil {
			continue
		}
		var row dwarf.LineEntry
		for {
			if err := lr.Next(&row); err != nil {
				if err == io.EOF {
					break
				}
				return fmt.Errorf("dbginfo: reading line table: %w", err)
			}
			file := ""
			if row.File != nil {
				file = row.File.Name
			}
			di.lines = append(di.lines, LineEntry{
				Address:     row.Address,
				File:        file,
				Line:        row.Line,
				IsStmt:      row.IsStmt,
				EndSequence: row.EndSequence,
			})
		}
		r.SkipChildren()
	}
	sort.Slice(di.lines, func(i, j int) bool { return di.lines[i].Address < di.lines[j].Address })
	return nil
}

// loadSymbols collects entries from both the static and dynamic symbol
// tables, since a binary can carry symbols in either without the other
// being a superset (spec.md §4.4: scan both `.symtab` and `.dynsym`).
// Every symbol kind is kept, not just FUNC/OBJECT, so `symbol` can
// report notype/section/file entries too.
func (di *DebugInfo) loadSymbols() error {
	var all []elf.Symbol
	if syms, err := di.elfFile.Symbols(); err == nil {
		all = append(all, syms...)
	}
	if syms, err := di.elfFile.DynamicSymbols(); err == nil {
		all = append(all, syms...)
	}
	for _, s := range all {
		if s.Name == "" {
			continue
		}
		di.symbols = append(di.symbols, Symbol{
			Name:  s.Name,
			Value: s.Value,
			Size:  s.Size,
			Kind:  symbolKind(elf.ST_TYPE(s.Info)),
		})
	}
	return nil
}

// resolveDeclFiles fills in each Function's DeclFile from the line table,
// since DW_AT_decl_file is an index into a per-CU file table this
// package otherwise has no need to decode.
func (di *DebugInfo) resolveDeclFiles() {
	for _, fn := range di.functions {
		if entry, err := di.LineEntryFromPC(fn.LowPC); err == nil {
			fn.DeclFile = entry.File
		}
	}
}

// FunctionFromPC returns the function containing pc.
func (di *DebugInfo) FunctionFromPC(pc uint64) (*Function, error) {
	for _, fn := range di.functions {
		if fn.ContainsPC(pc) {
			return fn, nil
		}
	}
	return nil, dbgerr.DebugInfoNotFound{What: fmt.Sprintf("function containing pc %#x", pc)}
}

// FunctionByName returns the function named name.
func (di *DebugInfo) FunctionByName(name string) (*Function, error) {
	for _, fn := range di.functions {
		if fn.Name == name {
			return fn, nil
		}
	}
	return nil, dbgerr.DebugInfoNotFound{What: "function " + name}
}

// Functions returns every function this binary's DWARF info describes,
// for building a break-target name completer.
func (di *DebugInfo) Functions() []*Function {
	return di.functions
}

// LineEntryFromPC returns the line table row whose range contains pc:
// the last row with Address <= pc within the same sequence.
func (di *DebugInfo) LineEntryFromPC(pc uint64) (LineEntry, error) {
	idx := sort.Search(len(di.lines), func(i int) bool { return di.lines[i].Address > pc })
	if idx == 0 {
		return LineEntry{}, dbgerr.DebugInfoNotFound{What: fmt.Sprintf("line entry for pc %#x", pc)}
	}
	entry := di.lines[idx-1]
	if entry.EndSequence {
		return LineEntry{}, dbgerr.DebugInfoNotFound{What: fmt.Sprintf("line entry for pc %#x", pc)}
	}
	return entry, nil
}

// NextLineEntry returns the line table row immediately after cur's
// address, used by StepEngine to find step-target addresses
// (spec.md §4.4 next_line_entry).
func (di *DebugInfo) NextLineEntry(cur LineEntry) (LineEntry, error) {
	idx := sort.Search(len(di.lines), func(i int) bool { return di.lines[i].Address > cur.Address })
	if idx >= len(di.lines) {
		return LineEntry{}, dbgerr.DebugInfoNotFound{What: "no line entry after " + cur.File}
	}
	return di.lines[idx], nil
}

// FunctionEntryAfterPrologue returns the address of the first statement
// after fn's prologue: the second distinct line-table row within fn's
// range, matching the common "skip the first row, that's the opening
// brace" heuristic (spec.md §4.4 function_entry_after_prologue).
func (di *DebugInfo) FunctionEntryAfterPrologue(fn *Function) (uint64, error) {
	first := sort.Search(len(di.lines), func(i int) bool { return di.lines[i].Address >= fn.LowPC })
	if first >= len(di.lines) || di.lines[first].Address >= fn.HighPC {
		return fn.LowPC, nil
	}
	declLine := di.lines[first].Line
	for i := first; i < len(di.lines) && di.lines[i].Address < fn.HighPC; i++ {
		if di.lines[i].Line != declLine && di.lines[i].IsStmt {
			return di.lines[i].Address, nil
		}
	}
	return di.lines[first].Address, nil
}

// LineEntriesInRange returns every line table row with an address in
// [low, high), used by StepEngine's step_over to enumerate every
// address it must breakpoint before continuing (spec.md §4.5).
func (di *DebugInfo) LineEntriesInRange(low, high uint64) []LineEntry {
	first := sort.Search(len(di.lines), func(i int) bool { return di.lines[i].Address >= low })
	var out []LineEntry
	for i := first; i < len(di.lines) && di.lines[i].Address < high; i++ {
		out = append(out, di.lines[i])
	}
	return out
}

// StatementAddress returns the address of the first statement at
// file:line, used to resolve a `break file:line` target
// (spec.md §4.4 statement_address).
func (di *DebugInfo) StatementAddress(file string, line int) (uint64, error) {
	for _, l := range di.lines {
		if l.IsStmt && l.Line == line && matchesFile(l.File, file) {
			return l.Address, nil
		}
	}
	return 0, dbgerr.DebugInfoNotFound{What: fmt.Sprintf("%s:%d", file, line)}
}

func matchesFile(full, want string) bool {
	if full == want {
		return true
	}
	n := len(want)
	return len(full) > n && full[len(full)-n-1] == '/' && full[len(full)-n:] == want
}

// LookupSymbols returns every symbol matching name exactly (spec.md
// §4.4: "collect entries matching by exact name", the original's
// `sym.get_name() == name`).
func (di *DebugInfo) LookupSymbols(name string) []Symbol {
	var out []Symbol
	for _, s := range di.symbols {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// VariablesIn returns the formal parameters and local variables declared
// directly inside fn (spec.md §4.4 variables_in).
func (di *DebugInfo) VariablesIn(fn *Function) ([]Variable, error) {
	r := di.dwData.Reader()
	r.Seek(0)
	var target *dwarf.Entry
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("dbginfo: reading DIEs: %w", err)
		}
		if entry == nil {
			break
		}
		if entry.Tag == dwarf.TagSubprogram {
			if name, _ := entry.Val(dwarf.AttrName).(string); name == fn.Name {
				target = entry
				break
			}
		}
	}
	if target == nil {
		return nil, dbgerr.DebugInfoNotFound{What: "DIE for function " + fn.Name}
	}

	var vars []Variable
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("dbginfo: reading DIEs: %w", err)
		}
		if entry == nil || entry.Tag == 0 {
			break
		}
		if entry.Tag != dwarf.TagFormalParameter && entry.Tag != dwarf.TagVariable {
			r.SkipChildren()
			continue
		}
		name, _ := entry.Val(dwarf.AttrName).(string)
		if name == "" {
			continue
		}
		loc, _ := entry.Val(dwarf.AttrLocation).([]byte)
		typeName := typeNameOf(di.dwData, entry)
		vars = append(vars, Variable{Name: name, TypeName: typeName, Location: loc})
	}
	return vars, nil
}

func typeNameOf(data *dwarf.Data, entry *dwarf.Entry) string {
	off, ok := entry.Val(dwarf.AttrType).(dwarf.Offset)
	if !ok {
		return ""
	}
	typeEntry, err := data.Type(off)
	if err != nil || typeEntry == nil {
		return ""
	}
	return typeEntry.String()
}
