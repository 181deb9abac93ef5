// Package fault drives spectrum-based fault localization: it runs the
// debuggee once per test vector, records which source lines each run
// executes, partitions vectors into passing and failing by comparing
// captured output against an oracle, and reports the lines that appear
// only in failing runs as suspicious (spec.md §4.7 "FaultLocalizer").
package fault

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"

	"github.com/cosiner/argv"
	lru "github.com/hashicorp/golang-lru"

	"github.com/godbg/godbg/coverage"
	"github.com/godbg/godbg/dbgerr"
	"github.com/godbg/godbg/dbginfo"
	"github.com/godbg/godbg/logflags"
	"github.com/godbg/godbg/proc"
	"github.com/godbg/godbg/stepengine"
)

// Vector is one test case: the argv the debuggee should be launched
// with, and the output it is expected to produce. Vectors files
// alternate an argv line with its expected-output line (spec.md §6).
type Vector struct {
	Argv     []string
	Expected string
}

// ParseVectorsFile reads a vectors file: lines alternate between a
// space-separated argv (split with bash quoting rules, grounded on
// delve's terminal command-line splitting, which also uses
// cosiner/argv) and the expected-output string for that argv, taken
// verbatim. A file with an odd number of lines is malformed: every
// argv line must be paired with an expected-output line.
func ParseVectorsFile(path string) ([]Vector, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, dbgerr.VectorsFileMissing{Path: path, Err: err}
	}
	lines := splitLines(string(data))
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("fault: %s: odd number of lines, expected argv/expected-output pairs", path)
	}
	var vectors []Vector
	for i := 0; i < len(lines); i += 2 {
		argvLine, expected := lines[i], lines[i+1]
		fields, err := argv.Argv(argvLine, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("fault: parsing vectors line %q: %w", argvLine, err)
		}
		var words []string
		if len(fields) > 0 {
			words = fields[0]
		}
		vectors = append(vectors, Vector{Argv: words, Expected: expected})
	}
	return vectors, nil
}

// splitLines splits s on newlines, stripping a trailing carriage
// return from each line, keeping blank lines so line parity with the
// vectors file's alternating format is preserved.
func splitLines(s string) []string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			line := s[start:i]
			start = i + 1
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			out = append(out, line)
		}
	}
	return out
}

// Outcome records one vector's classification and the source lines its
// run touched.
type Outcome struct {
	Vector Vector
	Passed bool
	Lines  map[coverage.Line]bool
	Counts map[coverage.Line]int // per-line hit counts, for the "Conclusion" report (spec.md §6)
	RunErr error                 // non-nil if the debuggee crashed or could not be run
}

// Report is the result of a full localization pass.
type Report struct {
	Outcomes   []Outcome
	Suspicious []coverage.Line
}

// Localizer runs a binary against every vector in a test suite,
// recording coverage and partitioning runs by pass/fail. Every vector
// runs in the same working directory in sequence, the way the original
// minidbg's fault-localization loop never chdirs between iterations;
// the debuggee's oracle file is overwritten run to run.
type Localizer struct {
	BinaryPath     string
	OracleFileName string // e.g. "1.txt", the path the debuggee writes its captured output to

	// Out receives the per-step, per-vector and session-end reports
	// (spec.md §6's exact "Now Execute--", "Conclusion:" and "ANALYZE :"
	// formats). Defaults to os.Stdout.
	Out io.Writer

	// sourceCache holds the split lines of every source file printStep
	// has read so far. Bounded, since a localization run can walk
	// through an unbounded number of compilation units across many
	// vectors; least-recently-used files are evicted rather than kept
	// forever.
	sourceCache *lru.Cache
}

// sourceCacheSize bounds how many distinct source files' contents are
// held in memory at once during a localization run.
const sourceCacheSize = 32

// New returns a Localizer for binaryPath. Debug info is not read here:
// Run loads it once and shares it across every vector's run.
func New(binaryPath, oracleFileName string) *Localizer {
	cache, _ := lru.New(sourceCacheSize)
	return &Localizer{
		BinaryPath:     binaryPath,
		OracleFileName: oracleFileName,
		Out:            os.Stdout,
		sourceCache:    cache,
	}
}

func (l *Localizer) out() io.Writer {
	if l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

// sourceLine returns the 1-indexed line of file, loading and caching the
// whole file the first time it's asked for. A file that cannot be read
// (e.g. the debuggee's source isn't alongside the binary) yields an
// empty line rather than failing the run.
func (l *Localizer) sourceLine(file string, line int) string {
	var lines []string
	if v, ok := l.sourceCache.Get(file); ok {
		lines = v.([]string)
	} else {
		lines = readLines(file)
		l.sourceCache.Add(file, lines)
	}
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// printStep reports a newly entered source line the way spec.md §6's
// per-step format specifies: "Now Execute--<line>Line" followed by the
// source text of that line.
func (l *Localizer) printStep(line coverage.Line) {
	fmt.Fprintf(l.out(), "Now Execute--%dLine\n", line.Line)
	fmt.Fprintln(l.out(), l.sourceLine(line.File, line.Line))
}

// printConclusion reports one vector's per-line hit counts the way
// spec.md §6's end-of-vector format specifies.
func (l *Localizer) printConclusion(counts map[coverage.Line]int) {
	fmt.Fprintln(l.out(), "Conclusion:")
	lines := make([]coverage.Line, 0, len(counts))
	for line := range counts {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].File != lines[j].File {
			return lines[i].File < lines[j].File
		}
		return lines[i].Line < lines[j].Line
	})
	for _, line := range lines {
		fmt.Fprintf(l.out(), "Line %dwas executed for : %d TIMES\n", line.Line, counts[line])
	}
}

// printAnalysis reports the session's suspicious lines the way spec.md
// §6's end-of-session format specifies.
func (l *Localizer) printAnalysis(suspicious []coverage.Line) {
	fmt.Fprintln(l.out(), "ANALYZE :")
	for _, line := range suspicious {
		fmt.Fprintf(l.out(), "Line :%d is likely to be a fault\n", line.Line)
	}
}

// Run executes every vector and returns the localization report.
func (l *Localizer) Run(vectors []Vector) (*Report, error) {
	info, err := dbginfo.New(l.BinaryPath)
	if err != nil {
		return nil, fmt.Errorf("fault: %w", err)
	}

	report := &Report{}
	successSet := map[coverage.Line]bool{}
	failureSet := map[coverage.Line]bool{}

	for _, v := range vectors {
		outcome := l.runOne(info, v)
		report.Outcomes = append(report.Outcomes, outcome)
		dst := successSet
		if !outcome.Passed {
			dst = failureSet
		}
		for line := range outcome.Lines {
			dst[line] = true
		}
		if logflags.Fault() {
			logflags.FaultLogger().Debugf("vector %v passed=%v lines=%d err=%v", v.Argv, outcome.Passed, len(outcome.Lines), outcome.RunErr)
		}
	}

	for line := range failureSet {
		if !successSet[line] {
			report.Suspicious = append(report.Suspicious, line)
		}
	}
	sort.Slice(report.Suspicious, func(i, j int) bool {
		a, b := report.Suspicious[i], report.Suspicious[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})
	l.printAnalysis(report.Suspicious)
	return report, nil
}

// runOne launches the debuggee for a single vector, silently steps it
// to completion recording every source line it executes, and compares
// its captured output against the vector's expected output.
func (l *Localizer) runOne(info *dbginfo.DebugInfo, v Vector) Outcome {
	rec := coverage.New()

	// v.Argv[0] is the debuggee's conventional argv[0]; the process
	// actually exec'd is always l.BinaryPath, matching how the
	// interactive `debug` command builds its argv (cmd/godbg/main.go).
	var extra []string
	if len(v.Argv) > 1 {
		extra = v.Argv[1:]
	}
	cmd := append([]string{l.BinaryPath}, extra...)
	dbp, err := proc.Launch(cmd, ".")
	if err != nil {
		return Outcome{Vector: v, Passed: false, RunErr: err}
	}
	defer dbp.Kill()

	main, err := info.FunctionByName("main")
	if err != nil {
		// Without a resolvable entry point there is nothing to trace;
		// let the debuggee run to completion unobserved.
		if cerr := continueToExit(dbp); cerr != nil {
			return Outcome{Vector: v, Passed: false, RunErr: cerr}
		}
	} else {
		if err := l.traceToExit(dbp, info, main, rec); err != nil {
			counts := rec.Counts()
			if len(counts) > 0 {
				l.printConclusion(counts)
			}
			return Outcome{Vector: v, Passed: false, Lines: rec.Snapshot(), Counts: counts, RunErr: err}
		}
	}

	counts := rec.Counts()
	if len(counts) > 0 {
		l.printConclusion(counts)
	}

	passed, err := l.compareOutput(v)
	if err != nil {
		return Outcome{Vector: v, Passed: false, Lines: rec.Snapshot(), Counts: counts, RunErr: err}
	}
	return Outcome{Vector: v, Passed: passed, Lines: rec.Snapshot(), Counts: counts}
}

func continueToExit(dbp *proc.Process) error {
	if err := dbp.Continue(); err != nil {
		return err
	}
	for {
		info, err := dbp.WaitForStop()
		if err != nil {
			return err
		}
		if info.Exited {
			return nil
		}
		if err := dbp.Continue(); err != nil {
			return err
		}
	}
}

// traceToExit breakpoints the first statement after main's prologue,
// runs there, then single-steps by source line until the debuggee
// exits, recording every line it lands on. A step that resolves to no
// debug info (having left the program's own code, e.g. into the
// runtime's startup or libc) is treated the same as reaching the end of
// traceable execution: the localizer stops recording and lets the
// debuggee run to completion (spec.md §4.7 edge case).
func (l *Localizer) traceToExit(dbp *proc.Process, info *dbginfo.DebugInfo, main *dbginfo.Function, rec *coverage.Recorder) error {
	entry, err := info.FunctionEntryAfterPrologue(main)
	if err != nil {
		return fmt.Errorf("fault: resolving main's entry: %w", err)
	}
	if _, err := dbp.Breakpoints.Insert(entry, main.Name, main.DeclFile, 0); err != nil {
		return fmt.Errorf("fault: setting entry breakpoint: %w", err)
	}

	eng := stepengine.New(dbp, info)
	stopped, err := eng.Continue()
	if err != nil {
		return fmt.Errorf("fault: running to main: %w", err)
	}
	if stopped.Exited {
		return nil
	}
	if stopped.IsCrash() {
		return dbgerr.DebuggeeCrashed{Signal: stopped.Signal.String()}
	}
	var lastPrinted coverage.Line
	hasPrinted := false
	observe := func(line coverage.Line) {
		rec.Observe(line)
		if hasPrinted && lastPrinted == line {
			return
		}
		lastPrinted, hasPrinted = line, true
		l.printStep(line)
	}
	observe(coverage.Line{File: stopped.Line.File, Line: stopped.Line.Line})

	for {
		stopped, err = eng.StepIn()
		if err != nil {
			if err == stepengine.ErrNoDebugInfo {
				return continueToExit(dbp)
			}
			return fmt.Errorf("fault: stepping: %w", err)
		}
		if stopped.Exited {
			return nil
		}
		if stopped.IsCrash() {
			return dbgerr.DebuggeeCrashed{Signal: stopped.Signal.String()}
		}
		observe(coverage.Line{File: stopped.Line.File, Line: stopped.Line.Line})
	}
}

// compareOutput reads only the first line of the debuggee's captured
// output and compares it against the vector's expected-output line
// (spec.md §6, "the localizer reads its first line for comparison").
func (l *Localizer) compareOutput(v Vector) (bool, error) {
	f, err := os.Open(l.OracleFileName)
	if err != nil {
		return false, fmt.Errorf("fault: reading captured output %s: %w", l.OracleFileName, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var actual string
	if scanner.Scan() {
		actual = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("fault: reading captured output %s: %w", l.OracleFileName, err)
	}
	return actual == v.Expected, nil
}
