package fault

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/godbg/godbg/coverage"
)

func TestParseVectorsFileAlternatesArgvAndExpectedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.txt")
	content := "prog --flag value\nhello world\nprog foo bar\ngoodbye\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	vectors, err := ParseVectorsFile(path)
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	require.Equal(t, []string{"prog", "--flag", "value"}, vectors[0].Argv)
	require.Equal(t, "hello world", vectors[0].Expected)
	require.Equal(t, []string{"prog", "foo", "bar"}, vectors[1].Argv)
	require.Equal(t, "goodbye", vectors[1].Expected)
}

func TestParseVectorsFileOddLineCountIsMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.txt")
	require.NoError(t, os.WriteFile(path, []byte("prog a b\n"), 0644))

	_, err := ParseVectorsFile(path)
	require.Error(t, err)
}

func TestParseVectorsFileMissing(t *testing.T) {
	if _, err := ParseVectorsFile("/nonexistent/vectors.txt"); err == nil {
		t.Fatal("expected an error for a missing vectors file")
	}
}

func TestSuspiciousLinesAreFailureOnly(t *testing.T) {
	a := coverage.Line{File: "main.go", Line: 10}
	b := coverage.Line{File: "main.go", Line: 11}
	c := coverage.Line{File: "main.go", Line: 12}

	outcomes := []Outcome{
		{Passed: true, Lines: map[coverage.Line]bool{a: true, b: true}},
		{Passed: false, Lines: map[coverage.Line]bool{a: true, b: true, c: true}},
	}

	successSet := map[coverage.Line]bool{}
	failureSet := map[coverage.Line]bool{}
	for _, o := range outcomes {
		dst := successSet
		if !o.Passed {
			dst = failureSet
		}
		for line := range o.Lines {
			dst[line] = true
		}
	}

	var suspicious []coverage.Line
	for line := range failureSet {
		if !successSet[line] {
			suspicious = append(suspicious, line)
		}
	}

	if len(suspicious) != 1 || suspicious[0] != c {
		t.Fatalf("expected only line %v to be suspicious, got %v", c, suspicious)
	}
}

func TestPrintConclusionFormatsHitCounts(t *testing.T) {
	l := New("/bin/true", "1.txt")
	var buf bytes.Buffer
	l.Out = &buf

	l.printConclusion(map[coverage.Line]int{
		{File: "main.go", Line: 10}: 1,
		{File: "main.go", Line: 11}: 3,
	})

	want := "Conclusion:\nLine 10was executed for : 1 TIMES\nLine 11was executed for : 3 TIMES\n"
	if buf.String() != want {
		t.Fatalf("printConclusion output = %q, want %q", buf.String(), want)
	}
}

func TestPrintAnalysisFormatsSuspiciousLines(t *testing.T) {
	l := New("/bin/true", "1.txt")
	var buf bytes.Buffer
	l.Out = &buf

	l.printAnalysis([]coverage.Line{{File: "main.go", Line: 13}})

	want := "ANALYZE :\nLine :13 is likely to be a fault\n"
	if buf.String() != want {
		t.Fatalf("printAnalysis output = %q, want %q", buf.String(), want)
	}
}

func TestSourceLineCachesAndReportsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\nfunc main() {}\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	l := New("/bin/true", "1.txt")

	if got := l.sourceLine(path, 1); got != "package main" {
		t.Fatalf("sourceLine(1) = %q", got)
	}
	if got := l.sourceLine(path, 99); got != "" {
		t.Fatalf("sourceLine(99) = %q, want empty", got)
	}
	if got := l.sourceLine("/nonexistent/main.go", 1); got != "" {
		t.Fatalf("sourceLine of missing file = %q, want empty", got)
	}
}
