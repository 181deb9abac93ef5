// Package coverage records which source lines a traced run executes, the
// per-run observation that feeds spectrum-based fault localization
// (spec.md §4.6 "CoverageRecorder").
package coverage

// Line identifies a single source line.
type Line struct {
	File string
	Line int
}

// Recorder accumulates the per-line hit counts observed during one run
// of the debuggee (spec.md §3 CoverageMap: hit-counts are strictly
// positive). It is reset between runs with Clear.
type Recorder struct {
	counts   map[Line]int
	lastLine Line
	hasLast  bool
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{counts: map[Line]int{}}
}

// Observe records that line executed. Consecutive observations of the
// same line (as happens while single-stepping within one source line's
// multiple machine instructions) are deduplicated via lastLine, so a
// line that merely loops does not get its count bumped once per
// iteration's instructions but does get bumped once per genuine revisit
// after control has moved elsewhere (spec.md §4.6 edge case).
func (r *Recorder) Observe(line Line) {
	if r.hasLast && r.lastLine == line {
		return
	}
	r.counts[line]++
	r.lastLine = line
	r.hasLast = true
}

// Snapshot returns the set of lines observed so far, discarding counts.
// FaultLocalizer only needs set membership for its success/failure
// unions (spec.md §4.7); Counts is used for the per-vector "Conclusion"
// report (spec.md §6).
func (r *Recorder) Snapshot() map[Line]bool {
	out := make(map[Line]bool, len(r.counts))
	for l := range r.counts {
		out[l] = true
	}
	return out
}

// Counts returns a copy of the per-line hit counts observed so far.
func (r *Recorder) Counts() map[Line]int {
	out := make(map[Line]int, len(r.counts))
	for l, n := range r.counts {
		out[l] = n
	}
	return out
}

// Clear discards all observations, preparing the Recorder for the next
// run.
func (r *Recorder) Clear() {
	r.counts = map[Line]int{}
	r.hasLast = false
}
