package coverage

import "testing"

func TestObserveDedupesConsecutiveSameLine(t *testing.T) {
	r := New()
	l := Line{File: "main.go", Line: 10}
	r.Observe(l)
	r.Observe(l)
	r.Observe(l)
	snap := r.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected exactly one distinct line, got %d", len(snap))
	}
}

func TestObserveRecordsRevisitAfterLeaving(t *testing.T) {
	r := New()
	a := Line{File: "main.go", Line: 10}
	b := Line{File: "main.go", Line: 11}
	r.Observe(a)
	r.Observe(b)
	r.Observe(a) // loop back to a: still a distinct observation overall
	snap := r.Snapshot()
	if !snap[a] || !snap[b] {
		t.Fatalf("expected both lines present, got %v", snap)
	}
	if len(snap) != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", len(snap))
	}
}

func TestClearResetsState(t *testing.T) {
	r := New()
	r.Observe(Line{File: "main.go", Line: 1})
	r.Clear()
	if len(r.Snapshot()) != 0 {
		t.Fatal("expected empty snapshot after Clear")
	}
	// After Clear, observing the same line that was "last" before the
	// clear must not be treated as a duplicate.
	r.Observe(Line{File: "main.go", Line: 1})
	if len(r.Snapshot()) != 1 {
		t.Fatal("expected the post-clear observation to register")
	}
}

func TestCountsAccumulatesPerLineHits(t *testing.T) {
	r := New()
	a := Line{File: "main.go", Line: 10}
	b := Line{File: "main.go", Line: 11}
	r.Observe(a)
	r.Observe(b)
	r.Observe(a)
	r.Observe(a) // consecutive duplicate: not a fresh hit
	r.Observe(b)

	counts := r.Counts()
	if counts[a] != 2 {
		t.Fatalf("expected line %v to have 2 hits, got %d", a, counts[a])
	}
	if counts[b] != 2 {
		t.Fatalf("expected line %v to have 2 hits, got %d", b, counts[b])
	}
}

func TestCountsIsACopy(t *testing.T) {
	r := New()
	l := Line{File: "main.go", Line: 1}
	r.Observe(l)
	counts := r.Counts()
	counts[Line{File: "other.go", Line: 2}] = 99
	if len(r.Counts()) != 1 {
		t.Fatal("mutating Counts' result must not affect the recorder's internal state")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := New()
	l := Line{File: "main.go", Line: 1}
	r.Observe(l)
	snap := r.Snapshot()
	snap[Line{File: "other.go", Line: 2}] = true
	if len(r.Snapshot()) != 1 {
		t.Fatal("mutating a snapshot must not affect the recorder's internal state")
	}
}
