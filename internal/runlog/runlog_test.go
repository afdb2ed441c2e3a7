package runlog

import "testing"

func TestSink_AccumulatesNotes(t *testing.T) {
	s := New(nil)

	s.Notef("row %d: missing title", 3)
	s.Notef("row %d: year %q not numeric", 5, "n.d.")

	notes := s.Notes()
	if len(notes) != 2 {
		t.Fatalf("Notes() = %v, want 2 entries", notes)
	}
	if notes[0] != `row 3: missing title` {
		t.Errorf("Notes()[0] = %q", notes[0])
	}
	if notes[1] != `row 5: year "n.d." not numeric` {
		t.Errorf("Notes()[1] = %q", notes[1])
	}
}

func TestSink_RunIDsAreUnique(t *testing.T) {
	a, b := New(nil), New(nil)
	if a.RunID() == "" || a.RunID() == b.RunID() {
		t.Errorf("RunID() not unique: %q vs %q", a.RunID(), b.RunID())
	}
}
