package content

import "testing"

func TestNew_DedupesAndDropsBlankSeeds(t *testing.T) {
	s := New([]string{"React", "", "CSS", "React", "  ", "Go"}, Options{})
	assertPalette(t, s.Palette(), []string{"React", "CSS", "Go"})
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(s.Segments()) != 0 || s.Pending() != "" {
		t.Fatalf("initial content must be empty")
	}
}

func TestNew_DefaultChipIDsAreUnique(t *testing.T) {
	s := New([]string{"A", "B"}, Options{})
	s, _ = mustApply(t, s, InsertTag{Name: "A"})
	s, _ = mustApply(t, s, InsertTag{Name: "B"})

	chips := s.Chips()
	if len(chips) != 2 {
		t.Fatalf("chips: got %d, want 2", len(chips))
	}
	if chips[0].Chip == "" || chips[0].Chip == chips[1].Chip {
		t.Fatalf("chip ids must be non-empty and unique: %q %q", chips[0].Chip, chips[1].Chip)
	}
	if seg, ok := s.Chip(chips[1].Chip); !ok || seg.Value != "B" {
		t.Fatalf("lookup chip: got (%+v,%v)", seg, ok)
	}
}

func TestPlainText(t *testing.T) {
	s := newTestState("React", "CSS")
	s, _ = mustApply(t, s, InsertTag{Name: "React"})
	s, _ = mustApply(t, s, UpdatePendingText{Text: "and", Caret: CaretAt(3)})
	s, _ = mustApply(t, s, InsertTag{Name: "CSS", Caret: s.Caret()})
	s, _ = mustApply(t, s, UpdatePendingText{Text: " rock ", Caret: CaretAt(0)})

	if got, want := s.PlainText(), "#React and #CSS rock"; got != want {
		t.Fatalf("plain text: got %q, want %q", got, want)
	}
	if got := s.Tags(); len(got) != 2 || got[0] != "React" || got[1] != "CSS" {
		t.Fatalf("tags: got %q", got)
	}
}

func TestValidate_DetectsDrift(t *testing.T) {
	s := newTestState("A", "B")
	s, _ = mustApply(t, s, InsertTag{Name: "A"})

	broken := s
	broken.palette = append([]string{"A"}, s.palette...)
	if err := broken.Validate(); err == nil {
		t.Fatalf("expected error for tag present in palette and content")
	}

	broken = s
	broken.segments = append(s.Segments(), TagSegment(s.segments[1].Chip, "B"))
	if err := broken.Validate(); err == nil {
		t.Fatalf("expected error for duplicate chip id")
	}

	broken = s
	broken.caret = CaretAt(5)
	if err := broken.Validate(); err == nil {
		t.Fatalf("expected error for caret out of bounds")
	}
}

func TestValidate_HoldsAcrossRandomizedSequence(t *testing.T) {
	s := newTestState("A", "B", "C", "D")
	script := []Command{
		UpdatePendingText{Text: "x", Caret: CaretAt(1)},
		InsertTag{Name: "C", Caret: CaretAt(1)},
		InsertTag{Name: "C"},
		InsertTag{Name: "A", Caret: OutsideSurface},
		RemoveTagNamed{Name: "C"},
		InsertTag{Name: "C"},
		UpdatePendingText{Text: "tail text", Caret: Caret{InSurface: true, Anchor: 0, Col: 4}},
		InsertTag{Name: "B", Caret: Caret{InSurface: true, Anchor: 0, Col: 4}},
		RemoveTagNamed{Name: "A"},
		RemoveTagNamed{Name: "A"},
		SetCaret{Caret: OutsideSurface},
		InsertTag{Name: "A", Caret: OutsideSurface},
	}
	for i, cmd := range script {
		s, _, _ = s.Apply(cmd)
		if err := s.Validate(); err != nil {
			t.Fatalf("step %d (%T): %v", i, cmd, err)
		}
	}
	if got, want := s.Tags(), []string{"C", "B", "A"}; len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	assertPalette(t, s.Palette(), []string{"D"})
}
