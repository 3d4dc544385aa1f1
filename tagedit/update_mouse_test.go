package tagedit

import (
	"testing"

	"github.com/iw2rmb/tagline/content"
)

func TestMouse_PaletteClickInsertsAtCaret(t *testing.T) {
	m := newTestModel("React", "CSS").SetWidth(40)
	m = typeText(m, "ab")

	r := findRegion(t, m, regionPalette, "CSS")
	m = click(m, r.x0, r.y)

	assertSegments(t, m.State().Segments(), []content.Segment{
		content.TextSegment("ab"),
		content.TagSegment("chip-1", "CSS"),
	})
	assertStrings(t, "palette", m.State().Palette(), []string{"React"})
}

func TestMouse_RemoveControlRemovesChip(t *testing.T) {
	m := newTestModel("React", "CSS").SetWidth(40)
	m = m.InsertTag("React").InsertTag("CSS")

	r := findRegion(t, m, regionChipRemove, "React")
	m = click(m, r.x1-1, r.y)

	if got := m.State().Tags(); len(got) != 1 || got[0] != "CSS" {
		t.Fatalf("tags after clicking remove: got %q, want [CSS]", got)
	}
	assertStrings(t, "palette", m.State().Palette(), []string{"React"})
}

func TestMouse_ChipBodySelectsChip(t *testing.T) {
	m := newTestModel("React", "CSS").SetWidth(40)
	m = m.InsertTag("React").InsertTag("CSS")

	r := findRegion(t, m, regionChip, "CSS")
	m = click(m, r.x0, r.y)

	if got, want := m.Zone(), FocusChips; got != want {
		t.Fatalf("zone: got %v, want %v", got, want)
	}
	if chip, ok := m.SelectedChip(); !ok || chip.Value != "CSS" {
		t.Fatalf("selected chip: got (%+v,%v), want CSS", chip, ok)
	}
	if got := len(m.State().Tags()); got != 2 {
		t.Fatalf("clicking the chip body must not remove it")
	}
}

func TestMouse_PendingClickMovesCaret(t *testing.T) {
	m := newTestModel("A").SetWidth(40)
	m = typeText(m, "hello")

	var target hitRegion
	for _, r := range m.computeLayout().regions {
		if r.kind == regionPending && r.col == 2 {
			target = r
		}
	}
	m = click(m, target.x0, target.y)
	if got, want := m.State().Caret(), content.CaretAt(2); got != want {
		t.Fatalf("caret: got %+v, want %+v", got, want)
	}
}

func TestMouse_SurfaceClickReturnsFocus(t *testing.T) {
	m := newTestModel("A").SetWidth(40)
	m = m.SetZone(FocusPalette)

	var target hitRegion
	for _, r := range m.computeLayout().regions {
		if r.kind == regionSurface {
			target = r
			break
		}
	}
	m = click(m, target.x1-1, target.y)
	if got, want := m.Zone(), FocusSurface; got != want {
		t.Fatalf("zone: got %v, want %v", got, want)
	}
}

func TestMouse_RegionsAccountForSurfaceFrame(t *testing.T) {
	cfg := Config{Tags: []string{"A"}, NewChipID: seqChipIDs()}
	cfg.Style = DefaultStyleWithRenderer(asciiRenderer())
	m := New(cfg).SetWidth(30)
	m = m.InsertTag("A")

	r := findRegion(t, m, regionChip, "A")
	paletteRows := len(m.computeLayout().paletteLines)
	// Rounded border adds one row on top and one column on the left; padding
	// adds one more column.
	if got, want := r.y, paletteRows+1; got != want {
		t.Fatalf("chip row: got %d, want %d", got, want)
	}
	if got, want := r.x0, 2; got != want {
		t.Fatalf("chip col: got %d, want %d", got, want)
	}

	m = click(m, findRegion(t, m, regionChipRemove, "A").x0, r.y)
	if got := len(m.State().Tags()); got != 0 {
		t.Fatalf("tags after click: got %d, want 0", got)
	}
}
