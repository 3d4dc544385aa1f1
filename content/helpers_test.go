package content

import (
	"fmt"
	"reflect"
	"testing"
)

func seqChipIDs() func() ChipID {
	n := 0
	return func() ChipID {
		n++
		return ChipID(fmt.Sprintf("chip-%d", n))
	}
}

func newTestState(seed ...string) State {
	return New(seed, Options{NewChipID: seqChipIDs()})
}

func mustApply(t *testing.T, s State, cmd Command) (State, Change) {
	t.Helper()
	next, ch, ok := s.Apply(cmd)
	if !ok {
		t.Fatalf("apply %T%+v: expected effect", cmd, cmd)
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("apply %T%+v: invalid state: %v", cmd, cmd, err)
	}
	return next, ch
}

func assertSegments(t *testing.T, got, want []Segment) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments:\n got: %+v\nwant: %+v", got, want)
	}
}

func assertPalette(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("palette: got %q, want %q", got, want)
	}
}
