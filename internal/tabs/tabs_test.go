package tabs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func activeFlags(s Set) []bool {
	flags := make([]bool, s.Len())
	for i := range flags {
		flags[i] = s.IsActive(i)
	}
	return flags
}

func TestActivate_IsExclusive(t *testing.T) {
	s := New("results", "chart", "advice", "method")

	if diff := cmp.Diff([]bool{true, false, false, false}, activeFlags(s)); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}

	s = s.Activate(2)
	if diff := cmp.Diff([]bool{false, false, true, false}, activeFlags(s)); diff != "" {
		t.Errorf("after Activate(2) (-want +got):\n%s", diff)
	}
	if s.ActiveName() != "advice" {
		t.Errorf("expected advice, got %q", s.ActiveName())
	}
}

func TestActivate_OutOfRangeIgnored(t *testing.T) {
	s := New("a", "b").Activate(1)

	if got := s.Activate(5).Active(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := s.Activate(-1).Active(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestActivateName(t *testing.T) {
	s := New("a", "b", "c").ActivateName("c")
	if s.Active() != 2 {
		t.Errorf("expected 2, got %d", s.Active())
	}
	if s.ActivateName("zzz").Active() != 2 {
		t.Error("unknown name should not change the active tab")
	}
}

func TestNextPrev_Wrap(t *testing.T) {
	s := New("a", "b", "c")

	if got := s.Prev().ActiveName(); got != "c" {
		t.Errorf("Prev from first = %q, want c", got)
	}
	if got := s.Next().Next().Next().ActiveName(); got != "a" {
		t.Errorf("Next x3 = %q, want a", got)
	}
}

func TestEmptySet(t *testing.T) {
	var s Set
	if s.Active() != -1 || s.ActiveName() != "" || s.IsActive(0) {
		t.Errorf("unexpected empty set state: %+v", s)
	}
	if s.Next().Active() != -1 || s.Prev().Active() != -1 {
		t.Error("Next/Prev on empty set should stay empty")
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	s := New("a", "b")
	names := s.Names()
	names[0] = "z"
	if s.Names()[0] != "a" {
		t.Error("Names must not expose internal storage")
	}
}
