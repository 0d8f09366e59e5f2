package core

import "testing"

func TestInputFramePointerLifecycle(t *testing.T) {
	f := NewInputFrame()
	f.Press(3, 4)
	f.Move(7, 4)
	f.Release(8, 5)
	f.Set(ActionNext)

	p := f.Pointer
	if !p.Pressed || !p.Moved || !p.Released {
		t.Fatalf("expected press, move and release, got %+v", p)
	}
	if p.PressX != 3 || p.PressY != 4 {
		t.Errorf("press position = (%d, %d), expected (3, 4)", p.PressX, p.PressY)
	}
	if p.X != 8 || p.Y != 5 {
		t.Errorf("latest position = (%d, %d), expected (8, 5)", p.X, p.Y)
	}

	clone := f.Clone()
	f.Clear()

	if f.Pointer.Active() || f.Has(ActionNext) {
		t.Error("Clear should reset actions and pointer")
	}
	if !clone.Pointer.Released || !clone.Has(ActionNext) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionCycleShape.String() != "CycleShape" {
		t.Errorf("unexpected name %q", ActionCycleShape.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
