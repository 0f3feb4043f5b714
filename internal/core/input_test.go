package core

import "testing"

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.SetPointer(12, 7)

	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear() should drop actions")
	}
	if !f.HasPointer || f.PointerX != 12 || f.PointerY != 7 {
		t.Errorf("Clear() should keep pointer, got (%d, %d, %v)", f.PointerX, f.PointerY, f.HasPointer)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.SetPointer(1, 2)

	c := f.Clone()
	f.Clear()
	f.Set(ActionDown)

	if !c.Has(ActionUp) || c.Has(ActionDown) {
		t.Error("clone should not share the action map")
	}
	if c.PointerX != 1 || c.PointerY != 2 {
		t.Errorf("clone pointer = (%d, %d), expected (1, 2)", c.PointerX, c.PointerY)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on zero frame should allocate")
	}
}
