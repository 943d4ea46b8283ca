package render

import "testing"

func TestFrameSlotPublishOverwrites(t *testing.T) {
	slot := &FrameSlot{}
	slot.Publish(&Frame{Width: 1})
	slot.Publish(&Frame{Width: 2})

	f := slot.TakeLatest()
	if f == nil || f.Width != 2 {
		t.Fatalf("expected the second published frame to win, got %+v", f)
	}
	if slot.TakeLatest() != nil {
		t.Fatalf("expected slot to be empty after TakeLatest")
	}
}

func TestFrameSlotTakeLatestWithoutPublishIsNil(t *testing.T) {
	slot := &FrameSlot{}
	if slot.TakeLatest() != nil {
		t.Fatalf("expected nil from an empty slot")
	}
}
