package event

import "testing"

func TestAddImmediate(t *testing.T) {
	var q Queue
	fired := false
	q.Add("k", func(arg int) { fired = true }, 0, 0)
	if !fired {
		t.Errorf("zero-delay event should fire immediately")
	}
	if q.head != nil {
		t.Errorf("immediate event should not be queued")
	}
}

func TestAdvanceFiresInOrder(t *testing.T) {
	var q Queue
	var order []int
	q.Add("a", func(arg int) { order = append(order, arg) }, 5, 1)
	q.Add("a", func(arg int) { order = append(order, arg) }, 10, 2)
	q.Add("a", func(arg int) { order = append(order, arg) }, 3, 3)

	q.Advance(3)
	if len(order) != 1 || order[0] != 3 {
		t.Fatalf("expected event 3 to fire first, got %v", order)
	}

	q.Advance(2)
	if len(order) != 2 || order[1] != 1 {
		t.Fatalf("expected event 1 to fire second, got %v", order)
	}

	q.Advance(5)
	if len(order) != 3 || order[2] != 2 {
		t.Fatalf("expected event 2 to fire last, got %v", order)
	}
}

func TestCancelRemovesEvent(t *testing.T) {
	var q Queue
	fired := false
	q.Add("k", func(arg int) { fired = true }, 5, 7)
	q.Cancel("k", 7)
	q.Advance(100)
	if fired {
		t.Errorf("cancelled event should not fire")
	}
}

func TestCancelPreservesFollowingDelay(t *testing.T) {
	var q Queue
	var order []int
	q.Add("k", func(arg int) { order = append(order, arg) }, 5, 1)
	q.Add("k", func(arg int) { order = append(order, arg) }, 5, 2)
	q.Cancel("k", 1)

	// Event 2 keeps its own deadline of 5 ticks after event 1 is cancelled.
	q.Advance(4)
	if len(order) != 0 {
		t.Fatalf("event 2 fired too early: %v", order)
	}
	q.Advance(1)
	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("expected event 2 to fire, got %v", order)
	}
}
