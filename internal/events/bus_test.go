package events

import "testing"

func TestEmitInRegistrationOrder(t *testing.T) {
	b := NewBus()

	var order []int
	b.On("e", func(any) { order = append(order, 1) })
	b.On("e", func(any) { order = append(order, 2) })
	b.On("e", func(any) { order = append(order, 3) })

	b.Emit("e", nil)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order=%v, want [1 2 3]", order)
	}
}

func TestEmitPayloadAndIsolation(t *testing.T) {
	b := NewBus()

	var got any
	b.On("goal", func(data any) { got = data })
	b.On("other", func(any) { t.Fatal("wrong event delivered") })

	b.Emit("goal", 42)
	if got != 42 {
		t.Fatalf("payload=%v, want 42", got)
	}

	// Emitting with no subscribers is a no-op.
	b.Emit("empty", nil)
}

func TestOff(t *testing.T) {
	b := NewBus()

	calls := 0
	id := b.On("e", func(any) { calls++ })
	b.On("e", func(any) { calls += 10 })

	b.Emit("e", nil)
	b.Off("e", id)
	b.Emit("e", nil)

	if calls != 21 {
		t.Fatalf("calls=%d, want 21", calls)
	}

	// Unknown ids are ignored.
	b.Off("e", 999)
	b.Off("missing", 1)
}
