package scene

import (
	"slices"
	"testing"

	"tappy/internal/core"
)

func TestDataFirstWriteIsSetThenChange(t *testing.T) {
	d := NewData()
	var changes []Change
	d.OnChange(func(c Change) { changes = append(changes, c) })

	d.Set(KeyScore, 0)
	d.Set(KeyScore, 3)
	d.Set(KeyScore, 3)

	if len(changes) != 2 {
		t.Fatalf("expected change notification on every later write, got %d", len(changes))
	}
	if changes[0].Previous != 0 || changes[0].Value != 3 {
		t.Fatalf("unexpected first change %+v", changes[0])
	}
	if changes[1].Previous != 3 || changes[1].Value != 3 {
		t.Fatalf("equal writes must still notify, got %+v", changes[1])
	}
}

func TestDataOffChange(t *testing.T) {
	d := NewData()
	var got []string
	a := d.OnChange(func(Change) { got = append(got, "a") })
	d.OnChange(func(Change) { got = append(got, "b") })
	if d.OnChange(nil) != 0 {
		t.Fatal("nil listeners should not register")
	}
	d.Set(KeyScore, 0)
	d.Set(KeyScore, 1)
	d.OffChange(a)
	d.OffChange(a)
	d.Set(KeyScore, 2)

	if !slices.Equal(got, []string{"a", "b", "b"}) {
		t.Fatalf("got %v", got)
	}
}

func TestDataListenerRemovedDuringChange(t *testing.T) {
	d := NewData()
	calls := 0
	var id int
	id = d.OnChange(func(Change) {
		calls++
		d.OffChange(id)
	})
	d.OnChange(func(Change) { calls++ })
	d.Set(KeyScore, 0)
	d.Set(KeyScore, 1)
	d.Set(KeyScore, 2)
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDataTypedAccessors(t *testing.T) {
	d := NewData()
	d.Set(KeyScore, 12)
	d.Set(KeyPlayDown, true)
	d.Set("name", "plane")

	if got := d.Int(KeyScore); got != 12 {
		t.Fatalf("Int = %d, want 12", got)
	}
	if !d.Bool(KeyPlayDown) {
		t.Fatal("Bool should report true")
	}
	if d.Int("name") != 0 || d.Bool("missing") {
		t.Fatal("mismatched or missing keys should return zero values")
	}
	if _, ok := d.Get("missing"); ok {
		t.Fatal("Get should report missing keys")
	}
}

func TestEventsEmitOrderAndOff(t *testing.T) {
	e := NewEvents()
	var got []string
	a := e.On(TopicReset, func(...any) { got = append(got, "a") })
	e.On(TopicReset, func(...any) { got = append(got, "b") })
	e.On(TopicGetReady, func(...any) { got = append(got, "other") })

	e.Emit(TopicReset)
	e.Off(TopicReset, a)
	e.Emit(TopicReset)

	if !slices.Equal(got, []string{"a", "b", "b"}) {
		t.Fatalf("unexpected dispatch order %v", got)
	}
	if e.Count(TopicReset) != 1 {
		t.Fatalf("expected one remaining handler, got %d", e.Count(TopicReset))
	}
}

func TestEventsSubscribeDuringEmit(t *testing.T) {
	e := NewEvents()
	calls := 0
	e.On(TopicChangeEnv, func(...any) {
		e.On(TopicChangeEnv, func(...any) { calls++ })
	})

	e.Emit(TopicChangeEnv)
	if calls != 0 {
		t.Fatalf("handler added during emit must not run for that emit, ran %d times", calls)
	}
	e.Emit(TopicChangeEnv)
	if calls != 1 {
		t.Fatalf("expected new handler to run on next emit, ran %d times", calls)
	}
}

func TestEventsPassesArguments(t *testing.T) {
	e := NewEvents()
	var seen []any
	e.On(TopicGameOver, func(args ...any) { seen = args })
	e.Emit(TopicGameOver, 42, "best")
	if len(seen) != 2 || seen[0] != 42 || seen[1] != "best" {
		t.Fatalf("unexpected args %v", seen)
	}
}

func TestNewDefaultsSize(t *testing.T) {
	s := New(core.Size{})
	if s.Size.W != 840 || s.Size.H != 480 {
		t.Fatalf("unexpected default size %+v", s.Size)
	}
}
