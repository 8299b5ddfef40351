package dispatch

import (
	"errors"
	"testing"

	"github.com/mirelk/undoglow/internal/event"
)

func TestDispatchCycle(t *testing.T) {
	t.Run("cycle begin fires before the body", func(t *testing.T) {
		em := event.NewManager()
		d := New(em)

		var order []string
		em.Subscribe(event.TypeCycleBegin, func(e event.Event) bool {
			data := e.Data.(event.CycleBeginData)
			order = append(order, "begin:"+data.Command)
			return false
		})
		if err := d.Register("undo", func(Arg) error {
			order = append(order, "body")
			return nil
		}); err != nil {
			t.Fatal(err)
		}

		if err := d.Dispatch("undo", Arg{}); err != nil {
			t.Fatal(err)
		}
		if len(order) != 2 || order[0] != "begin:undo" || order[1] != "body" {
			t.Errorf("unexpected order %v", order)
		}
	})

	t.Run("unknown command starts no cycle", func(t *testing.T) {
		em := event.NewManager()
		d := New(em)
		fired := false
		em.Subscribe(event.TypeCycleBegin, func(e event.Event) bool {
			fired = true
			return false
		})

		if err := d.Dispatch("nope", Arg{}); err == nil {
			t.Error("expected error for unknown command")
		}
		if fired {
			t.Error("cycle begin fired for unknown command")
		}
	})

	t.Run("body error is wrapped", func(t *testing.T) {
		em := event.NewManager()
		d := New(em)
		sentinel := errors.New("boom")
		d.Register("bad", func(Arg) error { return sentinel })

		err := d.Dispatch("bad", Arg{})
		if !errors.Is(err, sentinel) {
			t.Errorf("expected wrapped sentinel, got %v", err)
		}
	})

	t.Run("rune payload reaches the body", func(t *testing.T) {
		em := event.NewManager()
		d := New(em)
		var got rune
		d.Register("self-insert", func(arg Arg) error {
			got = arg.Rune
			return nil
		})
		d.Dispatch("self-insert", Arg{Rune: 'x'})
		if got != 'x' {
			t.Errorf("expected 'x', got %q", got)
		}
	})
}

func TestRegister(t *testing.T) {
	em := event.NewManager()
	d := New(em)
	noop := func(Arg) error { return nil }

	if err := d.Register("", noop); err == nil {
		t.Error("empty name should be rejected")
	}
	if err := d.Register("undo", nil); err == nil {
		t.Error("nil body should be rejected")
	}
	if err := d.Register("undo", noop); err != nil {
		t.Fatal(err)
	}
	if err := d.Register("undo", noop); err == nil {
		t.Error("duplicate registration should be rejected")
	}
	if !d.Known("undo") || d.Known("redo") {
		t.Error("Known misreports registry contents")
	}
}
