package event

import (
	"testing"

	"github.com/mirelk/undoglow/internal/types"
)

func TestDispatchOrder(t *testing.T) {
	t.Run("priority ordering", func(t *testing.T) {
		m := NewManager()
		var order []string

		m.Subscribe(TypePreChange, func(e Event) bool {
			order = append(order, "default")
			return false
		})
		m.SubscribeWithPriority(TypePreChange, PriorityCoordinator, func(e Event) bool {
			order = append(order, "coordinator")
			return false
		})

		m.Dispatch(TypePreChange, PreChangeData{Span: types.Span{Start: 0, End: 5}})

		if len(order) != 2 {
			t.Fatalf("expected 2 handler calls, got %d", len(order))
		}
		if order[0] != "coordinator" {
			t.Errorf("expected coordinator handler first, got %q", order[0])
		}
		if order[1] != "default" {
			t.Errorf("expected default handler second, got %q", order[1])
		}
	})

	t.Run("equal priority keeps registration order", func(t *testing.T) {
		m := NewManager()
		var order []int
		for i := 0; i < 4; i++ {
			i := i
			m.Subscribe(TypeCycleBegin, func(e Event) bool {
				order = append(order, i)
				return false
			})
		}

		m.Dispatch(TypeCycleBegin, CycleBeginData{Command: "undo"})

		for i, got := range order {
			if got != i {
				t.Errorf("handler %d ran in slot %d", got, i)
			}
		}
	})

	t.Run("consumed event stops propagation", func(t *testing.T) {
		m := NewManager()
		called := false
		m.SubscribeWithPriority(TypePostChange, PriorityCoordinator, func(e Event) bool {
			return true
		})
		m.Subscribe(TypePostChange, func(e Event) bool {
			called = true
			return false
		})

		m.Dispatch(TypePostChange, PostChangeData{Span: types.Span{Start: 2, End: 4}})

		if called {
			t.Error("lower priority handler ran after event was consumed")
		}
	})

	t.Run("dispatch with no handlers is a no-op", func(t *testing.T) {
		m := NewManager()
		m.Dispatch(TypeAppQuit, AppQuitData{})
	})
}

func TestDispatchPayload(t *testing.T) {
	m := NewManager()
	var got PostChangeData
	m.Subscribe(TypePostChange, func(e Event) bool {
		data, ok := e.Data.(PostChangeData)
		if !ok {
			t.Fatalf("unexpected payload type %T", e.Data)
		}
		got = data
		return false
	})

	m.Dispatch(TypePostChange, PostChangeData{Span: types.Span{Start: 5, End: 9}, Removed: 0})

	if got.Span != (types.Span{Start: 5, End: 9}) {
		t.Errorf("expected span [5,9), got %v", got.Span)
	}
	if got.Removed != 0 {
		t.Errorf("expected removed 0, got %d", got.Removed)
	}
}
