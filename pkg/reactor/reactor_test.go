package reactor

import "testing"

type pingMsg struct{ N int }
type pongMsg struct{ N int }

func TestDispatchInvokesRegisteredHandlers(t *testing.T) {
	r := New()
	var got []int
	r.On(pingMsg{}, func(msg any) { got = append(got, msg.(pingMsg).N) })
	r.On(pingMsg{}, func(msg any) { got = append(got, msg.(pingMsg).N*10) })
	r.On(pongMsg{}, func(msg any) { t.Fatalf("pongMsg handler should not fire for pingMsg") })

	r.Dispatch(pingMsg{N: 3})

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Fatalf("got %v, want [3 30]", got)
	}
}

func TestDeferRunsAfterCurrentDispatch(t *testing.T) {
	r := New()
	var order []string

	r.On(pingMsg{}, func(msg any) {
		order = append(order, "ping")
		r.Defer(pongMsg{N: msg.(pingMsg).N})
	})
	r.On(pongMsg{}, func(msg any) {
		order = append(order, "pong")
	})

	r.Dispatch(pingMsg{N: 1})

	if len(order) != 2 || order[0] != "ping" || order[1] != "pong" {
		t.Fatalf("order = %v, want [ping pong]", order)
	}
}

func TestDeferChainDrainsToEmpty(t *testing.T) {
	r := New()
	const chainLen = 5
	var fired int

	r.On(pingMsg{}, func(msg any) {
		fired++
		n := msg.(pingMsg).N
		if n < chainLen {
			r.Defer(pingMsg{N: n + 1})
		}
	})

	r.Dispatch(pingMsg{N: 0})

	if fired != chainLen+1 {
		t.Fatalf("fired = %d, want %d", fired, chainLen+1)
	}
}

func TestDeferWithNoActiveDispatchRunsImmediately(t *testing.T) {
	r := New()
	fired := false
	r.On(pingMsg{}, func(msg any) { fired = true })

	r.Defer(pingMsg{N: 1})

	if !fired {
		t.Fatalf("Defer with no active dispatch should dispatch immediately")
	}
}

func TestCoalesceKeepsLastPerKeyInFirstSeenOrder(t *testing.T) {
	type event struct {
		Key   int
		Value string
	}
	events := []event{
		{1, "a"}, {2, "b"}, {1, "c"}, {3, "d"}, {2, "e"},
	}
	got := Coalesce(events, func(e event) int { return e.Key })

	want := []event{{1, "c"}, {2, "e"}, {3, "d"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
