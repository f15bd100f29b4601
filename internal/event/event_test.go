package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(LayoutReady, a)
	d.Subscribe(LayoutFailed, b)

	d.Dispatch(Event{Type: LayoutReady, Data: 1})

	if len(a.got) != 1 || a.got[0].Data != 1 {
		t.Fatalf("expected one LayoutReady event, got %+v", a.got)
	}
	if len(b.got) != 0 {
		t.Fatalf("expected no events for LayoutFailed subscriber, got %d", len(b.got))
	}
}

func TestDispatcher_ListenerFuncOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(BoardExported, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(BoardExported, ListenerFunc(func(Event) { order = append(order, 2) }))

	d.Dispatch(Event{Type: BoardExported})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected delivery in subscription order, got %v", order)
	}
}
