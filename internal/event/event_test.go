package event

import "testing"

type counter struct {
	got []Event
}

func (c *counter) OnEvent(e Event) { c.got = append(c.got, e) }

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	c := &counter{}
	d.Subscribe(c, KeyPressed, MouseButtonPressed)

	d.Dispatch(Event{Type: KeyPressed, Data: "Space"})
	d.Dispatch(Event{Type: WindowClosing})
	d.Dispatch(Event{Type: MouseButtonPressed})

	if len(c.got) != 2 {
		t.Fatalf("received %d events, want 2", len(c.got))
	}
	if c.got[0].Data != "Space" {
		t.Errorf("first event data = %v, want Space", c.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(a, KeyPressed)
	d.Subscribe(b, KeyPressed)
	d.Unsubscribe(KeyPressed, a)
	d.Unsubscribe(WindowClosing, a)

	d.Dispatch(Event{Type: KeyPressed})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", len(a.got), len(b.got))
	}
}

func TestLatch(t *testing.T) {
	d := NewDispatcher()
	l := &Latch{}
	d.Subscribe(l, QuitEvents...)

	if l.Fired() {
		t.Fatal("latch fired before any event")
	}
	d.Dispatch(Event{Type: MouseButtonPressed, Data: 0})
	d.Dispatch(Event{Type: KeyPressed})
	if !l.Fired() {
		t.Fatal("latch did not fire")
	}
	if l.Cause().Type != MouseButtonPressed {
		t.Errorf("Cause() = %s, want first event", l.Cause().Type)
	}
}

func TestGuard(t *testing.T) {
	g := NewGuard(1.0)
	if g.Open() {
		t.Fatal("guard open before delay")
	}
	if g.Advance(0.4) || g.Advance(0.5) {
		t.Fatal("guard open after 0.9s")
	}
	if g.Advance(-5) {
		t.Fatal("negative delta moved the guard")
	}
	if !g.Advance(0.2) {
		t.Error("guard closed after 1.1s")
	}
	if !NewGuard(0).Open() {
		t.Error("zero delay guard is closed")
	}
}
