package input

import (
	"sync"
	"testing"
)

func TestDrainPreservesArrivalOrder(t *testing.T) {
	q := NewQueue()
	q.PushPointer(10, 10) // reference sample, queues nothing
	q.PushPointer(15, 12)
	q.PushWheel(-1)
	q.PushResize(1920, 1080)
	q.PushPointer(20, 12)

	var got []Event
	q.Drain(func(ev Event) { got = append(got, ev) })

	want := []Event{
		{Kind: EventPointerMove, X: 5, Y: 2},
		{Kind: EventWheel, Y: -1},
		{Kind: EventResize, X: 1920, Y: 1080},
		{Kind: EventPointerMove, X: 5, Y: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("drained %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFirstPointerSampleQueuesNothing(t *testing.T) {
	q := NewQueue()
	q.PushPointer(100, 200)
	if q.Len() != 0 {
		t.Fatalf("first sample queued %d events, want 0", q.Len())
	}
	q.PushPointer(101, 200)
	if q.Len() != 1 {
		t.Fatalf("second sample queued %d events, want 1", q.Len())
	}
}

func TestResetPointerSuppressesJump(t *testing.T) {
	q := NewQueue()
	q.PushPointer(0, 0)
	q.PushPointer(1, 1)
	q.Drain(func(Event) {})

	// After a reset, a far-away sample must not queue a huge delta.
	q.ResetPointer()
	q.PushPointer(5000, 5000)
	if q.Len() != 0 {
		t.Fatal("sample after ResetPointer queued a delta")
	}
	q.PushPointer(5004, 4998)

	var got []Event
	q.Drain(func(ev Event) { got = append(got, ev) })
	if len(got) != 1 || got[0].X != 4 || got[0].Y != -2 {
		t.Fatalf("unexpected delta after reset: %+v", got)
	}
}

func TestDrainClearsQueue(t *testing.T) {
	q := NewQueue()
	q.PushWheel(1)
	q.PushWheel(2)
	q.Drain(func(Event) {})
	if q.Len() != 0 {
		t.Fatalf("queue not cleared, %d events remain", q.Len())
	}
	var calls int
	q.Drain(func(Event) { calls++ })
	if calls != 0 {
		t.Fatalf("second drain delivered %d events", calls)
	}
}

func TestConcurrentPushes(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.PushWheel(1)
			}
		}()
	}
	wg.Wait()

	var count int
	q.Drain(func(Event) { count++ })
	if count != 800 {
		t.Fatalf("drained %d events, want 800", count)
	}
}
