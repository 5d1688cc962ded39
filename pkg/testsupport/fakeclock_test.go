package testsupport

import (
	"testing"
	"time"
)

func TestAdvanceCoalescesToNewestDueTick(t *testing.T) {
	clock := NewFakeClock()
	ticker := clock.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	start := clock.Now()
	clock.Advance(45 * time.Millisecond)

	select {
	case got := <-ticker.C():
		want := start.Add(40 * time.Millisecond)
		if !got.Equal(want) {
			t.Fatalf("tick carried %v, want the newest due tick %v", got, want)
		}
	default:
		t.Fatalf("advance past the interval delivered no tick")
	}

	select {
	case got := <-ticker.C():
		t.Fatalf("intermediate ticks should coalesce, got extra tick %v", got)
	default:
	}
}

func TestAdvanceReplacesStaleBufferedTick(t *testing.T) {
	clock := NewFakeClock()
	ticker := clock.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	start := clock.Now()
	clock.Advance(10 * time.Millisecond)
	clock.Advance(30 * time.Millisecond)

	got := <-ticker.C()
	want := start.Add(40 * time.Millisecond)
	if !got.Equal(want) {
		t.Fatalf("unread tick should be replaced by the newest, got %v want %v", got, want)
	}
}

func TestAfterFiresOnceDue(t *testing.T) {
	clock := NewFakeClock()
	ch := clock.After(20 * time.Millisecond)

	clock.Advance(10 * time.Millisecond)
	select {
	case <-ch:
		t.Fatalf("waiter fired before its deadline")
	default:
	}

	clock.Advance(10 * time.Millisecond)
	select {
	case <-ch:
	default:
		t.Fatalf("waiter did not fire at its deadline")
	}
	if n := clock.WaiterCount(); n != 0 {
		t.Fatalf("fired waiter still pending, count = %d", n)
	}
}

func TestStoppedTickerReceivesNothing(t *testing.T) {
	clock := NewFakeClock()
	ticker := clock.NewTicker(5 * time.Millisecond)
	ticker.Stop()

	clock.Advance(50 * time.Millisecond)
	select {
	case got := <-ticker.C():
		t.Fatalf("stopped ticker delivered %v", got)
	default:
	}
}
