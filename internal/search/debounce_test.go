package search

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesRapidCalls(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired int32
	for i := 0; i < 10; i++ {
		d.Call(func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("expected 10 rapid calls to coalesce into 1, got %d", got)
	}
}

func TestDebouncerLastCallWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var got atomic.Value
	d.Call(func() { got.Store("first") })
	d.Call(func() { got.Store("second") })

	time.Sleep(80 * time.Millisecond)

	if v := got.Load(); v != "second" {
		t.Errorf("expected last scheduled call to run, got %v", v)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired int32
	d.Call(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Errorf("expected Stop to cancel pending call, got %d", got)
	}
}
