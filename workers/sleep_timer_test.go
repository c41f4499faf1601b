package workers

import (
	"context"
	"testing"
	"time"
)

func TestNextSleepValueClampsAtHundred(t *testing.T) {
	cases := []struct {
		current, step, want int
	}{
		{0, 1, 1},
		{50, 1, 51},
		{99, 1, 100},
		{100, 1, 100},
		{98, 5, 100},
		{5, -10, 0},
	}
	for _, c := range cases {
		if got := NextSleepValue(c.current, c.step); got != c.want {
			t.Errorf("NextSleepValue(%d, %d) = %d, want %d", c.current, c.step, got, c.want)
		}
	}
}

func TestSleepTimerStartStop(t *testing.T) {
	m := NewSleepTimerManager(context.Background(), nil, time.Hour)

	if m.Running("u1") {
		t.Fatal("timer should not be running before Start")
	}

	m.Start("u1")
	if !m.Running("u1") {
		t.Fatal("timer should be running after Start")
	}

	// Starting twice is a no-op, not a second timer.
	m.Start("u1")

	if !m.Stop("u1") {
		t.Fatal("Stop should report a running timer")
	}
	if m.Running("u1") {
		t.Fatal("timer should not be running after Stop")
	}
	if m.Stop("u1") {
		t.Fatal("second Stop should report nothing was running")
	}
}

func TestSleepTimerIndependentUsers(t *testing.T) {
	m := NewSleepTimerManager(context.Background(), nil, time.Hour)

	m.Start("u1")
	m.Start("u2")
	m.Stop("u1")

	if m.Running("u1") {
		t.Error("u1 timer should be stopped")
	}
	if !m.Running("u2") {
		t.Error("u2 timer should still be running")
	}
	m.Stop("u2")
}
