package core

import (
	"testing"
	"time"
)

func TestIntervalFiresOnlyWhenEnabledAndElapsed(t *testing.T) {
	iv := NewInterval(100)
	start := time.Unix(1000, 0)
	if iv.Due(start) {
		t.Fatal("disabled interval must not fire")
	}
	iv.Toggle()
	if !iv.Due(start) {
		t.Fatal("first tick after enabling should fire")
	}
	if iv.Due(start.Add(100 * time.Millisecond)) {
		t.Fatal("interval must strictly exceed the configured millis")
	}
	if !iv.Due(start.Add(101 * time.Millisecond)) {
		t.Fatal("expected interval to fire after 101ms")
	}
	iv.SetMillis(-5)
	if iv.Millis() != 0 {
		t.Fatalf("negative millis should clamp to 0, got %d", iv.Millis())
	}
}

func TestChanceBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}
