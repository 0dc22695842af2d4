package handlers

import (
	"testing"
	"time"

	"option-sim/internal/model"
	"option-sim/internal/sim"
)

func TestRunStorePutGet(t *testing.T) {
	store := NewRunStore(time.Minute)
	in := model.Defaults()
	res := sim.Run(in)

	run := store.Put(in, res, sim.BuildSummary(in, res))
	if run.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, ok := store.Get(run.ID)
	if !ok {
		t.Fatal("stored run not found")
	}
	if got.Result != res {
		t.Error("stored run should hold the same result")
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestRunStoreExpiry(t *testing.T) {
	store := NewRunStore(time.Minute)
	in := model.Defaults()
	res := sim.Run(in)
	run := store.Put(in, res, sim.BuildSummary(in, res))

	// Force expiry rather than waiting for the sweeper.
	run.ExpiresAt = time.Now().Add(-time.Second)
	if _, ok := store.Get(run.ID); ok {
		t.Error("expired run should not resolve")
	}
}
