package pubsub

import (
	"errors"
	"testing"
)

func TestRegistry_Add_RejectsDuplicateID(t *testing.T) {
	r := newRegistry[category, note](false)
	sub := newRecorder(NoActionNeeded)

	if err := r.add(Strong[category, note](sub), catInput, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.add(Strong[category, note](sub), catInput, 0); !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed, got %v", err)
	}
	if got := r.count(catInput); got != 1 {
		t.Errorf("expected 1 entry, got %d", got)
	}
}

func TestRegistry_Add_PriorityStableTies(t *testing.T) {
	r := newRegistry[category, note](true)

	subs := []*recorder{
		newRecorder(NoActionNeeded), // priority 1
		newRecorder(NoActionNeeded), // priority 2
		newRecorder(NoActionNeeded), // priority 1, after first
		newRecorder(NoActionNeeded), // priority 2, after second
	}
	priorities := []int{1, 2, 1, 2}
	for i, sub := range subs {
		if err := r.add(Strong[category, note](sub), catInput, priorities[i]); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	snap := r.snapshot(catInput)
	expected := []*recorder{subs[1], subs[3], subs[0], subs[2]}
	if len(snap) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(snap))
	}
	for i := range expected {
		if snap[i].id != expected[i].ID() {
			t.Errorf("position %d: wrong entry", i)
		}
	}
}

func TestRegistry_Remove_DropsEmptyCategory(t *testing.T) {
	r := newRegistry[category, note](false)
	sub := newRecorder(NoActionNeeded)

	if err := r.add(Strong[category, note](sub), catInput, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.remove(sub.ID(), catInput) {
		t.Fatal("expected removal")
	}
	if _, ok := r.channels[catInput]; ok {
		t.Error("expected empty category dropped from table")
	}
}

func TestRegistry_RemoveAll(t *testing.T) {
	r := newRegistry[category, note](false)
	sub := newRecorder(NoActionNeeded)
	other := newRecorder(NoActionNeeded)

	for _, c := range []category{catInput, catWindow} {
		if err := r.add(Strong[category, note](sub), c, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := r.add(Strong[category, note](other), catInput, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.removeAll(sub.ID()); got != 2 {
		t.Errorf("expected 2 removals, got %d", got)
	}
	if !r.subscribed(other.ID(), catInput) {
		t.Error("expected other subscriber untouched")
	}
}

func TestRegistry_Snapshot_Isolated(t *testing.T) {
	r := newRegistry[category, note](false)
	first := newRecorder(NoActionNeeded)
	second := newRecorder(NoActionNeeded)

	if err := r.add(Strong[category, note](first), catInput, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.add(Strong[category, note](second), catInput, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := r.snapshot(catInput)
	r.remove(first.ID(), catInput)

	// The snapshot reflects the sequence as of when it was taken.
	if len(snap) != 2 {
		t.Fatalf("expected snapshot of 2 entries, got %d", len(snap))
	}
	if snap[0].id != first.ID() {
		t.Error("expected snapshot to keep removed entry")
	}
	if got := r.count(catInput); got != 1 {
		t.Errorf("expected 1 live entry, got %d", got)
	}
}
