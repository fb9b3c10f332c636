package pubsub

import "testing"

func TestForward_PublishEvent(t *testing.T) {
	b := New[category, note]()
	sub := newRecorder(NoActionNeeded)
	if err := b.Subscribe(sub, catInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var pub Forward[category, note]
	sum := pub.PublishEvent(note{cat: catInput}, b)

	if sum.Invoked != 1 {
		t.Errorf("expected 1 invocation, got %d", sum.Invoked)
	}
	if len(sub.events) != 1 {
		t.Errorf("expected event delivered, got %d", len(sub.events))
	}
}

func TestPublisherFunc_PublishEvent(t *testing.T) {
	b := New[category, note]()
	sub := newRecorder(NoActionNeeded)
	if err := b.Subscribe(sub, catInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var before int
	pub := PublisherFunc[category, note](func(event note, bus Dispatcher[category, note]) Summary {
		before++
		return bus.Publish(event)
	})

	sum := pub.PublishEvent(note{cat: catInput}, b)

	if before != 1 {
		t.Errorf("expected wrapper to run once, got %d", before)
	}
	if sum.Invoked != 1 {
		t.Errorf("expected 1 invocation, got %d", sum.Invoked)
	}
}

func TestFiltered_PublishEvent(t *testing.T) {
	b := New[category, note]()
	sub := newRecorder(NoActionNeeded)
	if err := b.Subscribe(sub, catInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Subscribe(newRecorder(NoActionNeeded), catAudio); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pub := Filtered[category, note](Forward[category, note]{}, ByCategory[category, note](catInput))

	if sum := pub.PublishEvent(note{cat: catInput}, b); sum.Invoked != 1 {
		t.Errorf("expected allowed category delivered, got %d invocations", sum.Invoked)
	}
	if sum := pub.PublishEvent(note{cat: catAudio}, b); sum.Invoked != 0 {
		t.Errorf("expected filtered category dropped, got %d invocations", sum.Invoked)
	}
}

func TestFiltered_NilPredicateAllowsAll(t *testing.T) {
	b := New[category, note]()
	sub := newRecorder(NoActionNeeded)
	if err := b.Subscribe(sub, catInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pub := Filtered[category, note](Forward[category, note]{}, nil)

	if sum := pub.PublishEvent(note{cat: catInput}, b); sum.Invoked != 1 {
		t.Errorf("expected nil predicate to allow everything, got %d invocations", sum.Invoked)
	}
}

func TestPredicate_Combinators(t *testing.T) {
	isInput := ByCategory[category, note](catInput)
	hasMsg := Predicate[category, note](func(e note) bool { return e.msg != "" })

	tests := []struct {
		name  string
		pred  Predicate[category, note]
		event note
		want  bool
	}{
		{"all pass", All(isInput, hasMsg), note{cat: catInput, msg: "x"}, true},
		{"all fail one", All(isInput, hasMsg), note{cat: catInput}, false},
		{"all empty", All[category, note](), note{cat: catAudio}, true},
		{"any pass", Any(isInput, hasMsg), note{cat: catAudio, msg: "x"}, true},
		{"any fail", Any(isInput, hasMsg), note{cat: catAudio}, false},
		{"any empty", Any[category, note](), note{cat: catInput}, false},
		{"not", Not(isInput), note{cat: catAudio}, true},
		{"not inverted", Not(isInput), note{cat: catInput}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.event); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
