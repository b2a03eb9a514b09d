package pubsub

import (
	"reflect"
	"testing"
)

func TestSubscribeReplaysCurrentSnapshotOnce(t *testing.T) {
	f := NewFeed[string]()

	var calls [][]string
	unsub := f.Subscribe(func(snap []string) {
		calls = append(calls, snap)
	})
	defer unsub()

	if len(calls) != 1 {
		t.Fatalf("expected exactly one replay on subscribe, got %d", len(calls))
	}
	if calls[0] == nil {
		t.Fatal("replayed snapshot must be an empty slice, not nil")
	}
	if len(calls[0]) != 0 {
		t.Fatalf("expected empty snapshot, got %v", calls[0])
	}
}

func TestSubscribeReplaysLatestPublish(t *testing.T) {
	f := NewFeed[int]()
	f.Publish([]int{1, 2, 3})

	var got []int
	unsub := f.Subscribe(func(snap []int) { got = snap })
	defer unsub()

	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("expected replay of latest snapshot, got %v", got)
	}
}

func TestPublishFansOutToAllSubscribersInOrder(t *testing.T) {
	f := NewFeed[int]()

	var order []string
	u1 := f.Subscribe(func([]int) { order = append(order, "a") })
	defer u1()
	u2 := f.Subscribe(func([]int) { order = append(order, "b") })
	defer u2()

	order = nil
	f.Publish([]int{42})

	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Fatalf("expected delivery in registration order, got %v", order)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	f := NewFeed[int]()

	count := 0
	unsub := f.Subscribe(func([]int) { count++ })
	if count != 1 {
		t.Fatalf("expected replay call, got %d", count)
	}

	f.Publish([]int{1})
	if count != 2 {
		t.Fatalf("expected publish delivery, got %d", count)
	}

	unsub()
	f.Publish([]int{2})
	f.Publish([]int{3})
	if count != 2 {
		t.Fatalf("unsubscribed callback was invoked again, count=%d", count)
	}

	// A second unsubscribe must be harmless.
	unsub()
}

func TestPublishedSnapshotIsACopy(t *testing.T) {
	f := NewFeed[int]()
	src := []int{1, 2}
	f.Publish(src)
	src[0] = 99

	if got := f.Snapshot(); got[0] != 1 {
		t.Fatalf("feed must retain its own copy, got %v", got)
	}

	got := f.Snapshot()
	got[0] = 77
	if again := f.Snapshot(); again[0] != 1 {
		t.Fatalf("Snapshot must hand out copies, got %v", again)
	}
}
