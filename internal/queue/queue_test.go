package queue

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestInMemoryQueueDelivers(t *testing.T) {
	q := NewInMemoryQueue()

	var wg sync.WaitGroup
	wg.Add(1)

	var got any
	q.Subscribe("test_topic", func(payload any) error {
		got = payload
		wg.Done()
		return nil
	})

	if err := q.Publish("test_topic", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wg.Wait()

	if got != "hello" {
		t.Errorf("expected payload %q, got %v", "hello", got)
	}
}

func TestInMemoryQueueNoSubscribers(t *testing.T) {
	q := NewInMemoryQueue()

	if err := q.Publish("empty_topic", "hello"); err == nil {
		t.Error("expected error publishing to empty topic")
	}
}

func TestInMemoryQueueRetries(t *testing.T) {
	q := NewInMemoryQueue()

	var mu sync.Mutex
	attempts := 0
	done := make(chan struct{})

	q.Subscribe("retry_topic", func(payload any) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts < 2 {
			return fmt.Errorf("transient failure")
		}
		close(done)
		return nil
	})

	if err := q.Publish("retry_topic", "job"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job never succeeded after retry")
	}

	mu.Lock()
	defer mu.Unlock()
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

type recordingArchive struct {
	mu     sync.Mutex
	events []SendEvent
	done   chan struct{}
}

func (a *recordingArchive) ArchiveSendEvent(ev SendEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
	close(a.done)
	return nil
}

func TestStartArchiveSubscriber(t *testing.T) {
	q := NewInMemoryQueue()
	archive := &recordingArchive{done: make(chan struct{})}

	StartArchiveSubscriber(q, archive)

	// subscriber registration happens in a goroutine
	deadline := time.Now().Add(2 * time.Second)
	var err error
	for {
		ev := NewSendEvent("summer_123", "alice", "initial", "meme", "hey!", time.Now())
		if err = q.Publish(TopicSends, ev); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-archive.done:
	case <-time.After(5 * time.Second):
		t.Fatal("event never archived")
	}

	archive.mu.Lock()
	defer archive.mu.Unlock()
	if len(archive.events) != 1 || archive.events[0].Username != "alice" {
		t.Errorf("unexpected archived events: %+v", archive.events)
	}
	if archive.events[0].EventID == "" {
		t.Error("event ID missing")
	}
}
