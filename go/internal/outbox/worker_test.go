package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type memoryStore struct {
	mu     sync.Mutex
	events []Event
	sent   map[uuid.UUID]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sent: make(map[uuid.UUID]bool)}
}

func (s *memoryStore) add(eventType string) Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	event := Event{ID: uuid.New(), TournamentID: 1, EventType: eventType, Payload: []byte(`{}`)}
	s.events = append(s.events, event)
	return event
}

func (s *memoryStore) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, event := range s.events {
		if s.sent[event.ID] {
			continue
		}
		out = append(out, event)
		if len(out) == int(limit) {
			break
		}
	}
	return out, nil
}

func (s *memoryStore) MarkSent(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[id] = true
	return nil
}

func (s *memoryStore) unsent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events) - len(s.sent)
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []Event
	failOn    map[string]bool
	ch        chan Event
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{failOn: make(map[string]bool), ch: make(chan Event, 16)}
}

func (p *recordingPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failOn[event.EventType] {
		return errors.New("bus unavailable")
	}
	p.published = append(p.published, event)
	p.ch <- event
	return nil
}

func waitForEvent(t *testing.T, ch <-chan Event, want uuid.UUID) {
	t.Helper()
	select {
	case got := <-ch:
		if got.ID != want {
			t.Fatalf("expected event %s, got %s", want, got.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event %s", want)
	}
}

func TestDrain_PublishesAndMarksSent(t *testing.T) {
	store := newMemoryStore()
	for i := 0; i < 5; i++ {
		store.add("tournament.created")
	}
	pub := newRecordingPublisher()
	w := NewWorker(store, pub, Config{PollInterval: time.Second, BatchSize: 2})

	published, err := w.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain returned error: %v", err)
	}
	if published != 5 {
		t.Errorf("expected 5 published events, got %d", published)
	}
	if store.unsent() != 0 {
		t.Errorf("expected no unsent events, got %d", store.unsent())
	}
}

func TestDrain_FailedEventsStayUnsent(t *testing.T) {
	store := newMemoryStore()
	store.add("tournament.created")
	store.add("tournament.team_added")
	store.add("tournament.created")
	pub := newRecordingPublisher()
	pub.failOn["tournament.team_added"] = true
	w := NewWorker(store, pub, Config{PollInterval: time.Second, BatchSize: 10})

	published, err := w.Drain(context.Background())
	if err == nil {
		t.Fatal("expected aggregated publish error")
	}
	if published != 2 {
		t.Errorf("expected 2 published events, got %d", published)
	}
	if store.unsent() != 1 {
		t.Errorf("expected the failed event to stay unsent, got %d unsent", store.unsent())
	}
}

func TestRun_DrainsOnStartupTickAndWake(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewFakeClock()
	store := newMemoryStore()
	pub := newRecordingPublisher()
	w := NewWorker(store, pub, Config{PollInterval: time.Minute, BatchSize: 10})
	w.clock = clock

	first := store.add("tournament.created")

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitForEvent(t, pub.ch, first.ID)

	second := store.add("tournament.renamed")
	blockCtx, blockCancel := context.WithTimeout(ctx, 2*time.Second)
	defer blockCancel()
	if err := clock.BlockUntilContext(blockCtx, 1); err != nil {
		t.Fatalf("worker never started its ticker: %v", err)
	}
	clock.Advance(time.Minute)
	waitForEvent(t, pub.ch, second.ID)

	third := store.add("tournament.deleted")
	w.Wake()
	waitForEvent(t, pub.ch, third.ID)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
