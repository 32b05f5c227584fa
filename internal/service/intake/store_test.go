package intake

import (
	"sync"
	"testing"
)

func TestCheckoutCreatesSessionOnFirstUse(t *testing.T) {
	store := NewStore()

	e := store.checkout("abc")
	if e.session.ID != "abc" {
		t.Fatalf("unexpected session id %q", e.session.ID)
	}
	if e.session.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	e.mu.Unlock()

	if store.Len() != 1 {
		t.Fatalf("expected one live session, got %d", store.Len())
	}
}

func TestRemoveThenCheckoutStartsOver(t *testing.T) {
	store := NewStore()

	e := store.checkout("abc")
	e.session.PatientName = "John Doe"
	store.remove("abc", e)
	e.mu.Unlock()

	fresh := store.checkout("abc")
	defer fresh.mu.Unlock()
	if fresh.session.PatientName != "" {
		t.Fatal("expected a fresh session after removal")
	}
}

func TestCheckoutSerializesSameSession(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := store.checkout("same")
			counter++ // safe: entry lock serializes this
			e.mu.Unlock()
		}()
	}
	wg.Wait()

	if counter != 32 {
		t.Fatalf("expected 32 serialized checkouts, got %d", counter)
	}
	if store.Len() != 1 {
		t.Fatalf("expected a single session, got %d", store.Len())
	}
}

func TestPeekMissingSession(t *testing.T) {
	store := NewStore()
	if _, ok := store.peek("nope"); ok {
		t.Fatal("expected no session")
	}
}
