package sink

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

func TestWebhookSend(t *testing.T) {
	var got intake.Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, 5*time.Second)
	if err := hook.Send(context.Background(), testRecord()); err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if got != testRecord() {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestWebhookSendRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, 5*time.Second)
	if err := hook.Send(context.Background(), testRecord()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestSinkNotifyWithoutWebhookIsNoop(t *testing.T) {
	s := New(nil, nil)
	if err := s.Notify(context.Background(), testRecord()); err != nil {
		t.Fatalf("expected unconfigured notify to succeed, got %v", err)
	}
}

func TestSinkPersistWithoutStorageFails(t *testing.T) {
	s := New(nil, nil)
	if err := s.Persist(context.Background(), testRecord()); err != ErrStorageUnconfigured {
		t.Fatalf("expected ErrStorageUnconfigured, got %v", err)
	}
}
