// Package sink delivers completed intake records downstream: a durable
// insert into Supabase followed by a webhook notification to the ward.
package sink

import (
	"context"
	"errors"
	"log"

	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

// ErrStorageUnconfigured is returned by Persist when no Supabase credentials
// were provided at startup.
var ErrStorageUnconfigured = errors.New("supabase storage is not configured")

// Sink pairs durable storage with ward notification. A nil notifier is a
// valid configuration and degrades Notify to a logged no-op; storage has no
// such fallback because persistence is the point of the intake flow.
type Sink struct {
	storage  *Supabase
	notifier *Webhook
}

// New assembles the record sink. Either collaborator may be nil.
func New(storage *Supabase, notifier *Webhook) *Sink {
	return &Sink{storage: storage, notifier: notifier}
}

// Persist writes the record to durable storage.
func (s *Sink) Persist(ctx context.Context, rec intake.Record) error {
	if s.storage == nil {
		return ErrStorageUnconfigured
	}
	return s.storage.Insert(ctx, rec)
}

// Notify forwards the record to the ward webhook, skipping silently when no
// webhook is configured.
func (s *Sink) Notify(ctx context.Context, rec intake.Record) error {
	if s.notifier == nil {
		log.Println("[sink] webhook not configured, skipping ward notification")
		return nil
	}
	return s.notifier.Send(ctx, rec)
}
