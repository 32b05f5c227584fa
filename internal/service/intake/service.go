package intake

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakfieldhealth/reception/backend/internal/analysis/extract"
	"github.com/oakfieldhealth/reception/backend/internal/analysis/triage"
	"github.com/oakfieldhealth/reception/backend/internal/model/intake"
)

// RecordSink is the downstream contract invoked once per completed session.
// Persist must succeed before Notify is attempted.
type RecordSink interface {
	Persist(ctx context.Context, rec intake.Record) error
	Notify(ctx context.Context, rec intake.Record) error
}

// Fixed reception replies.
const (
	promptName  = "May I have the patient's full name, please?"
	promptAge   = "Could you provide the patient's age in years?"
	promptQuery = "Could you briefly describe the patient's concern or symptoms?"

	replyAgeRetry  = "I didn't catch the age—please provide the patient's age in years."
	replyCompleted = "Thank you — the patient's details have been recorded and sent to the ward."
)

// Clarification order is fixed: name first, then age, then query. One
// question per turn.
var questions = []struct {
	field   intake.Field
	prompt  string
	missing func(intake.Session) bool
}{
	{intake.FieldName, promptName, func(s intake.Session) bool { return s.PatientName == "" }},
	{intake.FieldAge, promptAge, func(s intake.Session) bool { return s.PatientAge == 0 }},
	{intake.FieldQuery, promptQuery, func(s intake.Session) bool { return s.PatientQuery == "" }},
}

// Result is the outcome of one conversational turn.
type Result struct {
	SessionID string
	Reply     string
	Completed bool
}

// Service is the intake flow manager: it advances one session per call by
// exactly one step, composing the triage classifier, the field heuristics
// and the session store, and hands completed records to the sink.
type Service struct {
	store *Store
	sink  RecordSink
}

// NewService wires the flow manager to its session store and record sink.
func NewService(store *Store, sink RecordSink) *Service {
	return &Service{store: store, sink: sink}
}

// Process interprets one message for a session and produces the reply.
//
// The mutated session is committed back to the store only when the call
// returns, so an abandoned request leaves no partial field writes. When the
// session is awaiting a specific field the message is taken as its answer;
// otherwise details are inferred opportunistically and the ward classified.
// Once all fields are present the record is persisted and the ward notified,
// and only after both succeed is the session dropped.
func (s *Service) Process(ctx context.Context, sessionID, message string) Result {
	message = strings.TrimSpace(message)

	e := s.store.checkout(sessionID)
	defer e.mu.Unlock()
	sess := e.session

	if sess.Awaiting != intake.FieldNone {
		switch sess.Awaiting {
		case intake.FieldAge:
			age, ok := extract.Age(message)
			if !ok {
				// Re-ask without touching state; Awaiting stays set.
				return Result{SessionID: sessionID, Reply: replyAgeRetry}
			}
			sess.PatientAge = age
		case intake.FieldName:
			sess.PatientName = message
		case intake.FieldQuery:
			sess.PatientQuery = message
		}
		sess.Awaiting = intake.FieldNone
	} else {
		fillMissing(&sess, message)
		if sess.Ward == intake.WardUnset {
			// First classification wins; the ward is never re-evaluated.
			sess.Ward = triage.Classify(message)
		}
	}

	for _, q := range questions {
		if !q.missing(sess) {
			continue
		}
		sess.Awaiting = q.field
		e.session = sess
		return Result{SessionID: sessionID, Reply: "Thank you. " + q.prompt}
	}

	if err := s.submit(ctx, intake.NewRecord(sess)); err != nil {
		// Keep the fully populated session so the next turn can retry
		// submission without re-asking anything.
		e.session = sess
		reply := fmt.Sprintf("All details collected, but there was an error submitting the data: %v", err)
		return Result{SessionID: sessionID, Reply: reply}
	}

	s.store.remove(sessionID, e)
	return Result{SessionID: sessionID, Reply: replyCompleted, Completed: true}
}

// Snapshot returns the current state of a live session, if any.
func (s *Service) Snapshot(_ context.Context, sessionID string) (intake.Session, bool) {
	return s.store.peek(sessionID)
}

func (s *Service) submit(ctx context.Context, rec intake.Record) error {
	if err := s.sink.Persist(ctx, rec); err != nil {
		return err
	}
	return s.sink.Notify(ctx, rec)
}

// fillMissing lifts still-missing details out of a free-form message. Fields
// already collected are never overwritten.
func fillMissing(sess *intake.Session, message string) {
	if sess.PatientName == "" {
		if name, ok := extract.Name(message); ok {
			sess.PatientName = name
		}
	}
	if sess.PatientAge == 0 {
		if age, ok := extract.Age(message); ok {
			sess.PatientAge = age
		}
	}
	if sess.PatientQuery == "" {
		if query, ok := extract.Query(message); ok {
			sess.PatientQuery = query
		}
	}
}
