package intake

import "time"

// Ward is the routing classification assigned to a session.
type Ward string

const (
	WardUnset        Ward = ""
	WardGeneral      Ward = "general"
	WardEmergency    Ward = "emergency"
	WardMentalHealth Ward = "mental_health"
)

// Field identifies which patient detail the next message answers.
type Field string

const (
	FieldNone  Field = ""
	FieldName  Field = "patient_name"
	FieldAge   Field = "patient_age"
	FieldQuery Field = "patient_query"
)

// Session captures one in-progress intake conversation.
//
// Zero values mean "not collected yet". PatientAge zero is a safe absence
// sentinel because the accepted range excludes it (0 < age < 150).
type Session struct {
	ID           string    `json:"id"`
	Ward         Ward      `json:"ward"`
	PatientName  string    `json:"patientName,omitempty"`
	PatientAge   int       `json:"patientAge,omitempty"`
	PatientQuery string    `json:"patientQuery,omitempty"`
	Awaiting     Field     `json:"awaiting,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Complete reports whether every patient field has been collected.
func (s Session) Complete() bool {
	return s.PatientName != "" && s.PatientAge != 0 && s.PatientQuery != ""
}
