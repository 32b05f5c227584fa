package intake

// Record is the immutable snapshot submitted to storage and the ward webhook
// once a session is complete. Field names follow the patient_sessions table.
type Record struct {
	PatientName  string `json:"patient_name"`
	PatientAge   int    `json:"patient_age"`
	PatientQuery string `json:"patient_query"`
	Ward         Ward   `json:"ward"`
}

// NewRecord snapshots the final state of a completed session.
func NewRecord(s Session) Record {
	return Record{
		PatientName:  s.PatientName,
		PatientAge:   s.PatientAge,
		PatientQuery: s.PatientQuery,
		Ward:         s.Ward,
	}
}
