package domain

// MedicalRecord is one report belonging to exactly one patient.
// Summary and Tags are computed server-side asynchronously, which is why a
// freshly created record is never appended locally: the cache is invalidated
// and refetched instead.
type MedicalRecord struct {
	// Name is the report's display name.
	Name string `json:"name"`
	// URL points at the uploaded report document.
	URL string `json:"url"`
	// RecordType categorises the report (lab result, prescription, scan...).
	RecordType string `json:"record_type"`
	// Date is the collaborator-formatted report date.
	Date string `json:"date"`
	// Summary is the server-computed condensed description. May be empty
	// while the collaborator is still processing the report.
	Summary string `json:"summary,omitempty"`
	// Tags are server-computed keywords. May be empty.
	Tags []string `json:"tags,omitempty"`
}

// NewRecord is the payload for submitting a report for a patient.
type NewRecord struct {
	PatientID  int    `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	RecordType string `json:"record_type"`
}
