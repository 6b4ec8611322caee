package domain

// PatientSummary is one entry in the searchable patient directory.
// Immutable once fetched; the directory is replaced wholesale on every
// successful fetch, never merged field by field.
type PatientSummary struct {
	// ID is the collaborator-assigned patient id.
	ID int `json:"id"`
	// Name is the patient's full name.
	Name string `json:"name"`
	// Age in years.
	Age int `json:"age"`
	// Gender as reported by the collaborator.
	Gender string `json:"gender"`
}

// NewPatient is the payload for creating a patient, keyed by the
// signed-in doctor's id.
type NewPatient struct {
	DoctorID string `json:"doctor"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}
