package domain

// DoctorRecord is a doctor registration as held by the external wallet
// registry. The registry itself is an external collaborator; this client
// only reads registrations and submits new ones.
type DoctorRecord struct {
	// Address is the wallet address keying the registration.
	Address string `json:"address"`
	// IsRegistered reports whether the address holds a registration.
	IsRegistered bool `json:"isRegistered"`
	// Name is the registered doctor's name.
	Name string `json:"name"`
	// Specialization is the registered specialty.
	Specialization string `json:"specialization"`
	// LicenseNumber is the registered medical license.
	LicenseNumber string `json:"licenseNumber"`
}
