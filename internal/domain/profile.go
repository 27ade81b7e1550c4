package domain

import "time"

// ClientProfile is the persisted identity/contact record for a user,
// independent of any single application. Created on first successful
// registration, updated in place on re-registration, never deleted
// automatically.
type ClientProfile struct {
	UserID              int64     `json:"user_id"`
	Username            string    `json:"username,omitempty"`
	FullName            string    `json:"full_name"`
	PhoneNumber         string    `json:"phone_number"`
	PassportNumber      string    `json:"passport_series_number"`
	PassportIssuedBy    string    `json:"passport_issued_by"`
	PassportIssueDate   string    `json:"passport_date_of_issue"`
	RegistrationAddress string    `json:"registration_address"`
	RegisteredAt        time.Time `json:"registered_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// IsComplete reports whether every field required to submit an
// application is populated.
func (p *ClientProfile) IsComplete() bool {
	return p != nil &&
		p.FullName != "" &&
		p.PhoneNumber != "" &&
		p.PassportNumber != "" &&
		p.PassportIssuedBy != "" &&
		p.PassportIssueDate != "" &&
		p.RegistrationAddress != ""
}

// ProfileUpdate carries fields to merge into an existing profile.
// Empty fields are preserved as-is in the store, never overwritten.
type ProfileUpdate struct {
	Username            string
	FullName            string
	PhoneNumber         string
	PassportNumber      string
	PassportIssuedBy    string
	PassportIssueDate   string
	RegistrationAddress string
}
