package models

// Guest holds the contact details collected once per session.
type Guest struct {
	Name           string
	ContactNumber  string `validate:"contact_number"`
	Email          string `validate:"guest_email"`
	SpecialRequest string
}
