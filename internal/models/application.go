package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationForm is the static scheme application form. All fields are
// free text.
type ApplicationForm struct {
	Name        string `json:"name" form:"name"`
	DateOfBirth string `json:"date_of_birth" form:"dob"`
	PassingYear string `json:"passing_year" form:"passing_year"`
	Scheme      string `json:"scheme,omitempty" form:"scheme"`
}

// ApplicationReceipt acknowledges an accepted form. Nothing is stored or
// forwarded; the reference only lets the user quote the confirmation.
type ApplicationReceipt struct {
	Reference   uuid.UUID `json:"reference"`
	Scheme      string    `json:"scheme,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewApplicationReceipt builds a receipt with a fresh reference.
func NewApplicationReceipt(scheme, message string) ApplicationReceipt {
	return ApplicationReceipt{
		Reference:   uuid.New(),
		Scheme:      scheme,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	}
}
