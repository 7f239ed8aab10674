package dto

import (
	"strings"

	"absensiku_backend/internals/features/registrations/store"
)

/* =========================================================
   CREATE (form pendaftaran)
   name/email/number semuanya wajib; validasi format lebih
   jauh ada di constraint field form klien
   ========================================================= */

type CreateRegistrationRequest struct {
	Name   string `json:"name" form:"name" validate:"required,min=1,max=255"`
	Email  string `json:"email" form:"email" validate:"required,email,max=255"`
	Number string `json:"number" form:"number" validate:"required,min=1,max=30"`
}

func (r *CreateRegistrationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Number = strings.TrimSpace(r.Number)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type RegistrationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Number    string `json:"number"`
	Timestamp string `json:"timestamp"`
}

func FromRegistration(r store.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Number:    r.Number,
		Timestamp: r.Timestamp,
	}
}

func FromRegistrations(rows []store.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRegistration(r))
	}
	return out
}
