package dto

import "time"

// CreateComplaintRequest body para POST /api/complaints.
type CreateComplaintRequest struct {
	OrderID     string `json:"order_id" validate:"required"`
	Description string `json:"description" validate:"required"`
	Whatsapp    string `json:"whatsapp" validate:"required"`
}

// ComplaintFilterRequest filtros de listado (query params).
type ComplaintFilterRequest struct {
	Status    string `query:"status"`
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
}

// ComplaintResponse reclamo en listados.
type ComplaintResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ServiceName string    `json:"service_name,omitempty"`
	Offer       string    `json:"offer,omitempty"`
	OrderDate   time.Time `json:"order_date"`
	Description string    `json:"description"`
	Whatsapp    string    `json:"whatsapp"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ReferralResponse código de invitación del usuario.
type ReferralResponse struct {
	RefCode    string `json:"ref_code"`
	InviteLink string `json:"invite_link"`
}
