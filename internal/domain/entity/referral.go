package entity

import "time"

// Referral es el código de invitación de un usuario (uno por usuario).
type Referral struct {
	ID        string
	UserID    string
	RefCode   string
	CreatedAt time.Time
}
