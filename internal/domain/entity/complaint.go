package entity

import "time"

// Estados de un reclamo.
const (
	ComplaintStatusPending  = "pending"
	ComplaintStatusResolved = "resolved"
)

// Complaint es un reclamo del cliente sobre una orden existente.
type Complaint struct {
	ID          string
	UserID      string
	OrderID     string // id interno de la orden reclamada
	ServiceName string // copiado del primer ítem de la orden
	Offer       string // descriptor de la oferta reclamada
	OrderDate   time.Time
	Description string
	Whatsapp    string
	Status      string // pending | resolved
	SubmittedAt time.Time
}
