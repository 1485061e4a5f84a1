package domain

import "time"

type Reservation struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	ArrivalDate   time.Time  `json:"arrival_date"`
	DepartureDate time.Time  `json:"departure_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	Version       int        `json:"-"`
}

func (r *Reservation) IsCancelled() bool {
	return r.CancelledAt != nil
}

// Nights is the stay length: the departure date itself is not occupied.
func (r *Reservation) Nights() int {
	return DaysBetween(r.ArrivalDate, r.DepartureDate)
}

type CreateReservationInput struct {
	Name          string
	Email         string
	ArrivalDate   time.Time
	DepartureDate time.Time
}

// ReservationPatch carries a partial update: nil fields keep the stored value.
type ReservationPatch struct {
	Name          *string
	Email         *string
	ArrivalDate   *time.Time
	DepartureDate *time.Time
}
