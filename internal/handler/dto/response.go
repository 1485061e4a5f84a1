package dto

import (
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
)

type ReservationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		ArrivalDate:   r.ArrivalDate.Format(domain.DateLayout),
		DepartureDate: r.DepartureDate.Format(domain.DateLayout),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
	if r.CancelledAt != nil {
		resp.CancelledAt = r.CancelledAt.Format(time.RFC3339)
	}
	return resp
}
