package dto

type CreateReservationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
}

type UpdateReservationRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	ArrivalDate   *string `json:"arrival_date"`
	DepartureDate *string `json:"departure_date"`
}
