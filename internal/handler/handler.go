package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/luiscarbonel1991/campsite/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	FindAvailability(ctx context.Context, from, to *time.Time) (map[string]bool, error)
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, id string, patch domain.ReservationPatch) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
}

type Handler struct {
	reservationService ReservationSvc
}

func NewHandler(reservationService ReservationSvc) *Handler {
	return &Handler{reservationService: reservationService}
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	from, ok := h.optionalDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := h.optionalDateQuery(c, "to")
	if !ok {
		return
	}

	availability, err := h.reservationService.FindAvailability(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	arrival, ok := h.parseDateField(c, req.ArrivalDate, "arrival_date")
	if !ok {
		return
	}
	departure, ok := h.parseDateField(c, req.DepartureDate, "departure_date")
	if !ok {
		return
	}

	input := domain.CreateReservationInput{
		Name:          req.Name,
		Email:         req.Email,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.ReservationPatch{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.ArrivalDate != nil {
		arrival, ok := h.parseDateField(c, *req.ArrivalDate, "arrival_date")
		if !ok {
			return
		}
		patch.ArrivalDate = &arrival
	}
	if req.DepartureDate != nil {
		departure, ok := h.parseDateField(c, *req.DepartureDate, "departure_date")
		if !ok {
			return
		}
		patch.DepartureDate = &departure
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "OK",
		Message: "reservation cancelled successfully",
	})
}

// optionalDateQuery parses a YYYY-MM-DD query param; nil means absent.
func (h *Handler) optionalDateQuery(c *ginext.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + name + " format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &parsed, true
}

func (h *Handler) parseDateField(c *ginext.Context, raw, name string) (time.Time, bool) {
	if raw == "" {
		// the validation gate reports the missing field
		return time.Time{}, true
	}
	parsed, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + name + " format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return parsed, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMissingParameter),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidStayRange),
		errors.Is(err, domain.ErrInvalidArrivalDate),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrReservationCancelled),
		errors.Is(err, domain.ErrAlreadyCancelled):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationAlreadyExists),
		errors.Is(err, domain.ErrCapacityExhausted),
		errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTooHighDemand):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
