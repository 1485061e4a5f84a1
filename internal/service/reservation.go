package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/luiscarbonel1991/campsite/internal/service/ports"
	"github.com/luiscarbonel1991/campsite/internal/validation"
	"github.com/wb-go/wbf/logger"
)

// lockAvailabilityModify serializes every capacity-mutating operation across
// all instances. One coarse key: contenders queue instead of racing.
const lockAvailabilityModify = "lock_availability_modify"

const (
	increaseAvailability = 1
	decreaseAvailability = -1
)

// Rules are the configured reservation bounds, see config.CampsiteConfig.
type Rules struct {
	MaxAdvanceDays int
	MinStayDays    int
	MaxStayDays    int
	MinLeadDays    int
	MaxLeadDays    int
	LockTimeout    time.Duration
}

type ReservationService struct {
	reservations ports.ReservationRepo
	ledger       ports.Ledger
	locker       ports.Locker
	rules        Rules
	logger       logger.Logger
}

func NewReservationService(
	reservations ports.ReservationRepo,
	ledger ports.Ledger,
	locker ports.Locker,
	rules Rules,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		ledger:       ledger,
		locker:       locker,
		rules:        rules,
		logger:       logger,
	}
}

// FindAvailability reports per-date bookability for [from, to]. Both bounds
// default together to tomorrow plus the advance horizon; a single bound is a
// missing parameter. Read-only, so no lock is taken.
func (s *ReservationService) FindAvailability(ctx context.Context, from, to *time.Time) (map[string]bool, error) {
	switch {
	case from == nil && to == nil:
		f := domain.Day(time.Now().UTC()).AddDate(0, 0, 1)
		t := f.AddDate(0, 0, s.rules.MaxAdvanceDays)
		from, to = &f, &t
	case from == nil:
		return nil, fmt.Errorf("%w: from", domain.ErrMissingParameter)
	case to == nil:
		return nil, fmt.Errorf("%w: to", domain.ErrMissingParameter)
	}

	if err := validation.RequireOrderedRange(*from, *to, "from", "to"); err != nil {
		return nil, err
	}
	if err := validation.RequireBookingWindow(*from, *to, s.validBookingWindow()); err != nil {
		return nil, err
	}

	days, err := s.ledger.Query(ctx, *from, *to)
	if err != nil {
		return nil, err
	}

	res := make(map[string]bool, len(days))
	for _, day := range days {
		res[day.Date.Format(domain.DateLayout)] = day.Bookable()
	}

	return res, nil
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	// fixed rule order: presence, range ordering, stay length, window, email format
	if err := validation.RequireNonEmpty(input.Name, "name"); err != nil {
		return nil, err
	}
	if err := validation.RequireNonEmpty(input.Email, "email"); err != nil {
		return nil, err
	}
	arrival := domain.Day(input.ArrivalDate)
	departure := domain.Day(input.DepartureDate)
	if err := s.validateStay(arrival, departure); err != nil {
		return nil, err
	}
	if err := validation.RequireValidEmail(input.Email, "email"); err != nil {
		return nil, err
	}
	if err := s.checkNoActiveOverlap(ctx, input.Email, arrival, departure, ""); err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, lockAvailabilityModify, s.rules.LockTimeout)
	if err != nil {
		return nil, err
	}
	defer release()

	if err = s.ledger.Adjust(ctx, arrival, departure, decreaseAvailability); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
	}
	if err = s.reservations.Create(ctx, res); err != nil {
		s.rollbackAdjust(ctx, arrival, departure, increaseAvailability)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("email", res.Email),
		logger.String("arrival", arrival.Format(domain.DateLayout)),
		logger.String("departure", departure.Format(domain.DateLayout)),
	)

	return res, nil
}

func (s *ReservationService) Update(ctx context.Context, id string, patch domain.ReservationPatch) (*domain.Reservation, error) {
	found, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found.IsCancelled() {
		return nil, fmt.Errorf("%w (cancelled at %s)",
			domain.ErrReservationCancelled, found.CancelledAt.Format(time.RFC3339))
	}

	arrival := found.ArrivalDate
	departure := found.DepartureDate
	email := found.Email
	if patch.ArrivalDate != nil {
		arrival = domain.Day(*patch.ArrivalDate)
	}
	if patch.DepartureDate != nil {
		departure = domain.Day(*patch.DepartureDate)
	}
	if patch.Email != nil {
		email = *patch.Email
	}

	datesChanged := !arrival.Equal(found.ArrivalDate) || !departure.Equal(found.DepartureDate)
	emailChanged := email != found.Email

	// same rule order as Create: the stay checks run before the email format check
	if datesChanged {
		if err = s.validateStay(arrival, departure); err != nil {
			return nil, err
		}
	}
	if emailChanged {
		if err = validation.RequireValidEmail(email, "email"); err != nil {
			return nil, err
		}
	}
	if datesChanged || emailChanged {
		if err = s.checkNoActiveOverlap(ctx, email, arrival, departure, found.ID); err != nil {
			return nil, err
		}
	}

	if datesChanged {
		release, lockErr := s.locker.Acquire(ctx, lockAvailabilityModify, s.rules.LockTimeout)
		if lockErr != nil {
			return nil, lockErr
		}
		defer release()

		oldArrival, oldDeparture := found.ArrivalDate, found.DepartureDate
		if err = s.ledger.Adjust(ctx, oldArrival, oldDeparture, increaseAvailability); err != nil {
			return nil, err
		}
		if err = s.ledger.Adjust(ctx, arrival, departure, decreaseAvailability); err != nil {
			s.rollbackAdjust(ctx, oldArrival, oldDeparture, decreaseAvailability)
			return nil, err
		}

		if persistErr := s.persistUpdate(ctx, found, patch, arrival, departure, email); persistErr != nil {
			s.rollbackAdjust(ctx, arrival, departure, increaseAvailability)
			s.rollbackAdjust(ctx, oldArrival, oldDeparture, decreaseAvailability)
			return nil, persistErr
		}
	} else if err = s.persistUpdate(ctx, found, patch, arrival, departure, email); err != nil {
		return nil, err
	}

	s.logger.Info("reservation updated",
		logger.String("reservation_id", found.ID),
		logger.String("arrival", arrival.Format(domain.DateLayout)),
		logger.String("departure", departure.Format(domain.DateLayout)),
	)

	return found, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	found, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if found.IsCancelled() {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyCancelled, id)
	}

	release, err := s.locker.Acquire(ctx, lockAvailabilityModify, s.rules.LockTimeout)
	if err != nil {
		return err
	}
	defer release()

	if err = s.ledger.Adjust(ctx, found.ArrivalDate, found.DepartureDate, increaseAvailability); err != nil {
		return err
	}

	now := time.Now().UTC()
	found.CancelledAt = &now
	found.UpdatedAt = now
	if err = s.reservations.Update(ctx, found); err != nil {
		s.rollbackAdjust(ctx, found.ArrivalDate, found.DepartureDate, decreaseAvailability)
		return err
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", found.ID),
		logger.String("email", found.Email),
	)

	return nil
}

func (s *ReservationService) persistUpdate(
	ctx context.Context,
	found *domain.Reservation,
	patch domain.ReservationPatch,
	arrival, departure time.Time,
	email string,
) error {
	if patch.Name != nil {
		found.Name = *patch.Name
	}
	found.Email = email
	found.ArrivalDate = arrival
	found.DepartureDate = departure
	found.UpdatedAt = time.Now().UTC()
	return s.reservations.Update(ctx, found)
}

func (s *ReservationService) validateStay(arrival, departure time.Time) error {
	if err := validation.RequireStayLength(arrival, departure, s.rules.MinStayDays, s.rules.MaxStayDays); err != nil {
		return err
	}
	return validation.RequireBookingWindow(arrival, departure, s.validBookingWindow())
}

func (s *ReservationService) checkNoActiveOverlap(ctx context.Context, email string, arrival, departure time.Time, excludeID string) error {
	existing, err := s.reservations.FindActiveOverlap(ctx, email, arrival, departure, excludeID)
	if err != nil {
		return fmt.Errorf("check overlapping reservations: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: reservation %s", domain.ErrReservationAlreadyExists, existing[0].ID)
	}
	return nil
}

// validBookingWindow is recomputed per request: it moves with today.
func (s *ReservationService) validBookingWindow() domain.DateRange {
	today := domain.Day(time.Now().UTC())
	return domain.DateRange{
		From: today.AddDate(0, 0, s.rules.MinLeadDays),
		To:   today.AddDate(0, 0, s.rules.MaxLeadDays),
	}
}

// rollbackAdjust compensates a committed adjustment after a later step failed.
// There is no cross-store transaction, so this is the best effort available;
// a failure here is loud in the log and the version counters catch the rest.
func (s *ReservationService) rollbackAdjust(ctx context.Context, from, to time.Time, delta int) {
	if err := s.ledger.Adjust(ctx, from, to, delta); err != nil {
		s.logger.Error("failed to roll back availability adjustment",
			logger.String("from", from.Format(domain.DateLayout)),
			logger.String("to", to.Format(domain.DateLayout)),
			logger.Int("delta", delta),
			logger.String("error", err.Error()),
		)
	}
}
