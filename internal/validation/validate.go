package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/luiscarbonel1991/campsite/internal/domain"
)

// Правила чистые: проверяют и возвращают типизированную ошибку, ничего не мутируют.

var validate = validator.New()

func RequireNonEmpty(value, field string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingParameter, field)
	}
	return nil
}

func RequireDate(value time.Time, field string) error {
	if value.IsZero() {
		return fmt.Errorf("%w: %s", domain.ErrMissingParameter, field)
	}
	return nil
}

func RequireOrderedRange(from, to time.Time, fieldFrom, fieldTo string) error {
	if err := RequireDate(from, fieldFrom); err != nil {
		return err
	}
	if err := RequireDate(to, fieldTo); err != nil {
		return err
	}
	if from.After(to) {
		return fmt.Errorf("%w: %s %s is after %s %s",
			domain.ErrInvalidDateRange,
			fieldFrom, from.Format(domain.DateLayout),
			fieldTo, to.Format(domain.DateLayout),
		)
	}
	return nil
}

// RequireStayLength checks the number of nights, departure day excluded.
func RequireStayLength(arrival, departure time.Time, minDays, maxDays int) error {
	if err := RequireOrderedRange(arrival, departure, "arrival_date", "departure_date"); err != nil {
		return err
	}
	nights := domain.DaysBetween(arrival, departure)
	if nights < minDays || nights > maxDays {
		return fmt.Errorf("%w: %d night(s), allowed %d to %d",
			domain.ErrInvalidStayRange, nights, minDays, maxDays)
	}
	return nil
}

func RequireBookingWindow(arrival, departure time.Time, window domain.DateRange) error {
	if err := RequireOrderedRange(arrival, departure, "arrival_date", "departure_date"); err != nil {
		return err
	}
	if !window.Contains(arrival) || !window.Contains(departure) {
		return fmt.Errorf("%w: stay %s..%s, valid window %s",
			domain.ErrInvalidArrivalDate,
			arrival.Format(domain.DateLayout), departure.Format(domain.DateLayout),
			window,
		)
	}
	return nil
}

func RequireValidEmail(email, field string) error {
	if err := RequireNonEmpty(email, field); err != nil {
		return err
	}
	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidEmail, email)
	}
	return nil
}
