package ports

import (
	"context"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
)

type ReservationRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	// FindActiveOverlap returns not-cancelled reservations for email whose stay
	// intersects the half-open [from, to). excludeID skips the caller's own row.
	FindActiveOverlap(ctx context.Context, email string, from, to time.Time, excludeID string) ([]*domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) error
	// Update persists r only if the stored version matches r.Version.
	Update(ctx context.Context, r *domain.Reservation) error
}
