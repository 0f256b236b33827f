package appointment

import (
	"context"
	"time"

	"github.com/onechair/booking/internal/models"
)

type Repository interface {
	// -------- Lookup --------

	// FindByStartTime returns the appointment occupying t, or nil when
	// the slot is free. A free slot is not an error.
	FindByStartTime(
		ctx context.Context,
		t time.Time,
	) (*models.Appointment, error)

	// FindByID returns the appointment with the given id, or nil when
	// no such record exists.
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Range queries --------

	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	CountForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	// -------- Mutation --------

	// Create inserts ap. A duplicate start_time surfaces as the
	// "conflict" business error even when the caller's advisory check
	// passed, closing the check-then-insert race.
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Delete removes ap. Deleting a row that is already gone is a no-op.
	Delete(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
