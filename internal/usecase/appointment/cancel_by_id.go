package appointment

import (
	"context"

	"github.com/onechair/booking/internal/audit"
	domain "github.com/onechair/booking/internal/domain/appointment"
)

// CancelByID is the operator path: no identity check, no blocked-slot
// protection. The handler gates it behind an admin session.
type CancelByID struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByID(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelByID {
	return &CancelByID{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the appointment with the given id. A missing id is a
// no-op, not an error; the returned bool reports whether a row existed.
func (uc *CancelByID) Execute(
	ctx context.Context,
	id uint,
) (bool, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if ap == nil {
		return false, nil
	}

	if err := uc.repo.Delete(ctx, ap); err != nil {
		return false, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return true, nil
}
