package appointment

import (
	"context"
	"time"

	"github.com/onechair/booking/internal/audit"
	domain "github.com/onechair/booking/internal/domain/appointment"
	"github.com/onechair/booking/internal/domain/schedule"
	"github.com/onechair/booking/internal/httperr"
	"github.com/onechair/booking/internal/models"
)

type BlockInput struct {
	Time string
}

// BlockSlot reserves a slot as unavailable. Blocks live in the same
// start_time namespace as customer bookings, so the uniqueness guard
// covers both.
type BlockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	label string
}

func NewBlockSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	label string,
) *BlockSlot {
	return &BlockSlot{
		repo:  repo,
		audit: audit,
		label: label,
	}
}

func (uc *BlockSlot) Execute(
	ctx context.Context,
	in BlockInput,
) (*models.Appointment, error) {

	start, err := time.Parse(schedule.SlotKeyLayout, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalid)
	}

	existing, err := uc.repo.FindByStartTime(ctx, start)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeConflict)
	}

	ap := &models.Appointment{
		CustomerName: uc.label,
		Phone:        domain.SystemBlockPhone,
		StartTime:    start,
		Kind:         string(domain.KindBlocked),
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_blocked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"slot": in.Time},
	})

	return ap, nil
}
